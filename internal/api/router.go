package api

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/hertz-contrib/cors"

	"portfolio-dashboard/internal/market"
)

const localDevOrigin = "http://localhost:4000"

type batchRequest struct {
	Symbols json.RawMessage `json:"symbols"`
}

func RegisterRoutes(h *server.Hertz, batch *market.BatchService, frontendOrigin string) {
	h.Use(corsMiddleware(frontendOrigin))

	h.GET("/healthz", func(_ context.Context, c *app.RequestContext) {
		c.JSON(http.StatusOK, map[string]bool{"ok": true})
	})

	h.POST("/api/stocks/batch", func(ctx context.Context, c *app.RequestContext) {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("batch handler panic: %v", r)
				c.JSON(http.StatusInternalServerError, map[string]string{
					"error": "Failed to fetch stock data",
				})
			}
		}()

		symbols, ok := parseSymbols(c.Request.Body())
		if !ok {
			c.JSON(http.StatusBadRequest, map[string]string{
				"error": "Symbols must be an array",
			})
			return
		}

		c.JSON(http.StatusOK, batch.FetchBatch(ctx, symbols))
	})
}

// parseSymbols accepts only a JSON body whose "symbols" field is an array of
// strings. Anything else is a validation failure, not an internal error.
func parseSymbols(body []byte) ([]string, bool) {
	var req batchRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, false
	}
	if len(req.Symbols) == 0 || string(req.Symbols) == "null" {
		return nil, false
	}
	var symbols []string
	if err := json.Unmarshal(req.Symbols, &symbols); err != nil {
		return nil, false
	}
	return symbols, true
}

// corsMiddleware lets the local dev origin, the configured frontend origin and
// any *.vercel.app deployment read responses with credentials. Requests
// without an Origin header bypass the check entirely.
func corsMiddleware(frontendOrigin string) app.HandlerFunc {
	return cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			return originAllowed(frontendOrigin, origin)
		},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}

func originAllowed(frontendOrigin, origin string) bool {
	if origin == localDevOrigin {
		return true
	}
	if frontendOrigin != "" && origin == frontendOrigin {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	return strings.HasSuffix(u.Hostname(), ".vercel.app")
}
