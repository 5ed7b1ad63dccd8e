package main

import (
	"fmt"
	"log"
	"time"

	"github.com/cloudwego/hertz/pkg/app/server"

	"portfolio-dashboard/internal/api"
	"portfolio-dashboard/internal/config"
	"portfolio-dashboard/internal/market"
)

func main() {
	cfg, err := config.Load("configs/app.yaml")
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	h := server.Default(server.WithHostPorts(addr))

	provider := market.NewYahooProvider(time.Duration(cfg.Market.TimeoutMs) * time.Millisecond)
	cache := market.NewCache(time.Duration(cfg.Market.CacheTTLSec) * time.Second)
	fetcher := market.NewFetcher(provider, cache)
	batch := market.NewBatchService(fetcher, cfg.Market.BatchSize, time.Duration(cfg.Market.BatchPauseMs)*time.Millisecond)

	api.RegisterRoutes(h, batch, cfg.CORS.FrontendOrigin)

	log.Printf("server starting on %s", addr)
	if err := h.Run(); err != nil {
		log.Fatalf("server run error: %v", err)
	}
}
