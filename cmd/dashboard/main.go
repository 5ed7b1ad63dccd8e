package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/glamour"

	"portfolio-dashboard/internal/client"
	"portfolio-dashboard/internal/config"
	"portfolio-dashboard/internal/portfolio"
	"portfolio-dashboard/internal/refresh"
	"portfolio-dashboard/internal/render"
	"portfolio-dashboard/internal/store"
)

func main() {
	cfg, err := config.Load("configs/app.yaml")
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	st, err := store.Open(cfg.Store.Sqlite.Path)
	if err != nil {
		log.Fatalf("store error: %v", err)
	}
	defer func() {
		if err := st.Close(); err != nil {
			log.Printf("store close error: %v", err)
		}
	}()

	if err := st.SeedIfEmpty(portfolio.DefaultHoldings()); err != nil {
		log.Fatalf("seed error: %v", err)
	}
	holdings, err := st.LoadHoldings()
	if err != nil {
		log.Fatalf("load holdings error: %v", err)
	}
	if len(holdings) == 0 {
		log.Fatalf("no holdings to track")
	}

	api := client.New(cfg.Client.APIBaseURL, 10*time.Second)

	cycle := refresh.NewCycle(
		api,
		time.Duration(cfg.Client.RefreshIntervalSec)*time.Second,
		holdings,
		func(snapshot portfolio.Snapshot) {
			out, err := glamour.Render(render.Markdown(snapshot), "dark")
			if err != nil {
				log.Printf("render error: %v", err)
				return
			}
			fmt.Print(out)
		},
		func(err error) {
			log.Printf("showing stale data: %v", err)
		},
	)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	log.Printf("dashboard polling %s every %ds", cfg.Client.APIBaseURL, cfg.Client.RefreshIntervalSec)
	cycle.Run(ctx)
}
