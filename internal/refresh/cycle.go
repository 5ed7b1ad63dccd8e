package refresh

import (
	"context"
	"log"
	"time"

	"portfolio-dashboard/internal/market"
	"portfolio-dashboard/internal/portfolio"
)

const DefaultInterval = 15 * time.Second

type BatchClient interface {
	FetchBatch(ctx context.Context, symbols []string) ([]market.BatchQuote, error)
}

// Cycle periodically refreshes quotes for the held symbols, merges them into
// the holdings and re-aggregates. Runs are serialized: a tick's fetch and
// merge complete before the next tick is considered, so a slow upstream delays
// the next run instead of racing it.
type Cycle struct {
	client   BatchClient
	interval time.Duration
	holdings []portfolio.Holding
	onUpdate func(portfolio.Snapshot)
	onError  func(error)
}

func NewCycle(client BatchClient, interval time.Duration, holdings []portfolio.Holding, onUpdate func(portfolio.Snapshot), onError func(error)) *Cycle {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Cycle{
		client:   client,
		interval: interval,
		holdings: holdings,
		onUpdate: onUpdate,
		onError:  onError,
	}
}

// Run executes one refresh immediately, then one per interval until ctx is
// cancelled. After cancellation no further merges happen.
func (c *Cycle) Run(ctx context.Context) {
	c.tick(ctx)
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.tick(ctx)
		}
	}
}

func (c *Cycle) tick(ctx context.Context) {
	quotes, err := c.client.FetchBatch(ctx, portfolio.Symbols(c.holdings))
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		// Holdings stay as they are; the next cycle retries.
		log.Printf("refresh: batch fetch failed, keeping stale data: %v", err)
		if c.onError != nil {
			c.onError(err)
		}
		return
	}

	c.holdings = Merge(c.holdings, quotes)
	if c.onUpdate != nil {
		c.onUpdate(portfolio.Aggregate(c.holdings))
	}
}

// Merge overlays quote results onto holdings, matched by symbol, and returns a
// new snapshot slice. A missing result or a zero price leaves the holding
// unchanged. Present value is recomputed here, and only here, as CMP times the
// unchanged quantity.
func Merge(holdings []portfolio.Holding, quotes []market.BatchQuote) []portfolio.Holding {
	bySymbol := make(map[string]market.BatchQuote, len(quotes))
	for _, q := range quotes {
		bySymbol[q.Symbol] = q
	}

	out := make([]portfolio.Holding, len(holdings))
	for i, h := range holdings {
		q, ok := bySymbol[h.Symbol]
		if !ok {
			out[i] = h
			continue
		}
		if q.Price > 0 {
			h.CMP = q.Price
		}
		h.PresentValue = h.CMP * float64(h.Qty)
		if q.PERatio != nil {
			h.PERatio = q.PERatio
		}
		if q.EarningsDate != nil {
			h.LatestEarnings = q.EarningsDate
		}
		if q.MarketCap != nil {
			h.MarketCap = q.MarketCap
		}
		out[i] = h
	}
	return out
}
