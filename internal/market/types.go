package market

import "context"

// ProviderQuote is the narrow slice of an upstream quote payload the fetcher
// depends on: a primary price field and a secondary fallback field.
type ProviderQuote struct {
	RegularMarketPrice float64 `json:"regularMarketPrice"`
	Price              float64 `json:"price"`
}

type QuoteProvider interface {
	Quote(ctx context.Context, symbol string) (ProviderQuote, error)
}

// Fundamentals carries optional per-symbol figures. Every field is
// independently optional; nil means the upstream source had no value.
type Fundamentals struct {
	PERatio      *float64 `json:"peRatio"`
	EarningsDate *string  `json:"earningsDate"`
	MarketCap    *float64 `json:"marketCap"`
}

// BatchQuote is the per-symbol result of a batch fetch. Price is 0 when the
// upstream fetch failed or the symbol is unknown; fundamentals serialize as
// JSON nulls when absent.
type BatchQuote struct {
	Symbol       string   `json:"symbol"`
	Price        float64  `json:"price"`
	PERatio      *float64 `json:"peRatio"`
	EarningsDate *string  `json:"earningsDate"`
	MarketCap    *float64 `json:"marketCap"`
}
