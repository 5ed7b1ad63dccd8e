package market

import (
	"context"
	"fmt"
	"log"
	"strings"
)

// Fetcher resolves a best-effort current price per symbol, consulting the
// cache before the upstream provider. The cache is keyed by the original
// symbol; only the upstream call sees the normalized form.
type Fetcher struct {
	provider QuoteProvider
	cache    *Cache
}

func NewFetcher(provider QuoteProvider, cache *Cache) *Fetcher {
	if cache == nil {
		cache = NewCache(DefaultCacheTTL)
	}
	return &Fetcher{provider: provider, cache: cache}
}

// FetchPrice returns the current price for symbol. A non-nil error means the
// price is absent for this cycle; it never panics and the error never carries
// past callers that substitute a default.
func (f *Fetcher) FetchPrice(ctx context.Context, symbol string) (float64, error) {
	if price, ok := f.cache.Get(symbol); ok {
		return price, nil
	}

	quote, err := f.provider.Quote(ctx, NormalizeSymbol(symbol))
	if err != nil {
		log.Printf("fetch price for %s: %v", symbol, err)
		return 0, fmt.Errorf("fetch price for %s: %w", symbol, err)
	}

	price := quote.RegularMarketPrice
	if price <= 0 {
		price = quote.Price
	}
	if price <= 0 {
		log.Printf("no usable price for %s", symbol)
		return 0, fmt.Errorf("no usable price for %s", symbol)
	}

	f.cache.Set(symbol, price)
	return price, nil
}

// FetchFundamentals has no implemented upstream source yet; it returns
// all-absent fields so a future source can slot in without changing the
// batch contract.
func (f *Fetcher) FetchFundamentals(ctx context.Context, symbol string) (Fundamentals, error) {
	return Fundamentals{}, nil
}

// NormalizeSymbol appends the NSE suffix to bare tickers; symbols that
// already carry an exchange qualifier pass through unchanged.
func NormalizeSymbol(symbol string) string {
	if strings.Contains(symbol, ".") {
		return symbol
	}
	return symbol + ".NS"
}
