package market

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

type YahooProvider struct {
	baseURL string
	client  *http.Client
}

type yahooQuoteResp struct {
	QuoteResponse struct {
		Result []struct {
			Symbol             string  `json:"symbol"`
			RegularMarketPrice float64 `json:"regularMarketPrice"`
			Price              float64 `json:"price"`
		} `json:"result"`
		Error any `json:"error"`
	} `json:"quoteResponse"`
}

func NewYahooProvider(timeout time.Duration) *YahooProvider {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &YahooProvider{
		baseURL: "https://query1.finance.yahoo.com/v7/finance/quote",
		client:  &http.Client{Timeout: timeout},
	}
}

func (p *YahooProvider) Quote(ctx context.Context, symbol string) (ProviderQuote, error) {
	u, err := url.Parse(p.baseURL)
	if err != nil {
		return ProviderQuote{}, fmt.Errorf("invalid base url: %w", err)
	}
	q := u.Query()
	q.Set("symbols", symbol)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return ProviderQuote{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (portfolio-dashboard)")

	resp, err := p.client.Do(req)
	if err != nil {
		return ProviderQuote{}, fmt.Errorf("request yahoo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ProviderQuote{}, fmt.Errorf("yahoo status %d for %s", resp.StatusCode, symbol)
	}

	var payload yahooQuoteResp
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return ProviderQuote{}, fmt.Errorf("decode yahoo: %w", err)
	}
	if len(payload.QuoteResponse.Result) == 0 {
		return ProviderQuote{}, fmt.Errorf("empty yahoo response for %s", symbol)
	}

	r := payload.QuoteResponse.Result[0]
	return ProviderQuote{
		RegularMarketPrice: r.RegularMarketPrice,
		Price:              r.Price,
	}, nil
}
