package market

import (
	"context"
	"sync"
	"time"
)

const (
	DefaultBatchSize  = 5
	DefaultBatchPause = 500 * time.Millisecond
)

// BatchService fetches quotes for a list of symbols in fixed-size groups.
// Members of a group are fetched concurrently; a pause separates group starts
// to stay under upstream rate limits. The group/pause policy is a throttle,
// not a correctness requirement.
type BatchService struct {
	fetcher   *Fetcher
	batchSize int
	pause     time.Duration
}

func NewBatchService(fetcher *Fetcher, batchSize int, pause time.Duration) *BatchService {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	if pause < 0 {
		pause = 0
	}
	return &BatchService{fetcher: fetcher, batchSize: batchSize, pause: pause}
}

// FetchBatch returns exactly one BatchQuote per input symbol, in input order.
// A failed symbol yields a default result (price 0, nil fundamentals); the
// batch itself never fails.
func (s *BatchService) FetchBatch(ctx context.Context, symbols []string) []BatchQuote {
	out := make([]BatchQuote, len(symbols))
	for start := 0; start < len(symbols); start += s.batchSize {
		end := min(start+s.batchSize, len(symbols))

		var wg sync.WaitGroup
		for i := start; i < end; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				out[i] = s.fetchOne(ctx, symbols[i])
			}(i)
		}
		wg.Wait()

		if end < len(symbols) && s.pause > 0 {
			time.Sleep(s.pause)
		}
	}
	return out
}

func (s *BatchService) fetchOne(ctx context.Context, symbol string) BatchQuote {
	fundCh := make(chan Fundamentals, 1)
	go func() {
		fund, err := s.fetcher.FetchFundamentals(ctx, symbol)
		if err != nil {
			fund = Fundamentals{}
		}
		fundCh <- fund
	}()

	price, err := s.fetcher.FetchPrice(ctx, symbol)
	if err != nil {
		price = 0
	}
	fund := <-fundCh

	return BatchQuote{
		Symbol:       symbol,
		Price:        price,
		PERatio:      fund.PERatio,
		EarningsDate: fund.EarningsDate,
		MarketCap:    fund.MarketCap,
	}
}
