package market

import (
	"testing"
	"time"
)

func TestCacheFreshness(t *testing.T) {
	base := time.Now()
	now := base
	c := NewCache(10 * time.Second)
	c.now = func() time.Time { return now }

	c.Set("HDFCBANK", 1512.5)

	tests := []struct {
		name      string
		elapsed   time.Duration
		wantPrice float64
		wantOK    bool
	}{
		{name: "immediately", elapsed: 0, wantPrice: 1512.5, wantOK: true},
		{name: "just inside TTL", elapsed: 9900 * time.Millisecond, wantPrice: 1512.5, wantOK: true},
		{name: "just past TTL", elapsed: 10100 * time.Millisecond, wantOK: false},
		{name: "long past TTL", elapsed: time.Minute, wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now = base.Add(tt.elapsed)
			price, ok := c.Get("HDFCBANK")
			if ok != tt.wantOK || price != tt.wantPrice {
				t.Errorf("Get() = (%v, %v), want (%v, %v)", price, ok, tt.wantPrice, tt.wantOK)
			}
		})
	}
}

func TestCacheMissingKey(t *testing.T) {
	c := NewCache(10 * time.Second)
	if _, ok := c.Get("UNKNOWN"); ok {
		t.Error("Get() on empty cache returned a hit")
	}
}

func TestCacheStaleEntryOverwritten(t *testing.T) {
	base := time.Now()
	now := base
	c := NewCache(10 * time.Second)
	c.now = func() time.Time { return now }

	c.Set("TCS", 100)
	now = base.Add(11 * time.Second)
	if _, ok := c.Get("TCS"); ok {
		t.Fatal("stale entry still readable")
	}

	// Stale entries are not evicted; a later Set simply overwrites.
	c.Set("TCS", 200)
	price, ok := c.Get("TCS")
	if !ok || price != 200 {
		t.Errorf("Get() after overwrite = (%v, %v), want (200, true)", price, ok)
	}
}
