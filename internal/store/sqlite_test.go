package store

import (
	"path/filepath"
	"testing"

	"portfolio-dashboard/internal/portfolio"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "portfolio.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() {
		if err := st.Close(); err != nil {
			t.Errorf("Close() error = %v", err)
		}
	})
	return st
}

func TestSeedAndLoadRoundTrip(t *testing.T) {
	st := openTestStore(t)
	seed := portfolio.DefaultHoldings()

	if err := st.SeedIfEmpty(seed); err != nil {
		t.Fatalf("SeedIfEmpty() error = %v", err)
	}
	got, err := st.LoadHoldings()
	if err != nil {
		t.Fatalf("LoadHoldings() error = %v", err)
	}
	if len(got) != len(seed) {
		t.Fatalf("loaded %d holdings, want %d", len(got), len(seed))
	}
	for i, h := range got {
		want := seed[i]
		if h.Symbol != want.Symbol || h.Sector != want.Sector || h.Qty != want.Qty {
			t.Errorf("holding %d = %+v, want %+v", i, h, want)
		}
		if h.Investment != want.Investment || h.PurchasePrice != want.PurchasePrice {
			t.Errorf("holding %d seed figures = (%v, %v)", i, h.Investment, h.PurchasePrice)
		}
	}
}

func TestSeedIfEmptyIsIdempotent(t *testing.T) {
	st := openTestStore(t)
	seed := portfolio.DefaultHoldings()

	if err := st.SeedIfEmpty(seed); err != nil {
		t.Fatalf("first seed: %v", err)
	}
	if err := st.SeedIfEmpty(seed); err != nil {
		t.Fatalf("second seed: %v", err)
	}
	got, err := st.LoadHoldings()
	if err != nil {
		t.Fatalf("LoadHoldings() error = %v", err)
	}
	if len(got) != len(seed) {
		t.Errorf("loaded %d holdings after double seed, want %d", len(got), len(seed))
	}
}

func TestLoadHoldingsEmpty(t *testing.T) {
	st := openTestStore(t)
	got, err := st.LoadHoldings()
	if err != nil {
		t.Fatalf("LoadHoldings() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("loaded %d holdings from fresh db", len(got))
	}
}
