package render

import (
	"strings"
	"testing"

	"portfolio-dashboard/internal/portfolio"
)

func TestPercent(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{6.6667, "+6.67%"},
		{-2.5, "-2.50%"},
		{0, "+0.00%"},
	}
	for _, tt := range tests {
		if got := Percent(tt.in); got != tt.want {
			t.Errorf("Percent(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCurrencyUsesRupees(t *testing.T) {
	if got := Currency(1500); !strings.Contains(got, "\u20b9") {
		t.Errorf("Currency(1500) = %q, no rupee sign", got)
	}
}

func TestMarkdownLayout(t *testing.T) {
	snapshot := portfolio.Aggregate([]portfolio.Holding{
		{ID: 1, Name: "Infosys", Sector: "IT", Symbol: "INFY", Qty: 10, Investment: 1000, CMP: 120, PresentValue: 1200},
		{ID: 2, Name: "Tata Motors", Sector: "Auto", Symbol: "TATAMOTORS", Qty: 5, Investment: 2000, CMP: 400, PresentValue: 2000},
	})

	out := Markdown(snapshot)

	for _, want := range []string{
		"# Portfolio Dashboard",
		"## IT",
		"## Auto",
		"INFY",
		"TATAMOTORS",
		"Gain/Loss %",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("markdown missing %q:\n%s", want, out)
		}
	}

	// Sectors render in first-seen order.
	if strings.Index(out, "## IT") > strings.Index(out, "## Auto") {
		t.Error("sector order not preserved")
	}
}
