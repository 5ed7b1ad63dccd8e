package portfolio

// Holding is a single stock position. PurchasePrice, Qty and Investment are
// fixed at seed time; the refresh cycle owns CMP and PresentValue, and
// Aggregate owns the derived share and gain/loss fields.
type Holding struct {
	ID             int      `json:"id"`
	Name           string   `json:"name"`
	Sector         string   `json:"sector"`
	PurchasePrice  float64  `json:"purchasePrice"`
	Qty            int      `json:"qty"`
	Investment     float64  `json:"investment"`
	Symbol         string   `json:"symbol"`
	CMP            float64  `json:"cmp"`
	PresentValue   float64  `json:"presentValue"`
	PortfolioPct   float64  `json:"portfolioPercent"`
	GainLoss       float64  `json:"gainLoss"`
	GainLossPct    float64  `json:"gainLossPercent"`
	PERatio        *float64 `json:"peRatio,omitempty"`
	LatestEarnings *string  `json:"latestEarnings,omitempty"`
	MarketCap      *float64 `json:"marketCap,omitempty"`
}

// Symbols returns the exchange symbols of the holdings, in input order.
func Symbols(holdings []Holding) []string {
	out := make([]string, len(holdings))
	for i, h := range holdings {
		out[i] = h.Symbol
	}
	return out
}
