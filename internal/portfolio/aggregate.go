package portfolio

// SectorSummary aggregates all holdings sharing a sector label. It is derived
// from the holdings on every aggregation pass and holds no state of its own.
type SectorSummary struct {
	Sector            string    `json:"sector"`
	TotalInvestment   float64   `json:"totalInvestment"`
	TotalPresentValue float64   `json:"totalPresentValue"`
	TotalGainLoss     float64   `json:"totalGainLoss"`
	TotalGainLossPct  float64   `json:"totalGainLossPercent"`
	PortfolioPct      float64   `json:"portfolioPercent"`
	Holdings          []Holding `json:"stocks"`
}

// Snapshot is the aggregation result for the whole holding set. It is
// recomputed fully on every change to the holdings, never patched.
type Snapshot struct {
	Holdings          []Holding       `json:"stocks"`
	Sectors           []SectorSummary `json:"sectors"`
	TotalInvestment   float64         `json:"totalInvestment"`
	TotalPresentValue float64         `json:"totalPresentValue"`
	TotalGainLoss     float64         `json:"totalGainLoss"`
	TotalGainLossPct  float64         `json:"totalGainLossPercent"`
}

// Aggregate computes per-holding derived fields and per-sector and
// portfolio-wide rollups. It is pure: the input slice is not mutated, and the
// same input always yields the same snapshot. Investment and PresentValue are
// read as-is, never rederived from price and quantity.
func Aggregate(holdings []Holding) Snapshot {
	var totalInvestment, totalPresentValue float64
	for _, h := range holdings {
		totalInvestment += h.Investment
		totalPresentValue += h.PresentValue
	}
	totalGainLoss := totalPresentValue - totalInvestment

	updated := make([]Holding, len(holdings))
	for i, h := range holdings {
		h.PortfolioPct = pct(h.Investment, totalInvestment)
		h.GainLoss = h.PresentValue - h.Investment
		h.GainLossPct = pct(h.GainLoss, h.Investment)
		updated[i] = h
	}

	// Sectors keep first-seen order; members keep input order.
	sectorIndex := make(map[string]int)
	sectors := make([]SectorSummary, 0)
	for _, h := range updated {
		idx, ok := sectorIndex[h.Sector]
		if !ok {
			idx = len(sectors)
			sectorIndex[h.Sector] = idx
			sectors = append(sectors, SectorSummary{Sector: h.Sector})
		}
		s := &sectors[idx]
		s.TotalInvestment += h.Investment
		s.TotalPresentValue += h.PresentValue
		s.Holdings = append(s.Holdings, h)
	}
	for i := range sectors {
		s := &sectors[i]
		s.TotalGainLoss = s.TotalPresentValue - s.TotalInvestment
		s.TotalGainLossPct = pct(s.TotalGainLoss, s.TotalInvestment)
		s.PortfolioPct = pct(s.TotalInvestment, totalInvestment)
	}

	return Snapshot{
		Holdings:          updated,
		Sectors:           sectors,
		TotalInvestment:   totalInvestment,
		TotalPresentValue: totalPresentValue,
		TotalGainLoss:     totalGainLoss,
		TotalGainLossPct:  pct(totalGainLoss, totalInvestment),
	}
}

// pct returns part/whole as a percentage, and 0 when the denominator is not
// positive. Percentages in this package never divide by zero.
func pct(part, whole float64) float64 {
	if whole <= 0 {
		return 0
	}
	return part / whole * 100
}
