package portfolio

// DefaultHoldings is the static seed portfolio loaded on first run. CMP starts
// at the purchase level so an offline first render still shows a coherent
// table; live quotes overwrite it on the first refresh.
func DefaultHoldings() []Holding {
	seed := []Holding{
		{ID: 1, Name: "HDFC Bank", Sector: "Financial Sector", PurchasePrice: 1490, Qty: 50, Symbol: "HDFCBANK"},
		{ID: 2, Name: "Bajaj Finance", Sector: "Financial Sector", PurchasePrice: 6466, Qty: 15, Symbol: "BAJFINANCE"},
		{ID: 3, Name: "ICICI Bank", Sector: "Financial Sector", PurchasePrice: 780, Qty: 84, Symbol: "ICICIBANK"},
		{ID: 4, Name: "Affle India", Sector: "Tech Sector", PurchasePrice: 1151, Qty: 50, Symbol: "AFFLE"},
		{ID: 5, Name: "LTI Mindtree", Sector: "Tech Sector", PurchasePrice: 4775, Qty: 16, Symbol: "LTIM"},
		{ID: 6, Name: "KPIT Tech", Sector: "Tech Sector", PurchasePrice: 672, Qty: 61, Symbol: "KPITTECH"},
		{ID: 7, Name: "Dmart", Sector: "Consumer", PurchasePrice: 3777, Qty: 27, Symbol: "DMART"},
		{ID: 8, Name: "Tata Consumer", Sector: "Consumer", PurchasePrice: 845, Qty: 90, Symbol: "TATACONSUM"},
		{ID: 9, Name: "Tata Power", Sector: "Power", PurchasePrice: 224, Qty: 225, Symbol: "TATAPOWER"},
		{ID: 10, Name: "Suzlon", Sector: "Power", PurchasePrice: 44, Qty: 450, Symbol: "SUZLON"},
		{ID: 11, Name: "Astral", Sector: "Pipe Sector", PurchasePrice: 1517, Qty: 56, Symbol: "ASTRAL"},
		{ID: 12, Name: "Polycab", Sector: "Pipe Sector", PurchasePrice: 2818, Qty: 28, Symbol: "POLYCAB"},
	}
	for i := range seed {
		seed[i].Investment = seed[i].PurchasePrice * float64(seed[i].Qty)
		seed[i].CMP = seed[i].PurchasePrice
		seed[i].PresentValue = seed[i].CMP * float64(seed[i].Qty)
	}
	return seed
}
