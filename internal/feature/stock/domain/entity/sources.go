package entity

// PriceQuote is one day's open/close reading as returned by the external
// price source.
type PriceQuote struct {
	Status string
	From   string // Trading day the quote belongs to, YYYY-MM-DD
	Symbol string
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// Narrative bundles the qualitative data obtained for a stock: the company
// display name, trailing performance and named competitors. The zero value is
// the "no data" fallback used when the narrative source fails.
type Narrative struct {
	CompanyName     string
	PerformanceData PerformanceData
	Competitors     []Competitor
}
