// Package entity defines the domain models for the stock feature.
package entity

// StockValues holds one trading day's OHLC prices for a stock. A snapshot is
// created once, at first resolution of a symbol, and never mutated.
type StockValues struct {
	Open  float64 // Opening price
	High  float64 // Highest price of the day
	Low   float64 // Lowest price of the day
	Close float64 // Closing price
}

// PerformanceData holds trailing performance percentages over five fixed
// windows. Same lifecycle as StockValues.
type PerformanceData struct {
	FiveDays    float64
	OneMonth    float64
	ThreeMonths float64
	YearToDate  float64
	OneYear     float64
}

// MarketCap is a market-capitalization figure owned by exactly one competitor.
type MarketCap struct {
	Currency string // Short display code (e.g. "$2.97T")
	Value    float64
}

// Competitor is a named peer company listed for a stock.
type Competitor struct {
	Name      string
	MarketCap MarketCap
}

// Stock is the aggregate root of the canonical stock record. CompanyCode is
// the sole external lookup key and is kept in normalized (lower-case) form.
// Only PurchasedAmount and PurchasedStatus are ever updated after creation.
type Stock struct {
	Status          string
	PurchasedAmount int
	PurchasedStatus string
	RequestDate     string // Trading day of the price snapshot, YYYY-MM-DD
	CompanyCode     string
	CompanyName     string
	StockValues     StockValues
	PerformanceData PerformanceData
	Competitors     []Competitor
}
