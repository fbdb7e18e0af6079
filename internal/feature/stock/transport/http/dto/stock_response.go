// Package dto defines the request and response shapes of the stock endpoints.
package dto

import "stockinfo/internal/feature/stock/domain/entity"

// StockValuesResponse is the OHLC part of the canonical stock record.
type StockValuesResponse struct {
	Open  float64 `json:"open"`
	High  float64 `json:"high"`
	Low   float64 `json:"low"`
	Close float64 `json:"close"`
}

// PerformanceDataResponse holds the five trailing performance windows.
type PerformanceDataResponse struct {
	FiveDays    float64 `json:"five_days"`
	OneMonth    float64 `json:"one_month"`
	ThreeMonths float64 `json:"three_months"`
	YearToDate  float64 `json:"year_to_date"`
	OneYear     float64 `json:"one_year"`
}

// MarketCapResponse is a competitor's market-capitalization figure.
type MarketCapResponse struct {
	Currency string  `json:"currency"`
	Value    float64 `json:"value"`
}

// CompetitorResponse is one named competitor of the stock.
type CompetitorResponse struct {
	Name      string            `json:"name"`
	MarketCap MarketCapResponse `json:"market_cap"`
}

// StockResponse is the canonical stock record returned by GET /stock/:symbol.
type StockResponse struct {
	Status          string                  `json:"status"`
	PurchasedAmount int                     `json:"purchased_amount"`
	PurchasedStatus string                  `json:"purchased_status"`
	RequestData     string                  `json:"request_data"`
	CompanyCode     string                  `json:"company_code"`
	CompanyName     string                  `json:"company_name"`
	StockValues     StockValuesResponse     `json:"stock_values"`
	PerformanceData PerformanceDataResponse `json:"performance_data"`
	Competitors     []CompetitorResponse    `json:"competitors"`
}

// NewStockResponse maps a stock aggregate onto the wire shape. Both the
// DB-sourced and the freshly resolved paths go through here, so the two
// serialize with an identical field layout. Competitors always encodes as a
// JSON array, never null.
func NewStockResponse(s entity.Stock) StockResponse {
	competitors := make([]CompetitorResponse, 0, len(s.Competitors))
	for _, c := range s.Competitors {
		competitors = append(competitors, CompetitorResponse{
			Name: c.Name,
			MarketCap: MarketCapResponse{
				Currency: c.MarketCap.Currency,
				Value:    c.MarketCap.Value,
			},
		})
	}
	return StockResponse{
		Status:          s.Status,
		PurchasedAmount: s.PurchasedAmount,
		PurchasedStatus: s.PurchasedStatus,
		RequestData:     s.RequestDate,
		CompanyCode:     s.CompanyCode,
		CompanyName:     s.CompanyName,
		StockValues: StockValuesResponse{
			Open:  s.StockValues.Open,
			High:  s.StockValues.High,
			Low:   s.StockValues.Low,
			Close: s.StockValues.Close,
		},
		PerformanceData: PerformanceDataResponse{
			FiveDays:    s.PerformanceData.FiveDays,
			OneMonth:    s.PerformanceData.OneMonth,
			ThreeMonths: s.PerformanceData.ThreeMonths,
			YearToDate:  s.PerformanceData.YearToDate,
			OneYear:     s.PerformanceData.OneYear,
		},
		Competitors: competitors,
	}
}
