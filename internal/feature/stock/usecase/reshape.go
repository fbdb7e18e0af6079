package usecase

import "stockinfo/internal/feature/stock/domain/entity"

// composeStock merges a price quote and a narrative into the canonical stock
// record. Pure function: the DB read path loads the same entity shape through
// the repository, so both paths serialize identically at the transport layer.
func composeStock(code string, quote entity.PriceQuote, narrative entity.Narrative) entity.Stock {
	return entity.Stock{
		Status:          quote.Status,
		PurchasedAmount: 0,
		PurchasedStatus: "",
		RequestDate:     quote.From,
		CompanyCode:     code,
		CompanyName:     narrative.CompanyName,
		StockValues: entity.StockValues{
			Open:  quote.Open,
			High:  quote.High,
			Low:   quote.Low,
			Close: quote.Close,
		},
		PerformanceData: narrative.PerformanceData,
		Competitors:     narrative.Competitors,
	}
}
