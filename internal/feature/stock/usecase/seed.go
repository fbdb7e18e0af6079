package usecase

import (
	"context"
	"errors"

	"stockinfo/internal/feature/stock/domain/entity"
)

// demoStock is the fixed record inserted by Seed. Development and test aid
// only; the figures match the sample AAPL snapshot used across environments.
var demoStock = entity.Stock{
	Status:          "OK",
	PurchasedAmount: 0,
	PurchasedStatus: "OK",
	RequestDate:     "2024-08-06",
	CompanyCode:     "aapl",
	CompanyName:     "Apple Inc.",
	StockValues: entity.StockValues{
		Open:  205.3,
		High:  209.99,
		Low:   201.07,
		Close: 207.23,
	},
	PerformanceData: entity.PerformanceData{
		FiveDays:    -5.52,
		OneMonth:    -9.94,
		ThreeMonths: 14.82,
		YearToDate:  8.98,
		OneYear:     17.75,
	},
	Competitors: []entity.Competitor{
		{
			Name: "Microsoft Corp.",
			MarketCap: entity.MarketCap{
				Currency: "$2.97T",
				Value:    -0.30,
			},
		},
	},
}

// Seed inserts the fixed demonstration record. Seeding an already seeded
// store is a no-op success, so the endpoint can be called repeatedly.
func (su *stockUsecase) Seed(ctx context.Context) error {
	_, err := su.repo.FindByCode(ctx, demoStock.CompanyCode)
	if err == nil {
		return nil
	}
	if !errors.Is(err, ErrStockNotFound) {
		return err
	}
	return su.repo.Create(ctx, demoStock)
}
