// Package adapters implements the stock feature's persistence against a
// relational store through GORM.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"stockinfo/internal/feature/stock/domain/entity"
	"stockinfo/internal/feature/stock/usecase"
)

type stockMySQL struct {
	db *gorm.DB
}

var _ usecase.StockRepository = (*stockMySQL)(nil)

func NewStockRepository(db *gorm.DB) *stockMySQL {
	return &stockMySQL{db: db}
}

// StockValuesModel is the stock_values table: one trading day's OHLC prices.
type StockValuesModel struct {
	ID    uint    `gorm:"primaryKey"`
	Open  float64 `gorm:"not null"`
	High  float64 `gorm:"not null"`
	Low   float64 `gorm:"not null"`
	Close float64 `gorm:"not null"`
}

func (StockValuesModel) TableName() string {
	return "stock_values"
}

// PerformanceDataModel is the performance_data table: trailing percentages
// over the five fixed windows.
type PerformanceDataModel struct {
	ID          uint    `gorm:"primaryKey"`
	FiveDays    float64 `gorm:"not null"`
	OneMonth    float64 `gorm:"not null"`
	ThreeMonths float64 `gorm:"not null"`
	YearToDate  float64 `gorm:"not null"`
	OneYear     float64 `gorm:"not null"`
}

func (PerformanceDataModel) TableName() string {
	return "performance_data"
}

// MarketCapModel is the market_caps table. Each row is owned by exactly one
// competitor.
type MarketCapModel struct {
	ID       uint   `gorm:"primaryKey"`
	Currency string `gorm:"size:15"`
	Value    float64
}

func (MarketCapModel) TableName() string {
	return "market_caps"
}

// StockModel is the stocks table. CompanyCode holds the normalized
// (lower-case) form with a uniqueness constraint on it, so lookups never rely
// on case-insensitive pattern matching.
type StockModel struct {
	ID              uint   `gorm:"primaryKey"`
	Status          string `gorm:"size:15"`
	PurchasedAmount int    `gorm:"not null;default:0"`
	PurchasedStatus string `gorm:"size:15"`
	RequestDate     string `gorm:"size:10"`
	CompanyCode     string `gorm:"size:20;not null;uniqueIndex"`
	CompanyName     string `gorm:"size:150"`

	StockValuesID     uint `gorm:"not null;index"`
	PerformanceDataID uint `gorm:"not null;index"`

	StockValues     StockValuesModel     `gorm:"foreignKey:StockValuesID"`
	PerformanceData PerformanceDataModel `gorm:"foreignKey:PerformanceDataID"`
}

func (StockModel) TableName() string {
	return "stocks"
}

// CompetitorModel is the competitors table.
type CompetitorModel struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:150"`
	StockID     uint   `gorm:"not null;index"`
	MarketCapID uint   `gorm:"not null;index"`

	MarketCap MarketCapModel `gorm:"foreignKey:MarketCapID"`
}

func (CompetitorModel) TableName() string {
	return "competitors"
}

// FindByCode loads the full stock graph (snapshots, competitors, market caps)
// for a normalized company code.
func (r *stockMySQL) FindByCode(ctx context.Context, code string) (entity.Stock, error) {
	var row StockModel
	err := r.db.WithContext(ctx).
		Preload("StockValues").
		Preload("PerformanceData").
		Where("company_code = ?", code).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entity.Stock{}, usecase.ErrStockNotFound
	}
	if err != nil {
		return entity.Stock{}, err
	}

	var competitors []CompetitorModel
	if err := r.db.WithContext(ctx).
		Preload("MarketCap").
		Where("stock_id = ?", row.ID).
		Find(&competitors).Error; err != nil {
		return entity.Stock{}, err
	}

	return toEntity(row, competitors), nil
}

// Create persists the full stock graph with children-before-parent ordering:
// both snapshots, then the stock row referencing them, then per competitor
// its market cap followed by the competitor row. The whole sequence runs in
// one transaction, so a failure at any step leaves no orphaned rows.
func (r *stockMySQL) Create(ctx context.Context, stock entity.Stock) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		values := StockValuesModel{
			Open:  stock.StockValues.Open,
			High:  stock.StockValues.High,
			Low:   stock.StockValues.Low,
			Close: stock.StockValues.Close,
		}
		if err := tx.Create(&values).Error; err != nil {
			return err
		}

		performance := PerformanceDataModel{
			FiveDays:    stock.PerformanceData.FiveDays,
			OneMonth:    stock.PerformanceData.OneMonth,
			ThreeMonths: stock.PerformanceData.ThreeMonths,
			YearToDate:  stock.PerformanceData.YearToDate,
			OneYear:     stock.PerformanceData.OneYear,
		}
		if err := tx.Create(&performance).Error; err != nil {
			return err
		}

		row := StockModel{
			Status:            stock.Status,
			PurchasedAmount:   stock.PurchasedAmount,
			PurchasedStatus:   stock.PurchasedStatus,
			RequestDate:       stock.RequestDate,
			CompanyCode:       usecase.NormalizeCode(stock.CompanyCode),
			CompanyName:       stock.CompanyName,
			StockValuesID:     values.ID,
			PerformanceDataID: performance.ID,
		}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}

		for _, competitor := range stock.Competitors {
			marketCap := MarketCapModel{
				Currency: competitor.MarketCap.Currency,
				Value:    competitor.MarketCap.Value,
			}
			if err := tx.Create(&marketCap).Error; err != nil {
				return err
			}
			if err := tx.Create(&CompetitorModel{
				Name:        competitor.Name,
				StockID:     row.ID,
				MarketCapID: marketCap.ID,
			}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// AddPurchasedAmount adjusts purchased_amount with a single guarded UPDATE,
// so the non-negativity check and the adjustment are atomic even under
// concurrent callers.
func (r *stockMySQL) AddPurchasedAmount(ctx context.Context, code string, amount int) error {
	res := r.db.WithContext(ctx).Model(&StockModel{}).
		Where("company_code = ? AND purchased_amount + ? >= 0", code, amount).
		Update("purchased_amount", gorm.Expr("purchased_amount + ?", amount))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 1 {
		return nil
	}

	// Zero rows touched: either the stock is missing or the adjustment would
	// go negative. Distinguish for the caller.
	var row StockModel
	err := r.db.WithContext(ctx).
		Select("purchased_amount").
		Where("company_code = ?", code).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return usecase.ErrStockNotHeld
	}
	if err != nil {
		return err
	}
	return &usecase.InvalidAmountError{Resulting: row.PurchasedAmount + amount}
}

func toEntity(row StockModel, competitors []CompetitorModel) entity.Stock {
	out := entity.Stock{
		Status:          row.Status,
		PurchasedAmount: row.PurchasedAmount,
		PurchasedStatus: row.PurchasedStatus,
		RequestDate:     row.RequestDate,
		CompanyCode:     row.CompanyCode,
		CompanyName:     row.CompanyName,
		StockValues: entity.StockValues{
			Open:  row.StockValues.Open,
			High:  row.StockValues.High,
			Low:   row.StockValues.Low,
			Close: row.StockValues.Close,
		},
		PerformanceData: entity.PerformanceData{
			FiveDays:    row.PerformanceData.FiveDays,
			OneMonth:    row.PerformanceData.OneMonth,
			ThreeMonths: row.PerformanceData.ThreeMonths,
			YearToDate:  row.PerformanceData.YearToDate,
			OneYear:     row.PerformanceData.OneYear,
		},
	}
	for _, competitor := range competitors {
		out.Competitors = append(out.Competitors, entity.Competitor{
			Name: competitor.Name,
			MarketCap: entity.MarketCap{
				Currency: competitor.MarketCap.Currency,
				Value:    competitor.MarketCap.Value,
			},
		})
	}
	return out
}
