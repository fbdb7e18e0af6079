package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"stockinfo/internal/feature/stock/domain/entity"
)

const (
	// quoteLag is how far back the daily open/close request looks. The price
	// API publishes end-of-day data, so two days ago is the newest date that
	// is guaranteed to be closed out.
	quoteLag = 48 * time.Hour

	dateLayout = "2006-01-02"
)

// StockRepository abstracts the persistence layer for the stock aggregate.
// Following Go convention, interfaces are defined on the consumer (usecase)
// side.
type StockRepository interface {
	// FindByCode loads the full stock graph for a normalized company code.
	// Returns ErrStockNotFound when no row exists.
	FindByCode(ctx context.Context, code string) (entity.Stock, error)

	// Create persists a full stock graph in one transaction.
	Create(ctx context.Context, stock entity.Stock) error

	// AddPurchasedAmount atomically adjusts the purchased amount of the stock
	// with the given code. Returns ErrStockNotHeld when the code is unknown
	// and *InvalidAmountError when the adjustment would go below zero.
	AddPurchasedAmount(ctx context.Context, code string, amount int) error
}

// PriceSource supplies a single day's open/close reading for a symbol.
// Implementations return ErrSymbolUnknown for symbols the source has no data
// for.
type PriceSource interface {
	DailyOpenClose(ctx context.Context, symbol, date string) (entity.PriceQuote, error)
}

// NarrativeSource supplies the qualitative data for a symbol: company name,
// trailing performance and competitors.
type NarrativeSource interface {
	Fetch(ctx context.Context, symbol string) (entity.Narrative, error)
}

// stockUsecase resolves canonical stock records and adjusts the purchase
// ledger.
type stockUsecase struct {
	repo       StockRepository
	prices     PriceSource
	narratives NarrativeSource
	inflight   singleflight.Group
	now        func() time.Time
}

// NewStockUsecase creates a new stockUsecase instance.
func NewStockUsecase(repo StockRepository, prices PriceSource, narratives NarrativeSource) *stockUsecase {
	return &stockUsecase{
		repo:       repo,
		prices:     prices,
		narratives: narratives,
		now:        time.Now,
	}
}

// NormalizeCode lowers a ticker symbol into its stored lookup form. The
// company code is unique under case-insensitive comparison, so the store
// only ever sees the normalized form.
func NormalizeCode(symbol string) string {
	return strings.ToLower(strings.TrimSpace(symbol))
}

// GetStock returns the canonical record for a symbol, serving from the store
// when present and resolving through the external sources on a miss. No
// external call is made on a hit.
func (su *stockUsecase) GetStock(ctx context.Context, symbol string) (entity.Stock, error) {
	code := NormalizeCode(symbol)

	stock, err := su.repo.FindByCode(ctx, code)
	if err == nil {
		return stock, nil
	}
	if !errors.Is(err, ErrStockNotFound) {
		return entity.Stock{}, err
	}

	// Miss. Concurrent requests for the same code share one
	// fetch-and-persist attempt instead of racing on the unique-key insert.
	resolveOnce := func() (any, error) {
		// The miss may be stale: a flight that completed between our store
		// read and joining the group has already inserted the record.
		stock, err := su.repo.FindByCode(ctx, code)
		if err == nil {
			return stock, nil
		}
		if !errors.Is(err, ErrStockNotFound) {
			return entity.Stock{}, err
		}
		return su.resolve(ctx, code)
	}

	v, err, shared := su.inflight.Do(code, resolveOnce)
	if shared && ctx.Err() == nil &&
		(errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)) {
		// A shared flight runs under the winning caller's context. When the
		// winner went away mid-flight, run our own instead of surfacing its
		// cancellation.
		v, err, _ = su.inflight.Do(code, resolveOnce)
	}
	if err != nil {
		return entity.Stock{}, err
	}
	return v.(entity.Stock), nil
}

// resolve composes a record from both external sources and writes it through
// to the store.
func (su *stockUsecase) resolve(ctx context.Context, code string) (entity.Stock, error) {
	date := su.now().Add(-quoteLag).Format(dateLayout)

	quote, err := su.prices.DailyOpenClose(ctx, code, date)
	if errors.Is(err, ErrSymbolUnknown) {
		// The price source is the authoritative "this symbol does not exist"
		// signal. Nothing is persisted.
		return entity.Stock{}, fmt.Errorf("%w: %s", ErrStockNotFound, code)
	}
	if err != nil {
		return entity.Stock{}, err
	}

	narrative, err := su.narratives.Fetch(ctx, code)
	if err != nil {
		if ctx.Err() != nil {
			// Caller is gone; do not persist a partial graph.
			return entity.Stock{}, ctx.Err()
		}
		slog.Warn("narrative source failed, falling back to empty narrative",
			"code", code, "error", err)
		narrative = entity.Narrative{}
	}

	stock := composeStock(code, quote, narrative)
	if err := su.repo.Create(ctx, stock); err != nil {
		// Another process may have inserted the same code and won the
		// unique-key race. The stored copy is the canonical record.
		if stored, findErr := su.repo.FindByCode(ctx, code); findErr == nil {
			return stored, nil
		}
		return entity.Stock{}, err
	}
	return stock, nil
}

// AddPurchasedAmount adjusts the purchased amount for a symbol. The amount
// may be negative; the stored counter never drops below zero.
func (su *stockUsecase) AddPurchasedAmount(ctx context.Context, symbol string, amount int) error {
	return su.repo.AddPurchasedAmount(ctx, NormalizeCode(symbol), amount)
}
