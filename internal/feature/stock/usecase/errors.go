// Package usecase implements the stock resolution pipeline and the purchase
// ledger.
package usecase

import (
	"errors"
	"fmt"
)

var (
	// ErrStockNotFound is returned when a symbol is neither stored nor known
	// to the external price source.
	ErrStockNotFound = errors.New("stock not found")

	// ErrStockNotHeld is returned when a purchase adjustment targets a symbol
	// that is absent from the store. It is a precondition failure, distinct
	// from the read path's ErrStockNotFound.
	ErrStockNotHeld = errors.New("stock not in record")

	// ErrSymbolUnknown is returned by PriceSource implementations when the
	// external API has no data for a symbol.
	ErrSymbolUnknown = errors.New("symbol unknown to price source")
)

// InvalidAmountError is returned when a purchase adjustment would drive the
// purchased amount below zero. Resulting carries the rejected total.
type InvalidAmountError struct {
	Resulting int
}

func (e *InvalidAmountError) Error() string {
	return fmt.Sprintf("invalid resulting purchased amount %d", e.Resulting)
}
