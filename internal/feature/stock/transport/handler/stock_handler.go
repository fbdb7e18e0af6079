// Package handler provides the HTTP handlers for the stock feature.
package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"stockinfo/internal/feature/stock/domain/entity"
	"stockinfo/internal/feature/stock/transport/http/dto"
	"stockinfo/internal/feature/stock/usecase"
)

// StockUsecase is the usecase interface consumed by the handlers. Following
// Go convention, the interface is defined on the consumer (handler) side.
type StockUsecase interface {
	GetStock(ctx context.Context, symbol string) (entity.Stock, error)
	AddPurchasedAmount(ctx context.Context, symbol string, amount int) error
	Seed(ctx context.Context) error
}

// StockHandler handles the HTTP requests of the stock feature.
type StockHandler struct {
	uc StockUsecase
}

// NewStockHandler creates a new StockHandler with the given usecase.
func NewStockHandler(uc StockUsecase) *StockHandler {
	return &StockHandler{uc: uc}
}

// GetStockHandler returns the canonical stock record for a symbol.
//
// GET /stock/:symbol
func (h *StockHandler) GetStockHandler(c *gin.Context) {
	symbol := c.Param("symbol")

	stock, err := h.uc.GetStock(c.Request.Context(), symbol)
	if errors.Is(err, usecase.ErrStockNotFound) {
		c.JSON(http.StatusNotFound, dto.MessageResponse{
			Message: fmt.Sprintf("%s not found.", symbol),
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.NewStockResponse(stock))
}

// UpdateAmountHandler adjusts the purchased amount of a stored stock.
//
// POST /stock/:symbol with body {"amount": n}
func (h *StockHandler) UpdateAmountHandler(c *gin.Context) {
	symbol := c.Param("symbol")

	var req dto.StockUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	err := h.uc.AddPurchasedAmount(c.Request.Context(), symbol, req.Amount)

	var invalid *usecase.InvalidAmountError
	switch {
	case errors.Is(err, usecase.ErrStockNotHeld):
		c.JSON(http.StatusPreconditionFailed, dto.MessageResponse{
			Message: fmt.Sprintf("Precondition failed, %s is not valid.", symbol),
		})
	case errors.As(err, &invalid):
		c.JSON(http.StatusPreconditionFailed, dto.MessageResponse{
			Message: fmt.Sprintf("Precondition failed, %d is not valid.", invalid.Resulting),
		})
	case err != nil:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusCreated, dto.MessageResponse{
			Message: fmt.Sprintf("%d units of stock %s were added to your stock record", req.Amount, symbol),
		})
	}
}

// InitStockHandler seeds the fixed demonstration record. Development and test
// aid only; re-seeding is a no-op.
//
// PUT /stock/init
func (h *StockHandler) InitStockHandler(c *gin.Context) {
	if err := h.uc.Seed(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, "initialized")
}
