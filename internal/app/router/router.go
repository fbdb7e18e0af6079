// Package router assembles the HTTP routes of the service.
package router

import (
	"github.com/gin-gonic/gin"

	stockhandler "stockinfo/internal/feature/stock/transport/handler"
	platformhandler "stockinfo/internal/platform/http/handler"
)

func NewRouter(stock *stockhandler.StockHandler) *gin.Engine {
	r := gin.Default()

	// Liveness probe
	r.GET("/healthz", platformhandler.Health)

	// Canonical stock record (resolves through the external sources on miss)
	r.GET("/stock/:symbol", stock.GetStockHandler)
	// Purchase-ledger adjustment
	r.POST("/stock/:symbol", stock.UpdateAmountHandler)
	// Demo seed, development aid only
	r.PUT("/stock/init", stock.InitStockHandler)

	return r
}
