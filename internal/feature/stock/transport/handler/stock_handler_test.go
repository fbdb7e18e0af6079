package handler_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"stockinfo/internal/feature/stock/domain/entity"
	"stockinfo/internal/feature/stock/transport/handler"
	"stockinfo/internal/feature/stock/usecase"
)

// mockStockUsecase is a mock implementation of the StockUsecase interface.
type mockStockUsecase struct {
	GetStockFunc           func(ctx context.Context, symbol string) (entity.Stock, error)
	AddPurchasedAmountFunc func(ctx context.Context, symbol string, amount int) error
	SeedFunc               func(ctx context.Context) error
}

func (m *mockStockUsecase) GetStock(ctx context.Context, symbol string) (entity.Stock, error) {
	return m.GetStockFunc(ctx, symbol)
}

func (m *mockStockUsecase) AddPurchasedAmount(ctx context.Context, symbol string, amount int) error {
	return m.AddPurchasedAmountFunc(ctx, symbol, amount)
}

func (m *mockStockUsecase) Seed(ctx context.Context) error {
	return m.SeedFunc(ctx)
}

func newTestRouter(uc handler.StockUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := handler.NewStockHandler(uc)

	router := gin.New()
	router.GET("/stock/:symbol", h.GetStockHandler)
	router.POST("/stock/:symbol", h.UpdateAmountHandler)
	router.PUT("/stock/init", h.InitStockHandler)
	return router
}

var demoRecord = entity.Stock{
	Status:          "OK",
	PurchasedAmount: 0,
	PurchasedStatus: "OK",
	RequestDate:     "2024-08-06",
	CompanyCode:     "aapl",
	CompanyName:     "Apple Inc.",
	StockValues:     entity.StockValues{Open: 205.3, High: 209.99, Low: 201.07, Close: 207.23},
	PerformanceData: entity.PerformanceData{FiveDays: -5.52, OneMonth: -9.94, ThreeMonths: 14.82, YearToDate: 8.98, OneYear: 17.75},
	Competitors: []entity.Competitor{
		{Name: "Microsoft Corp.", MarketCap: entity.MarketCap{Currency: "$2.97T", Value: -0.30}},
	},
}

// TestStockHandler_GetStockHandler tests the read path's status codes and
// the canonical response layout.
func TestStockHandler_GetStockHandler(t *testing.T) {
	tests := []struct {
		name           string
		url            string
		mockGetStock   func(ctx context.Context, symbol string) (entity.Stock, error)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "success: canonical record",
			url:  "/stock/AAPL",
			mockGetStock: func(ctx context.Context, symbol string) (entity.Stock, error) {
				assert.Equal(t, "AAPL", symbol)
				return demoRecord, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{
				"status": "OK",
				"purchased_amount": 0,
				"purchased_status": "OK",
				"request_data": "2024-08-06",
				"company_code": "aapl",
				"company_name": "Apple Inc.",
				"stock_values": {"open": 205.3, "high": 209.99, "low": 201.07, "close": 207.23},
				"performance_data": {"five_days": -5.52, "one_month": -9.94, "three_months": 14.82, "year_to_date": 8.98, "one_year": 17.75},
				"competitors": [{"name": "Microsoft Corp.", "market_cap": {"currency": "$2.97T", "value": -0.3}}]
			}`,
		},
		{
			name: "success: empty competitor list encodes as array",
			url:  "/stock/AAPL",
			mockGetStock: func(ctx context.Context, symbol string) (entity.Stock, error) {
				record := demoRecord
				record.Competitors = nil
				return record, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{
				"status": "OK",
				"purchased_amount": 0,
				"purchased_status": "OK",
				"request_data": "2024-08-06",
				"company_code": "aapl",
				"company_name": "Apple Inc.",
				"stock_values": {"open": 205.3, "high": 209.99, "low": 201.07, "close": 207.23},
				"performance_data": {"five_days": -5.52, "one_month": -9.94, "three_months": 14.82, "year_to_date": 8.98, "one_year": 17.75},
				"competitors": []
			}`,
		},
		{
			name: "error: unknown symbol returns 404",
			url:  "/stock/xxxxx",
			mockGetStock: func(ctx context.Context, symbol string) (entity.Stock, error) {
				return entity.Stock{}, usecase.ErrStockNotFound
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"message": "xxxxx not found."}`,
		},
		{
			name: "error: source failure returns 502",
			url:  "/stock/AAPL",
			mockGetStock: func(ctx context.Context, symbol string) (entity.Stock, error) {
				return entity.Stock{}, errors.New("polygon http 500")
			},
			expectedStatus: http.StatusBadGateway,
			expectedBody:   `{"error": "polygon http 500"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(&mockStockUsecase{GetStockFunc: tt.mockGetStock})

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodGet, tt.url, nil)

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

// TestStockHandler_UpdateAmountHandler tests the ledger endpoint's status
// codes and bodies.
func TestStockHandler_UpdateAmountHandler(t *testing.T) {
	tests := []struct {
		name           string
		url            string
		body           string
		mockAdd        func(ctx context.Context, symbol string, amount int) error
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "success: amount added",
			url:  "/stock/AAPL",
			body: `{"amount": 3}`,
			mockAdd: func(ctx context.Context, symbol string, amount int) error {
				assert.Equal(t, "AAPL", symbol)
				assert.Equal(t, 3, amount)
				return nil
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `{"message": "3 units of stock AAPL were added to your stock record"}`,
		},
		{
			name: "error: unknown stock returns 412",
			url:  "/stock/xxxxx",
			body: `{"amount": 1}`,
			mockAdd: func(ctx context.Context, symbol string, amount int) error {
				return usecase.ErrStockNotHeld
			},
			expectedStatus: http.StatusPreconditionFailed,
			expectedBody:   `{"message": "Precondition failed, xxxxx is not valid."}`,
		},
		{
			name: "error: negative resulting amount returns 412",
			url:  "/stock/AAPL",
			body: `{"amount": -5}`,
			mockAdd: func(ctx context.Context, symbol string, amount int) error {
				return &usecase.InvalidAmountError{Resulting: -3}
			},
			expectedStatus: http.StatusPreconditionFailed,
			expectedBody:   `{"message": "Precondition failed, -3 is not valid."}`,
		},
		{
			name: "error: store failure returns 500",
			url:  "/stock/AAPL",
			body: `{"amount": 1}`,
			mockAdd: func(ctx context.Context, symbol string, amount int) error {
				return errors.New("database error")
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error": "database error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(&mockStockUsecase{AddPurchasedAmountFunc: tt.mockAdd})

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodPost, tt.url, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

// TestStockHandler_UpdateAmountHandler_BadBody verifies malformed bodies are
// rejected before the usecase runs.
func TestStockHandler_UpdateAmountHandler_BadBody(t *testing.T) {
	router := newTestRouter(&mockStockUsecase{
		AddPurchasedAmountFunc: func(ctx context.Context, symbol string, amount int) error {
			t.Error("usecase must not be called for a malformed body")
			return nil
		},
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/stock/AAPL", bytes.NewReader([]byte(`{"amount": "three"}`)))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// TestStockHandler_InitStockHandler tests the demo seed endpoint.
func TestStockHandler_InitStockHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		router := newTestRouter(&mockStockUsecase{
			SeedFunc: func(ctx context.Context) error { return nil },
		})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPut, "/stock/init", nil)

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `"initialized"`, w.Body.String())
	})

	t.Run("error: seed failure returns 500", func(t *testing.T) {
		router := newTestRouter(&mockStockUsecase{
			SeedFunc: func(ctx context.Context) error { return errors.New("database error") },
		})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPut, "/stock/init", nil)

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error": "database error"}`, w.Body.String())
	})
}
