package polygon

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"stockinfo/internal/feature/stock/domain/entity"
	"stockinfo/internal/feature/stock/usecase"
	"stockinfo/internal/platform/externalapi/polygon/dto"
	"stockinfo/internal/shared/ratelimiter"
)

// Client is a PriceSource implementation backed by the Polygon.io daily
// open/close endpoint. The API is paid and rate limited, so every call goes
// through the shared rate limiter.
type Client struct {
	cfg     Config
	client  *http.Client
	limiter ratelimiter.RateLimiterInterface
}

// Compile-time check that Client implements PriceSource.
var _ usecase.PriceSource = (*Client)(nil)

// NewClient creates a new Client with the given configuration, HTTP client
// and rate limiter. The limiter may be nil.
func NewClient(cfg Config, client *http.Client, limiter ratelimiter.RateLimiterInterface) *Client {
	return &Client{cfg: cfg, client: client, limiter: limiter}
}

// DailyOpenClose fetches the open/high/low/close reading for a symbol on the
// given trading day (YYYY-MM-DD). Returns usecase.ErrSymbolUnknown when the
// API has no data for the symbol.
func (p *Client) DailyOpenClose(ctx context.Context, symbol, date string) (entity.PriceQuote, error) {
	if p.limiter != nil {
		p.limiter.WaitIfNeeded()
	}

	u := fmt.Sprintf("%s/v1/open-close/%s/%s?adjusted=true",
		p.cfg.BaseURL, url.PathEscape(strings.ToUpper(symbol)), url.PathEscape(date))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return entity.PriceQuote{}, err
	}
	req.Header.Set("Authorization", "Bearer "+p.cfg.APIKey)

	res, err := p.client.Do(req)
	if err != nil {
		return entity.PriceQuote{}, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode == http.StatusNotFound {
		return entity.PriceQuote{}, fmt.Errorf("%w: %s", usecase.ErrSymbolUnknown, symbol)
	}
	if res.StatusCode >= 400 {
		return entity.PriceQuote{}, fmt.Errorf("polygon http %d", res.StatusCode)
	}

	var body dto.DailyOpenCloseResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return entity.PriceQuote{}, err
	}
	if body.Status == "NOT_FOUND" {
		return entity.PriceQuote{}, fmt.Errorf("%w: %s", usecase.ErrSymbolUnknown, symbol)
	}
	if body.Status == "ERROR" {
		return entity.PriceQuote{}, fmt.Errorf("polygon: %s", body.Message)
	}

	return entity.PriceQuote{
		Status: body.Status,
		From:   body.From,
		Symbol: body.Symbol,
		Open:   body.Open,
		High:   body.High,
		Low:    body.Low,
		Close:  body.Close,
		Volume: body.Volume,
	}, nil
}
