package cache

import (
	"context"
	"sync"

	"stockinfo/internal/feature/stock/domain/entity"
	"stockinfo/internal/feature/stock/usecase"
)

// MemoNarrativeSource decorates a NarrativeSource with an in-process,
// process-lifetime memo keyed by symbol. A scrape costs multiple seconds of
// headless-browser time, so a successful result is kept for as long as the
// process lives. Failures are not memoized, which lets a later request retry
// after a transient scrape error.
type MemoNarrativeSource struct {
	inner usecase.NarrativeSource

	mu   sync.Mutex
	memo map[string]entity.Narrative
}

// NewMemoNarrativeSource decorates a NarrativeSource with the memo.
func NewMemoNarrativeSource(inner usecase.NarrativeSource) *MemoNarrativeSource {
	return &MemoNarrativeSource{
		inner: inner,
		memo:  map[string]entity.Narrative{},
	}
}

// Fetch returns the memoized narrative for a symbol, fetching through the
// wrapped source on first use. The lock is not held across the fetch; the
// resolution pipeline already coalesces concurrent requests per symbol.
func (c *MemoNarrativeSource) Fetch(ctx context.Context, symbol string) (entity.Narrative, error) {
	c.mu.Lock()
	if out, ok := c.memo[symbol]; ok {
		c.mu.Unlock()
		return out, nil
	}
	c.mu.Unlock()

	out, err := c.inner.Fetch(ctx, symbol)
	if err != nil {
		return entity.Narrative{}, err
	}

	c.mu.Lock()
	c.memo[symbol] = out
	c.mu.Unlock()
	return out, nil
}
