package marketwatch

import (
	"context"
	"fmt"
	"math/rand"
	"net/url"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"stockinfo/internal/feature/stock/domain/entity"
	"stockinfo/internal/feature/stock/usecase"
)

// userAgents is rotated per scrape so consecutive page loads do not share a
// fingerprint.
var userAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/127.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/127.0.0.0 Safari/537.36",
	"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0.0.0 Safari/537.36",
}

// The site blocks automated browsers that expose navigator.webdriver.
const stealthScript = `Object.defineProperty(navigator, 'webdriver', {get: () => undefined})`

// Scraper is a NarrativeSource implementation driving a headless Chrome
// instance. One Fetch is one full browser session; the concrete extraction
// technique stays behind the NarrativeSource interface.
type Scraper struct {
	cfg Config
}

// Compile-time check that Scraper implements NarrativeSource.
var _ usecase.NarrativeSource = (*Scraper)(nil)

// NewScraper creates a new Scraper with the given configuration.
func NewScraper(cfg Config) *Scraper {
	return &Scraper{cfg: cfg}
}

// Fetch loads the stock page for a symbol and extracts the company name, the
// five performance cells and the competitors table. The run is bounded by
// the configured timeout; cancelling ctx aborts the browser mid-navigation.
func (s *Scraper) Fetch(ctx context.Context, symbol string) (entity.Narrative, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", s.cfg.Headless),
		chromedp.UserAgent(userAgents[rand.Intn(len(userAgents))]),
	)
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	var (
		companyName    string
		performance    []string
		competitorRows []string
	)
	err := chromedp.Run(browserCtx,
		chromedp.ActionFunc(func(ctx context.Context) error {
			_, err := page.AddScriptToEvaluateOnNewDocument(stealthScript).Do(ctx)
			return err
		}),
		chromedp.Navigate(s.cfg.BaseURL+"/investing/stock/"+url.PathEscape(symbol)),
		chromedp.WaitVisible(".company__name", chromedp.ByQuery),
		chromedp.Text(".company__name", &companyName, chromedp.ByQuery),
		chromedp.Evaluate(
			`Array.from(document.querySelectorAll(".content__item.value.ignore-color")).map(e => e.innerText)`,
			&performance),
		chromedp.Evaluate(
			`Array.from(document.querySelectorAll(".Competitors > table > tbody > tr")).map(e => e.innerText)`,
			&competitorRows),
	)
	if err != nil {
		return entity.Narrative{}, fmt.Errorf("marketwatch scrape %s: %w", symbol, err)
	}

	return parseNarrative(companyName, performance, competitorRows)
}
