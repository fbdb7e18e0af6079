// Package marketwatch scrapes stock narrative data (company name, trailing
// performance, competitors) from the MarketWatch site with a headless
// browser.
package marketwatch

import (
	"os"
	"time"
)

// Config holds configuration for the MarketWatch scraper.
type Config struct {
	BaseURL  string        // Base URL of the site (e.g., "https://www.marketwatch.com")
	Timeout  time.Duration // Upper bound for one full scrape, page load included
	Headless bool          // Run the browser without a window
}

// LoadConfig loads scraper configuration from environment variables.
func LoadConfig() Config {
	base := os.Getenv("MARKETWATCH_BASE_URL")
	if base == "" {
		base = "https://www.marketwatch.com"
	}
	return Config{
		BaseURL:  base,
		Timeout:  45 * time.Second,
		Headless: os.Getenv("SCRAPER_HEADFUL") == "",
	}
}
