package marketwatch

import (
	"fmt"
	"strconv"
	"strings"

	"stockinfo/internal/feature/stock/domain/entity"
)

// parseNarrative converts the raw scraped texts into a Narrative.
// Performance cells and competitor market-cap values arrive as percent
// strings like "-5.52%". Competitor rows are tab separated:
// name, market-cap value, currency.
func parseNarrative(companyName string, performance, competitorRows []string) (entity.Narrative, error) {
	if len(performance) < 5 {
		return entity.Narrative{}, fmt.Errorf("expected 5 performance cells, got %d", len(performance))
	}

	values := make([]float64, 5)
	for i := range values {
		v, err := parsePercent(performance[i])
		if err != nil {
			return entity.Narrative{}, fmt.Errorf("performance cell %d: %w", i, err)
		}
		values[i] = v
	}

	competitors := make([]entity.Competitor, 0, len(competitorRows))
	for _, row := range competitorRows {
		fields := strings.Split(row, "\t")
		if len(fields) < 3 {
			return entity.Narrative{}, fmt.Errorf("malformed competitor row %q", row)
		}
		v, err := parsePercent(fields[1])
		if err != nil {
			return entity.Narrative{}, fmt.Errorf("competitor %q market cap: %w", fields[0], err)
		}
		competitors = append(competitors, entity.Competitor{
			Name: fields[0],
			MarketCap: entity.MarketCap{
				Currency: fields[2],
				Value:    v,
			},
		})
	}

	return entity.Narrative{
		CompanyName: companyName,
		PerformanceData: entity.PerformanceData{
			FiveDays:    values[0],
			OneMonth:    values[1],
			ThreeMonths: values[2],
			YearToDate:  values[3],
			OneYear:     values[4],
		},
		Competitors: competitors,
	}, nil
}

func parsePercent(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(s), "%"), 64)
}
