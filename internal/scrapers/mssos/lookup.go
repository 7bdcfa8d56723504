package mssos

import (
	"context"
	"fmt"
	"mssos-scraper/pkg/htmlutil"
	"strings"

	"github.com/antzucaro/matchr"
)

func normalizeName(name string) string {
	return strings.ToLower(htmlutil.Normalize(name))
}

// ClosestMatch picks the summary whose name is the most similar to name by
// Jaro-Winkler distance, ties keep the earliest result.
func ClosestMatch(name string, results []BusinessSummary) (BusinessSummary, bool) {
	if len(results) == 0 {
		return BusinessSummary{}, false
	}

	target := normalizeName(name)
	best := 0
	bestScore := -1.0
	for i, result := range results {
		score := matchr.JaroWinkler(target, normalizeName(result.Name), false)
		if score > bestScore {
			best = i
			bestScore = score
		}
	}
	return results[best], true
}

// Lookup searches for name and returns the details of the closest match.
func (s Scraper) Lookup(ctx context.Context, name string) (BusinessDetail, bool) {
	results := s.Search(ctx, name)
	match, ok := ClosestMatch(name, results)
	if !ok {
		s.tel.ReportWarning(report_scraper_lookup, fmt.Errorf("no search results"), name)
		return BusinessDetail{}, false
	}
	s.tel.ReportDebug(report_scraper_lookup, name, match.Name, match.Url)
	return s.Details(ctx, match.Url)
}
