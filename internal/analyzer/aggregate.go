package analyzer

import (
	"math"

	"github.com/michal/smartresume/internal/types"
)

// OverallScore combines per-category scores using the criteria's weights:
// round(Σ categoryScore × weight / 100). Weights are taken as configured and
// never re-normalized, so weights summing to 100 with category scores in
// [0,100] keep the result in [0,100]; anything else is the caller's
// configuration choice.
func OverallScore(scores types.CategoryScores, criteria *types.AnalysisCriteria) int {
	byCategory := scores.ByCategory()
	total := 0.0
	for _, category := range types.ScoreCategories {
		total += float64(byCategory[category]) * float64(criteria.Weight(category)) / 100
	}
	return int(math.Round(total))
}
