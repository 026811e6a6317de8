// Package analyzer scores plain resume text against per-role criteria. Each
// analyzer is a pure function of its inputs; Analyze combines them into a
// ScoreReport with weighted aggregation and textual feedback.
package analyzer

import (
	"math"
	"strings"

	"github.com/michal/smartresume/internal/types"
)

// maxMissingKeywords caps the reported missing-keyword list.
const maxMissingKeywords = 10

// AnalyzeKeywords matches the union of the criteria's keyword lists against
// the lowercased text using case-insensitive substring containment. Matching
// is deliberately not word-boundary based ("java" matches "javascript"); the
// scoring thresholds were tuned against substring semantics.
func AnalyzeKeywords(text string, criteria *types.AnalysisCriteria) types.KeywordStats {
	all := criteria.AllKeywords()
	if len(all) == 0 {
		return types.KeywordStats{Missing: []string{}}
	}

	found := 0
	missing := make([]string, 0, maxMissingKeywords)
	for _, keyword := range all {
		if strings.Contains(text, strings.ToLower(keyword)) {
			found++
		} else if len(missing) < maxMissingKeywords {
			missing = append(missing, keyword)
		}
	}

	score := math.Min(100, float64(found)/float64(len(all))*100)
	return types.KeywordStats{
		Score:   int(math.Round(score)),
		Found:   found,
		Missing: missing,
	}
}
