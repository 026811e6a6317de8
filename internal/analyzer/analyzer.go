package analyzer

import (
	"strings"

	"github.com/michal/smartresume/internal/types"
)

// Analyze scores extracted resume text against the given criteria and
// produces a fresh ScoreReport. The call is pure and synchronous: it reads
// its inputs, allocates its own result, and is safe to invoke concurrently.
//
// roleID selects role-specific suggestions; unknown role ids simply
// contribute no role tips.
func Analyze(text string, criteria *types.AnalysisCriteria, roleID string) *types.ScoreReport {
	lower := strings.ToLower(text)
	wordCount := len(strings.Fields(lower))

	keywords := AnalyzeKeywords(lower, criteria)
	scores := types.CategoryScores{
		Keywords:   keywords.Score,
		Structure:  AnalyzeStructure(lower, wordCount),
		Experience: AnalyzeExperience(lower, text),
		Education:  AnalyzeEducation(lower),
		Skills:     AnalyzeSkills(lower, criteria),
	}

	overall := OverallScore(scores, criteria)

	return &types.ScoreReport{
		OverallScore: overall,
		Strengths:    generateStrengths(lower, scores),
		Improvements: generateImprovements(scores, keywords.Missing, wordCount),
		Suggestions:  generateSuggestions(roleID, overall, keywords),
		Keywords:     keywords,
	}
}

// ContentScore exposes the writing-quality heuristic for callers that want it
// alongside the weighted categories; it does not participate in the overall
// score.
func ContentScore(text string) int {
	lower := strings.ToLower(text)
	return AnalyzeContent(lower, len(strings.Fields(lower)))
}
