package analyzer

import (
	"testing"

	"github.com/michal/smartresume/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateStrengths_Thresholds(t *testing.T) {
	scores := types.CategoryScores{
		Keywords:   70,
		Structure:  80,
		Experience: 75,
		Education:  70,
		Skills:     75,
	}

	strengths := generateStrengths("plain text", scores)
	assert.Len(t, strengths, 5)
}

func TestGenerateStrengths_FallbackNeverEmpty(t *testing.T) {
	strengths := generateStrengths("plain text", types.CategoryScores{})
	require.Len(t, strengths, 1)
	assert.Equal(t, "Resume contains basic required information", strengths[0])
}

func TestGenerateStrengths_QuantifiableAchievements(t *testing.T) {
	strengths := generateStrengths("improved margins by 20%", types.CategoryScores{})
	assert.Contains(t, strengths, "Includes quantifiable achievements")
}

func TestGenerateImprovements_LowScores(t *testing.T) {
	scores := types.CategoryScores{Keywords: 59, Structure: 69, Experience: 59, Skills: 59}

	improvements := generateImprovements(scores, nil, 400)
	assert.Len(t, improvements, 4)
}

func TestGenerateImprovements_MissingKeywordsTopFive(t *testing.T) {
	missing := []string{"a", "b", "c", "d", "e", "f", "g"}
	improvements := generateImprovements(types.CategoryScores{Keywords: 90, Structure: 90, Experience: 90, Skills: 90}, missing, 400)

	require.Len(t, improvements, 1)
	assert.Equal(t, "Consider adding these missing keywords: a, b, c, d, e", improvements[0])
}

func TestGenerateImprovements_LengthLines(t *testing.T) {
	high := types.CategoryScores{Keywords: 90, Structure: 90, Experience: 90, Skills: 90}

	brief := generateImprovements(high, nil, 100)
	require.Len(t, brief, 1)
	assert.Contains(t, brief[0], "too brief")

	verbose := generateImprovements(high, nil, 900)
	require.Len(t, verbose, 1)
	assert.Contains(t, verbose[0], "condensing")
}

func TestGenerateSuggestions_RoleTips(t *testing.T) {
	suggestions := generateSuggestions("data-analyst", 70, types.KeywordStats{Found: 10})
	assert.Equal(t, roleSuggestions["data-analyst"], suggestions)
}

func TestGenerateSuggestions_UnknownRole(t *testing.T) {
	suggestions := generateSuggestions("unknown-role", 70, types.KeywordStats{Found: 10})
	assert.Empty(t, suggestions)
}

func TestGenerateSuggestions_ScoreBands(t *testing.T) {
	low := generateSuggestions("", 40, types.KeywordStats{Found: 10})
	assert.Contains(t, low, "Consider using a professional resume template")
	assert.Contains(t, low, "Add more specific examples of your achievements")

	high := generateSuggestions("", 85, types.KeywordStats{Found: 10})
	assert.Contains(t, high, "Your resume is strong - consider tailoring it for specific job postings")
}

func TestGenerateSuggestions_LowKeywordCount(t *testing.T) {
	suggestions := generateSuggestions("", 70, types.KeywordStats{Found: 4})
	assert.Contains(t, suggestions, "Research job postings in your field to identify missing keywords")
}

func TestGenerateSuggestions_Deduplicated(t *testing.T) {
	// Force a duplicate by running twice through dedupe directly.
	out := dedupe([]string{"a", "b", "a", "c", "b"})
	assert.Equal(t, []string{"a", "b", "c"}, out)
}
