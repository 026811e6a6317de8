package analyzer

import (
	"strings"

	"github.com/michal/smartresume/internal/types"
)

// roleSuggestions holds role-specific resume tips, keyed by job role id.
var roleSuggestions = map[string][]string{
	"full-stack-developer": {
		"Highlight both frontend and backend technologies",
		"Include specific programming languages and frameworks",
		"Mention full-stack project examples",
	},
	"data-analyst": {
		"Emphasize data visualization tools (Tableau, Power BI)",
		"Include statistical analysis experience",
		"Mention specific database technologies (SQL, NoSQL)",
	},
	"mobile-developer": {
		"Specify mobile platforms (iOS, Android, React Native)",
		"Include app store deployment experience",
		"Mention mobile development frameworks",
	},
}

// generateStrengths maps category scores to canned strength lines. The list
// is never empty: a fallback line is emitted when no threshold is met.
func generateStrengths(text string, scores types.CategoryScores) []string {
	var strengths []string

	if scores.Keywords >= 70 {
		strengths = append(strengths, "Good use of relevant keywords for your target role")
	}
	if scores.Structure >= 80 {
		strengths = append(strengths, "Well-structured resume with clear sections")
	}
	if scores.Experience >= 75 {
		strengths = append(strengths, "Strong work experience presentation")
	}
	if scores.Education >= 70 {
		strengths = append(strengths, "Educational background is well documented")
	}
	if scores.Skills >= 75 {
		strengths = append(strengths, "Technical skills are effectively highlighted")
	}
	if strings.Contains(text, "%") || strings.Contains(text, "$") {
		strengths = append(strengths, "Includes quantifiable achievements")
	}

	if len(strengths) == 0 {
		strengths = append(strengths, "Resume contains basic required information")
	}
	return strengths
}

// generateImprovements maps low category scores, missing keywords, and length
// problems to canned improvement lines. Unlike suggestions, the list is not
// deduplicated.
func generateImprovements(scores types.CategoryScores, missingKeywords []string, wordCount int) []string {
	var improvements []string

	if scores.Keywords < 60 {
		improvements = append(improvements, "Include more industry-relevant keywords")
	}
	if scores.Structure < 70 {
		improvements = append(improvements, "Improve resume structure with clearer section headings")
	}
	if scores.Experience < 60 {
		improvements = append(improvements, "Provide more detailed work experience descriptions")
	}
	if scores.Skills < 60 {
		improvements = append(improvements, "Add more technical skills relevant to your field")
	}

	if len(missingKeywords) > 0 {
		top := missingKeywords
		if len(top) > 5 {
			top = top[:5]
		}
		improvements = append(improvements, "Consider adding these missing keywords: "+strings.Join(top, ", "))
	}

	if wordCount < minIdealWords {
		improvements = append(improvements, "Expand content - resume appears too brief")
	}
	if wordCount > maxIdealWords {
		improvements = append(improvements, "Consider condensing content for better readability")
	}

	return improvements
}

// generateSuggestions combines role-specific tips, score-band tips, and a
// low-keyword-count tip, deduplicated in first-seen order.
func generateSuggestions(roleID string, overallScore int, keywords types.KeywordStats) []string {
	var suggestions []string

	suggestions = append(suggestions, roleSuggestions[roleID]...)

	if overallScore < 60 {
		suggestions = append(suggestions,
			"Consider using a professional resume template",
			"Add more specific examples of your achievements")
	}
	if overallScore >= 80 {
		suggestions = append(suggestions, "Your resume is strong - consider tailoring it for specific job postings")
	}
	if keywords.Found < 5 {
		suggestions = append(suggestions, "Research job postings in your field to identify missing keywords")
	}

	return dedupe(suggestions)
}

// dedupe removes duplicates while preserving first-seen order.
func dedupe(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if !seen[item] {
			seen[item] = true
			out = append(out, item)
		}
	}
	return out
}
