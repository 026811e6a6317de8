package analyzer

import (
	"math"
	"regexp"
	"strings"

	"github.com/michal/smartresume/internal/types"
)

// experienceIndicators are the substrings that signal a work-history narrative.
var experienceIndicators = []string{
	"years", "months", "experience", "worked", "position", "role", "job", "company",
}

// educationKeywords are the substrings that signal an education section.
var educationKeywords = []string{
	"degree", "bachelor", "master", "phd", "diploma",
	"certificate", "university", "college", "school",
}

var (
	// properNounPattern finds capitalized multi-word sequences in the
	// original-cased text, a rough proxy for company names.
	properNounPattern = regexp.MustCompile(`\b[A-Z][a-z]+(?:\s+[A-Z][a-z]+)+\b`)
	// graduationYearPattern matches four-digit years in the 2000s.
	graduationYearPattern = regexp.MustCompile(`20\d{2}`)
)

// AnalyzeExperience scores experience coverage from indicator matches against
// the lowercased text, plus 5 points per distinct capitalized multi-word
// sequence found in the original-cased text. Capped at 100.
func AnalyzeExperience(text, originalText string) int {
	found := 0
	for _, indicator := range experienceIndicators {
		if strings.Contains(text, indicator) {
			found++
		}
	}
	score := math.Min(100, float64(found)/float64(len(experienceIndicators))*100)

	seen := make(map[string]bool)
	for _, match := range properNounPattern.FindAllString(originalText, -1) {
		seen[match] = true
	}
	score = math.Min(100, score+float64(len(seen)*5))

	return int(math.Round(score))
}

// AnalyzeEducation scores education coverage from keyword matches, with a
// 20-point bonus when a 2000s graduation year appears. Capped at 100.
func AnalyzeEducation(text string) int {
	found := 0
	for _, keyword := range educationKeywords {
		if strings.Contains(text, keyword) {
			found++
		}
	}
	score := float64(found) / float64(len(educationKeywords)) * 100

	if graduationYearPattern.MatchString(text) {
		score = math.Min(100, score+20)
	}
	return int(math.Round(score))
}

// AnalyzeSkills scores coverage of the criteria's technical keywords, with a
// 25-point bonus when the text names a skills section outright. Capped at 100.
func AnalyzeSkills(text string, criteria *types.AnalysisCriteria) int {
	score := 0.0
	if len(criteria.TechnicalKeywords) > 0 {
		found := 0
		for _, skill := range criteria.TechnicalKeywords {
			if strings.Contains(text, strings.ToLower(skill)) {
				found++
			}
		}
		score = float64(found) / float64(len(criteria.TechnicalKeywords)) * 100
	}

	if strings.Contains(text, "skills") || strings.Contains(text, "competencies") {
		score = math.Min(100, score+25)
	}
	return int(math.Round(score))
}
