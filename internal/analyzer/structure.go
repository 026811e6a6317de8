package analyzer

import (
	"math"
	"strings"
)

// canonicalSections lists the five resume sections the structure check looks
// for, each with the substrings that count as evidence of the section.
var canonicalSections = []struct {
	name     string
	keywords []string
}{
	{"experience", []string{"experience", "work history", "employment", "career"}},
	{"education", []string{"education", "academic", "degree", "university", "college"}},
	{"skills", []string{"skills", "competencies", "abilities", "proficiencies"}},
	{"contact", []string{"email", "phone", "address", "contact"}},
	{"summary", []string{"summary", "objective", "profile", "about"}},
}

// Resumes between these word counts get the length bonus.
const (
	minIdealWords = 200
	maxIdealWords = 800
)

// AnalyzeStructure scores section coverage: each canonical section found via
// any of its keywords contributes a fifth of the score, and an ideal overall
// length adds a 20-point bonus, capped at 100.
func AnalyzeStructure(text string, wordCount int) int {
	foundSections := 0
	for _, section := range canonicalSections {
		for _, keyword := range section.keywords {
			if strings.Contains(text, keyword) {
				foundSections++
				break
			}
		}
	}

	score := float64(foundSections) / float64(len(canonicalSections)) * 100
	if wordCount >= minIdealWords && wordCount <= maxIdealWords {
		score = math.Min(100, score+20)
	}
	return int(math.Round(score))
}
