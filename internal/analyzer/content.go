package analyzer

import (
	"regexp"
	"strings"
)

// actionWords are the verbs that signal achievement-oriented writing.
var actionWords = []string{
	"achieved", "developed", "managed", "led", "created",
	"implemented", "improved", "increased", "reduced", "designed",
}

var (
	percentPattern = regexp.MustCompile(`\d+%`)
	dollarPattern  = regexp.MustCompile(`\$\d+`)
)

// AnalyzeContent scores writing quality: 40 points for ideal length (20 for
// at least 100 words), up to 30 for distinct action words at 5 apiece, and 15
// each for quantified percentage and dollar figures. Capped at 100.
func AnalyzeContent(text string, wordCount int) int {
	score := 0

	switch {
	case wordCount >= minIdealWords && wordCount <= maxIdealWords:
		score += 40
	case wordCount >= 100:
		score += 20
	}

	actionWordCount := 0
	for _, word := range actionWords {
		if strings.Contains(text, word) {
			actionWordCount++
		}
	}
	score += min(30, actionWordCount*5)

	if percentPattern.MatchString(text) {
		score += 15
	}
	if dollarPattern.MatchString(text) {
		score += 15
	}

	return min(100, score)
}
