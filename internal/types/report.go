package types

// KeywordStats summarizes the keyword portion of an analysis: how many of the
// configured keywords appeared in the text and which ones were absent. Missing
// is capped at the ten highest-priority absentees (list order follows the
// criteria's required, preferred, technical ordering).
type KeywordStats struct {
	Score   int      `json:"score"`
	Found   int      `json:"found"`
	Missing []string `json:"missing"`
}

// ScoreReport is the analyzer's output: the weighted overall score plus
// categorized textual feedback. A report is created fresh per analysis call
// and never modified after being returned.
type ScoreReport struct {
	OverallScore int          `json:"overallScore"`
	Strengths    []string     `json:"strengths"`
	Improvements []string     `json:"improvements"`
	Suggestions  []string     `json:"suggestions"`
	Keywords     KeywordStats `json:"keywords"`
}

// CategoryScores holds the per-category results feeding the aggregator and
// the feedback generator.
type CategoryScores struct {
	Keywords   int
	Structure  int
	Experience int
	Education  int
	Skills     int
}

// ByCategory returns the scores keyed by category name.
func (s CategoryScores) ByCategory() map[string]int {
	return map[string]int{
		CategoryKeywords:   s.Keywords,
		CategoryStructure:  s.Structure,
		CategoryExperience: s.Experience,
		CategoryEducation:  s.Education,
		CategorySkills:     s.Skills,
	}
}
