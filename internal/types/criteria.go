package types

import "fmt"

// Score category names used by AnalysisCriteria.ScoringWeights. The five
// categories together drive the weighted overall score.
const (
	CategoryKeywords   = "keywords"
	CategoryStructure  = "structure"
	CategoryExperience = "experience"
	CategoryEducation  = "education"
	CategorySkills     = "skills"
)

// ScoreCategories lists the weight categories in aggregation order.
var ScoreCategories = []string{
	CategoryKeywords,
	CategoryStructure,
	CategoryExperience,
	CategoryEducation,
	CategorySkills,
}

// AnalysisCriteria is the per-role configuration driving the resume analyzer:
// three keyword lists matched against the resume text, and the per-category
// weights used to combine the category scores.
type AnalysisCriteria struct {
	RequiredKeywords  []string       `json:"requiredKeywords"`
	PreferredKeywords []string       `json:"preferredKeywords"`
	TechnicalKeywords []string       `json:"technicalKeywords"`
	ScoringWeights    map[string]int `json:"scoringWeights"`
}

// AllKeywords returns the union of required, preferred, and technical keyword
// lists in that order. Duplicates across lists are kept, matching how the
// legacy analyzer counted them.
func (c *AnalysisCriteria) AllKeywords() []string {
	all := make([]string, 0, len(c.RequiredKeywords)+len(c.PreferredKeywords)+len(c.TechnicalKeywords))
	all = append(all, c.RequiredKeywords...)
	all = append(all, c.PreferredKeywords...)
	all = append(all, c.TechnicalKeywords...)
	return all
}

// Weight returns the configured weight for a category, or 0 when absent.
func (c *AnalysisCriteria) Weight(category string) int {
	return c.ScoringWeights[category]
}

// Validate checks that the criteria are usable: every known category must have
// a weight entry and the weights must sum to 100. The aggregator itself stays
// permissive about weight sums; this check runs where criteria files are
// loaded so misconfigured roles are caught early.
func (c *AnalysisCriteria) Validate() error {
	sum := 0
	for _, category := range ScoreCategories {
		w, ok := c.ScoringWeights[category]
		if !ok {
			return fmt.Errorf("scoring weight missing for category %q", category)
		}
		if w < 0 {
			return fmt.Errorf("scoring weight for category %q is negative: %d", category, w)
		}
		sum += w
	}
	if sum != 100 {
		return fmt.Errorf("scoring weights sum to %d, expected 100", sum)
	}
	return nil
}

// DefaultAnalysisCriteria returns the built-in criteria applied when no
// role-specific configuration exists.
func DefaultAnalysisCriteria() *AnalysisCriteria {
	return &AnalysisCriteria{
		RequiredKeywords:  []string{"experience", "skills", "education", "project", "responsibility"},
		PreferredKeywords: []string{"achievement", "leadership", "team", "development", "management"},
		TechnicalKeywords: []string{"software", "technology", "programming", "system", "database"},
		ScoringWeights: map[string]int{
			CategoryKeywords:   30,
			CategoryStructure:  25,
			CategoryExperience: 20,
			CategoryEducation:  15,
			CategorySkills:     10,
		},
	}
}
