package config

// AssessmentConfig holds every tunable of the scoring and selection
// engine. It is an explicit value passed into each call; the engine keeps
// no configuration state of its own.
type AssessmentConfig struct {
	// BasicSuccessThreshold is the Basic-phase percentage that unlocks the
	// Advanced phase.
	BasicSuccessThreshold int `json:"basicSuccessThreshold"`

	// MinCorrectAnswers also unlocks Advanced: a single strong answer is
	// enough even with a weak overall percentage (deliberate OR-gate).
	MinCorrectAnswers int `json:"minCorrectAnswers"`

	// BasicQuestionCount and AdvancedQuestionCount size the per-job-type
	// phase pools.
	BasicQuestionCount    int `json:"basicQuestionCount"`
	AdvancedQuestionCount int `json:"advancedQuestionCount"`

	// LeadershipQuestionCount caps the shared leadership/character pools
	// so assessment length stays bounded regardless of job-type count.
	LeadershipQuestionCount int `json:"leadershipQuestionCount"`

	// PreferencePoints is the flat score any answer to a preference
	// question accrues.
	PreferencePoints int `json:"preferencePoints"`

	// LeadershipFallbackPoints is the per-option point table used for
	// leadership-scenario questions that carry no explicit mapping.
	LeadershipFallbackPoints []int `json:"leadershipFallbackPoints"`

	// DefaultArchetype is the bucket credited by unmapped leadership
	// options.
	DefaultArchetype string `json:"defaultArchetype"`

	// TraitCategories are the built-in trait dimensions; when a
	// category-weighted question spans all of them, its overall score is
	// the average across them rather than the sum.
	TraitCategories []string `json:"traitCategories"`
}

// DefaultAssessmentConfig returns the production defaults.
func DefaultAssessmentConfig() AssessmentConfig {
	return AssessmentConfig{
		BasicSuccessThreshold:    50,
		MinCorrectAnswers:        1,
		BasicQuestionCount:       5,
		AdvancedQuestionCount:    5,
		LeadershipQuestionCount:  5,
		PreferencePoints:         5,
		LeadershipFallbackPoints: []int{18, 20, 19, 21},
		DefaultArchetype:         "balanced-leader",
		TraitCategories:          []string{"analytical", "communication", "teamwork", "initiative"},
	}
}

// HasAllTraitCategories reports whether the given per-category point map
// covers every built-in trait category.
func (c AssessmentConfig) HasAllTraitCategories(categoryPoints map[string][]int) bool {
	if len(c.TraitCategories) == 0 {
		return false
	}
	for _, trait := range c.TraitCategories {
		if _, ok := categoryPoints[trait]; !ok {
			return false
		}
	}
	return true
}
