package model

// QuestionType defines the answer format of a question
type QuestionType string

const (
	QuestionTypeSingleChoice QuestionType = "SINGLE_CHOICE" // One option index
	QuestionTypeMultiChoice  QuestionType = "MULTI_CHOICE"  // Several option indices
	QuestionTypeScenario     QuestionType = "SCENARIO"      // Situational choice, leadership-mapped
	QuestionTypeFreeText     QuestionType = "FREE_TEXT"     // Never graded correct/incorrect
)

// Category determines which scoring rule family applies to a question
type Category string

const (
	CategoryFirstStageTechnical Category = "first-stage-technical"
	CategoryAdvancedTechnical   Category = "advanced-technical"
	CategoryLeadershipScenario  Category = "leadership-scenario"
	CategoryCharacterAnalysis   Category = "character-analysis"
	CategoryInitialAssessment   Category = "initial-assessment"
)

// Difficulty is an ordinal used only for selection ordering, never scoring
type Difficulty string

const (
	DifficultyEasy   Difficulty = "EASY"
	DifficultyMedium Difficulty = "MEDIUM"
	DifficultyHard   Difficulty = "HARD"
)

// DifficultyRank maps a difficulty to its sort position. Unknown values
// sort after Hard so malformed data never jumps the queue.
func DifficultyRank(d Difficulty) int {
	switch d {
	case DifficultyEasy:
		return 0
	case DifficultyMedium:
		return 1
	case DifficultyHard:
		return 2
	}
	return 3
}

// JobTypeAll is the sentinel job type meaning "applicable to any job type"
const JobTypeAll = "All"

// LeadershipOption describes how one answer option maps onto a leadership
// archetype: which archetype it expresses and what it is worth.
type LeadershipOption struct {
	Points   int    `json:"points" bson:"points"`
	Criteria string `json:"criteria,omitempty" bson:"criteria,omitempty"`
}

// Question is one item of the assessment question bank.
//
// Exactly one of Points / CategoryPoints is populated: a scalar point value
// for plain correct/incorrect items, or a per-category map of points per
// option index for legacy multi-dimensional items where one answer feeds
// several trait categories at once.
type Question struct {
	ID         string       `json:"id" bson:"_id,omitempty"`
	Type       QuestionType `json:"type" bson:"type"`
	Category   Category     `json:"category" bson:"category"`
	JobType    string       `json:"jobType" bson:"jobType"`
	Domain     string       `json:"domain,omitempty" bson:"domain,omitempty"`
	Difficulty Difficulty   `json:"difficulty" bson:"difficulty"`
	// Rank duplicates Difficulty numerically so Mongo can sort on it.
	Rank           int      `json:"rank" bson:"rank"`
	Text           string   `json:"text" bson:"text"`
	Options        []string `json:"options,omitempty" bson:"options,omitempty"`
	CorrectIndices []int    `json:"correctIndices,omitempty" bson:"correctIndices,omitempty"`

	Points         int              `json:"points,omitempty" bson:"points,omitempty"`
	CategoryPoints map[string][]int `json:"categoryPoints,omitempty" bson:"categoryPoints,omitempty"`

	// Present only on leadership-scenario questions.
	LeadershipMapping map[int]string           `json:"leadershipMapping,omitempty" bson:"leadershipMapping,omitempty"`
	LeadershipScoring map[int]LeadershipOption `json:"leadershipScoring,omitempty" bson:"leadershipScoring,omitempty"`

	// Synthesized marks deterministic fallback questions produced when the
	// bank had nothing to offer for a (jobType, category) pair.
	Synthesized bool `json:"synthesized,omitempty" bson:"synthesized,omitempty"`
}

// RuleKind tags the scoring rule family a question resolves to
type RuleKind int

const (
	RuleSkip RuleKind = iota // Personal-info items, zero contribution
	RuleLeadership
	RulePreference
	RuleCategoryWeighted
	RuleScalar
)

// personalInfoPrefix marks free-text contact/profile fields by ID convention
const personalInfoPrefix = "personal-"

// IsPersonalInfo reports whether the question is a personal-info field,
// always excluded from scoring and from maxScore.
func (q *Question) IsPersonalInfo() bool {
	return q.Type == QuestionTypeFreeText && len(q.ID) > len(personalInfoPrefix) &&
		q.ID[:len(personalInfoPrefix)] == personalInfoPrefix
}

// IsPreference reports whether every option is marked correct, which makes
// the question a preference item: no wrong answer exists and any choice
// accrues the same small fixed score.
func (q *Question) IsPreference() bool {
	if len(q.Options) == 0 || len(q.CorrectIndices) != len(q.Options) {
		return false
	}
	seen := make(map[int]bool, len(q.CorrectIndices))
	for _, idx := range q.CorrectIndices {
		if idx < 0 || idx >= len(q.Options) {
			return false
		}
		seen[idx] = true
	}
	return len(seen) == len(q.Options)
}

// Rule resolves the scoring rule family once, in precedence order, so the
// scoring pass never branches on the raw points shape.
func (q *Question) Rule() RuleKind {
	switch {
	case q.IsPersonalInfo():
		return RuleSkip
	case q.Category == CategoryLeadershipScenario:
		return RuleLeadership
	case q.IsPreference():
		return RulePreference
	case len(q.CategoryPoints) > 0:
		return RuleCategoryWeighted
	default:
		return RuleScalar
	}
}

// IsCorrectOption reports whether the given option index is in CorrectIndices.
func (q *Question) IsCorrectOption(idx int) bool {
	for _, c := range q.CorrectIndices {
		if c == idx {
			return true
		}
	}
	return false
}
