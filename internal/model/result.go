package model

import "time"

// Phase is one stage of the adaptive assessment
type Phase string

const (
	PhaseBasic      Phase = "BASIC"
	PhaseAdvanced   Phase = "ADVANCED"
	PhaseLeadership Phase = "LEADERSHIP"
	PhaseCharacter  Phase = "CHARACTER"
)

// PhaseForCategory maps a question category to the assessment phase it
// belongs to. Initial-assessment items count toward the Basic phase.
func PhaseForCategory(c Category) Phase {
	switch c {
	case CategoryAdvancedTechnical:
		return PhaseAdvanced
	case CategoryLeadershipScenario:
		return PhaseLeadership
	case CategoryCharacterAnalysis:
		return PhaseCharacter
	default:
		return PhaseBasic
	}
}

// PhaseScore is the per-phase aggregate. Advanced-phase scores carry
// HasAccess=false when the gate never unlocked; such scores are reported
// but excluded from overall averages.
type PhaseScore struct {
	Score        float64 `json:"score" bson:"score"`
	MaxScore     float64 `json:"maxScore" bson:"maxScore"`
	Percentage   int     `json:"percentage" bson:"percentage"`
	CorrectCount int     `json:"correctCount" bson:"correctCount"`
	TotalCount   int     `json:"totalCount" bson:"totalCount"`
	HasAccess    bool    `json:"hasAccess" bson:"hasAccess"`
}

// QuestionScore is the per-question entry of the scoring breakdown
type QuestionScore struct {
	QuestionID string  `json:"questionId" bson:"questionId"`
	Points     float64 `json:"points" bson:"points"`
	MaxPoints  float64 `json:"maxPoints" bson:"maxPoints"`
	IsCorrect  bool    `json:"isCorrect" bson:"isCorrect"`
	Skipped    bool    `json:"skipped" bson:"skipped"`
	Archetype  string  `json:"archetype,omitempty" bson:"archetype,omitempty"`
}

// ScoreSummary is the output of one scoring pass over a response batch
type ScoreSummary struct {
	RawScore        float64            `json:"rawScore" bson:"rawScore"`
	MaxScore        float64            `json:"maxScore" bson:"maxScore"`
	NormalizedScore int                `json:"normalizedScore" bson:"normalizedScore"`
	CategoryScores  map[string]float64 `json:"categoryScores" bson:"categoryScores"`

	LeadershipTypeScores   map[string]int `json:"leadershipTypeScores" bson:"leadershipTypeScores"`
	DominantLeadershipType string         `json:"dominantLeadershipType,omitempty" bson:"dominantLeadershipType,omitempty"`

	// Completeness is answered-scoreable over total-scoreable questions.
	// Unanswered leadership items contribute zero to every archetype
	// instead of being filled in with fabricated answers; this ratio lets
	// callers judge how much profile data the archetype totals rest on.
	Completeness float64 `json:"completeness" bson:"completeness"`

	Breakdown []QuestionScore `json:"breakdown" bson:"breakdown"`
}

// JobTypeScores groups the gated phase scores for one job type
type JobTypeScores struct {
	JobType  string     `json:"jobType" bson:"jobType"`
	Basic    PhaseScore `json:"basic" bson:"basic"`
	Advanced PhaseScore `json:"advanced" bson:"advanced"`
}

// Classification is the qualification outcome for one scored submission
type Classification struct {
	ThresholdMet      bool     `json:"thresholdMet" bson:"thresholdMet"`
	Classification    string   `json:"classification" bson:"classification"`
	RecommendedStatus string   `json:"recommendedStatus" bson:"recommendedStatus"`
	EvaluationNotes   string   `json:"evaluationNotes" bson:"evaluationNotes"`
	StrengthAreas     []string `json:"strengthAreas" bson:"strengthAreas"`
	DevelopmentAreas  []string `json:"developmentAreas" bson:"developmentAreas"`
}

// Classification outcomes. Candidates below threshold are not rejected;
// they are routed to an onboarding/training track.
const (
	ClassificationQualified = "qualified"
	ClassificationRampReady = "ramp-ready"

	StatusAccepted = "accepted"
	StatusPending  = "pending"
)

// AssessmentResult is the immutable aggregate persisted once per
// submission. A resubmission produces a new result replacing a prior one
// keyed by participant+case+template.
type AssessmentResult struct {
	ID            string `json:"id" bson:"_id,omitempty"`
	ParticipantID string `json:"participantId" bson:"participantId"`
	CaseID        string `json:"caseId" bson:"caseId"`
	TemplateID    string `json:"templateId" bson:"templateId"`

	Summary        ScoreSummary    `json:"summary" bson:"summary"`
	JobTypeScores  []JobTypeScores `json:"jobTypeScores" bson:"jobTypeScores"`
	Leadership     PhaseScore      `json:"leadership" bson:"leadership"`
	Character      PhaseScore      `json:"character" bson:"character"`
	Classification Classification  `json:"classification" bson:"classification"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}
