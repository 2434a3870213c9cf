package model

// JobTypeGroup is the question set generated for one job type: the Basic
// pool shown immediately and the Advanced pool gated behind Basic
// performance.
type JobTypeGroup struct {
	JobType           string     `json:"jobType"`
	BasicQuestions    []Question `json:"basicQuestions"`
	AdvancedQuestions []Question `json:"advancedQuestions"`
}

// GeneratedAssessment is the full question plan for one candidate and
// case. Leadership and character questions are shared across all job-type
// groups and fetched once per generation.
type GeneratedAssessment struct {
	CaseID              string         `json:"caseId"`
	JobTypeGroups       []JobTypeGroup `json:"jobTypeGroups"`
	LeadershipQuestions []Question     `json:"leadershipQuestions"`
	CharacterQuestions  []Question     `json:"characterQuestions"`
}

// Submission is one whole-batch assessment submission. Responses arrive
// together; there is no per-question transactional state.
type Submission struct {
	ParticipantID string     `json:"participantId"`
	CaseID        string     `json:"caseId"`
	TemplateID    string     `json:"templateId"`
	Responses     []Response `json:"responses"`
}
