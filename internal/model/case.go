package model

import "time"

// EvaluationCase is one hiring case under evaluation: the job types being
// assessed and the qualification threshold candidates are classified
// against.
type EvaluationCase struct {
	ID         string   `json:"id" bson:"_id,omitempty"`
	Title      string   `json:"title" bson:"title"`
	TemplateID string   `json:"templateId" bson:"templateId"`
	JobTypes   []string `json:"jobTypes" bson:"jobTypes"`

	// Threshold is the minimum normalized score (0-100) for a qualified
	// classification.
	Threshold int `json:"threshold" bson:"threshold"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}
