package cache

import (
	"context"
	"encoding/json"
	"talentgate/internal/model"
	"time"

	"github.com/redis/go-redis/v9"
)

// AssessmentCache stores generated assessments so a candidate reloading
// mid-assessment sees the same question plan instead of a fresh draw.
type AssessmentCache interface {
	Set(ctx context.Context, caseID, participantID string, a *model.GeneratedAssessment) error
	Get(ctx context.Context, caseID, participantID string) (*model.GeneratedAssessment, error)
	Delete(ctx context.Context, caseID, participantID string) error
}

type assessmentCache struct {
	client *redis.Client
}

// NewAssessmentCache creates a new assessment cache
func NewAssessmentCache(client *redis.Client) AssessmentCache {
	return &assessmentCache{
		client: client,
	}
}

func assessmentKey(caseID, participantID string) string {
	return "assessment:" + caseID + ":" + participantID
}

func (c *assessmentCache) Set(ctx context.Context, caseID, participantID string, a *model.GeneratedAssessment) error {
	data, err := json.Marshal(a)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, assessmentKey(caseID, participantID), data, 24*time.Hour).Err()
}

func (c *assessmentCache) Get(ctx context.Context, caseID, participantID string) (*model.GeneratedAssessment, error) {
	data, err := c.client.Get(ctx, assessmentKey(caseID, participantID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var a model.GeneratedAssessment
	if err := json.Unmarshal([]byte(data), &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (c *assessmentCache) Delete(ctx context.Context, caseID, participantID string) error {
	return c.client.Del(ctx, assessmentKey(caseID, participantID)).Err()
}
