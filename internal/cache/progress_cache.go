package cache

import (
	"context"
	"encoding/json"
	"talentgate/internal/model"
	"time"

	"github.com/redis/go-redis/v9"
)

// ProgressCache stores a candidate's phase-gate progress for one case
type ProgressCache interface {
	Set(ctx context.Context, caseID, participantID string, p *model.PhaseProgress) error
	Get(ctx context.Context, caseID, participantID string) (*model.PhaseProgress, error)
	Delete(ctx context.Context, caseID, participantID string) error
}

type progressCache struct {
	client *redis.Client
}

// NewProgressCache creates a new progress cache
func NewProgressCache(client *redis.Client) ProgressCache {
	return &progressCache{
		client: client,
	}
}

func progressKey(caseID, participantID string) string {
	return "progress:" + caseID + ":" + participantID
}

func (c *progressCache) Set(ctx context.Context, caseID, participantID string, p *model.PhaseProgress) error {
	p.UpdatedAt = time.Now()
	data, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, progressKey(caseID, participantID), data, 24*time.Hour).Err()
}

func (c *progressCache) Get(ctx context.Context, caseID, participantID string) (*model.PhaseProgress, error) {
	data, err := c.client.Get(ctx, progressKey(caseID, participantID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var p model.PhaseProgress
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *progressCache) Delete(ctx context.Context, caseID, participantID string) error {
	return c.client.Del(ctx, progressKey(caseID, participantID)).Err()
}
