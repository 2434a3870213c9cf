package service

import (
	"context"
	"fmt"
	"talentgate/internal/model"
	"talentgate/internal/repository"
)

// CaseService handles evaluation case management
type CaseService struct {
	caseRepo repository.CaseRepo
}

// NewCaseService creates a new case service
func NewCaseService(caseRepo repository.CaseRepo) *CaseService {
	return &CaseService{caseRepo: caseRepo}
}

// Create stores a new evaluation case
func (s *CaseService) Create(ctx context.Context, c *model.EvaluationCase) (string, error) {
	if c.Threshold < 0 || c.Threshold > 100 {
		return "", fmt.Errorf("threshold must be within 0-100, got %d", c.Threshold)
	}
	return s.caseRepo.Create(ctx, c)
}

// GetByID fetches one case
func (s *CaseService) GetByID(ctx context.Context, id string) (*model.EvaluationCase, error) {
	return s.caseRepo.GetByID(ctx, id)
}

// List fetches all cases
func (s *CaseService) List(ctx context.Context) ([]*model.EvaluationCase, error) {
	return s.caseRepo.GetAll(ctx)
}

// Update replaces a case
func (s *CaseService) Update(ctx context.Context, c *model.EvaluationCase) error {
	if c.Threshold < 0 || c.Threshold > 100 {
		return fmt.Errorf("threshold must be within 0-100, got %d", c.Threshold)
	}
	return s.caseRepo.Update(ctx, c)
}

// Delete removes a case
func (s *CaseService) Delete(ctx context.Context, id string) error {
	return s.caseRepo.Delete(ctx, id)
}
