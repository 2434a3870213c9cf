package service

import (
	"context"
	"errors"
	"talentgate/internal/model"
	"talentgate/internal/repository"
)

var errPointsShape = errors.New("question must carry either scalar points or a category points map, not both")

// QuestionService handles question bank management
type QuestionService struct {
	questionRepo repository.QuestionRepo
}

// NewQuestionService creates a new question service
func NewQuestionService(questionRepo repository.QuestionRepo) *QuestionService {
	return &QuestionService{questionRepo: questionRepo}
}

// validate enforces the points-shape invariant at ingestion time so the
// scoring pass never sees an ambiguous question.
func validate(q *model.Question) error {
	if q.Points != 0 && len(q.CategoryPoints) > 0 {
		return errPointsShape
	}
	return nil
}

// Create stores a new question
func (s *QuestionService) Create(ctx context.Context, q *model.Question) error {
	if err := validate(q); err != nil {
		return err
	}
	return s.questionRepo.Create(ctx, q)
}

// GetByID fetches one question
func (s *QuestionService) GetByID(ctx context.Context, id string) (*model.Question, error) {
	return s.questionRepo.GetByID(ctx, id)
}

// List fetches the whole bank
func (s *QuestionService) List(ctx context.Context) ([]*model.Question, error) {
	return s.questionRepo.GetAll(ctx)
}

// Update replaces a question
func (s *QuestionService) Update(ctx context.Context, q *model.Question) error {
	if err := validate(q); err != nil {
		return err
	}
	return s.questionRepo.Update(ctx, q)
}

// Delete removes a question
func (s *QuestionService) Delete(ctx context.Context, id string) error {
	return s.questionRepo.Delete(ctx, id)
}
