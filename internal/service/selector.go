package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"talentgate/internal/model"
	"talentgate/internal/repository"
)

// QuestionSelector builds the personalized question sequence for one
// (jobType, category) pair. It prefers job-type-specific items, backfills
// with general ones, and synthesizes deterministic fallback questions when
// the bank is empty, so a candidate always receives a full, scoreable
// assessment.
type QuestionSelector struct {
	questionRepo repository.QuestionRepo
}

// NewQuestionSelector creates a new question selector
func NewQuestionSelector(questionRepo repository.QuestionRepo) *QuestionSelector {
	return &QuestionSelector{questionRepo: questionRepo}
}

// SelectQuestions returns exactly count questions for the job type and
// category, ordered by ascending difficulty within each pool. A failed or
// empty repository fetch is not an error; it just narrows the pool, and
// any shortfall is topped up with synthesized fallback questions so the
// result never comes back short.
func (s *QuestionSelector) SelectQuestions(ctx context.Context, jobType string, category model.Category, count int) []model.Question {
	if count <= 0 {
		return []model.Question{}
	}

	selected := s.fetch(ctx, jobType, category)

	// Backfill with general questions, specific first
	if len(selected) < count && jobType != model.JobTypeAll {
		general := s.fetch(ctx, model.JobTypeAll, category)
		seen := make(map[string]bool, len(selected))
		for _, q := range selected {
			seen[q.ID] = true
		}
		for _, q := range general {
			if !seen[q.ID] {
				seen[q.ID] = true
				selected = append(selected, q)
			}
		}
	}

	if len(selected) > count {
		selected = selected[:count]
	}

	for i := len(selected); i < count; i++ {
		selected = append(selected, FallbackQuestion(jobType, category, i))
	}
	return selected
}

// fetch pulls one pool sorted by difficulty, deduplicated by ID. Repo
// errors yield an empty pool rather than propagating.
func (s *QuestionSelector) fetch(ctx context.Context, jobType string, category model.Category) []model.Question {
	found, err := s.questionRepo.FindQuestions(ctx, jobType, category, true)
	if err != nil {
		return nil
	}

	seen := make(map[string]bool, len(found))
	questions := make([]model.Question, 0, len(found))
	for _, q := range found {
		if q == nil || seen[q.ID] {
			continue
		}
		seen[q.ID] = true
		questions = append(questions, *q)
	}

	// The repository sorts on rank already; re-sorting keeps the ordering
	// guarantee independent of the backing store.
	sort.SliceStable(questions, func(i, j int) bool {
		return model.DifficultyRank(questions[i].Difficulty) < model.DifficultyRank(questions[j].Difficulty)
	})
	return questions
}

// fallbackPoints is the fixed point value per category family
func fallbackPoints(category model.Category) int {
	switch category {
	case model.CategoryFirstStageTechnical:
		return 10
	case model.CategoryAdvancedTechnical:
		return 15
	case model.CategoryLeadershipScenario:
		return 12
	default:
		return 10
	}
}

// FallbackQuestion is the single deterministic fallback generator, keyed
// by (jobType, category, index): identical inputs always yield the same
// question, so regenerating an assessment reproduces the same fallbacks.
func FallbackQuestion(jobType string, category model.Category, index int) model.Question {
	slug := strings.ToLower(strings.ReplaceAll(jobType, " ", "-"))
	return model.Question{
		ID:       fmt.Sprintf("fallback-%s-%s-%d", slug, category, index+1),
		Type:     model.QuestionTypeSingleChoice,
		Category: category,
		JobType:  jobType,
		// Fallbacks carry no difficulty signal; Medium keeps them from
		// crowding the front of a mixed pool.
		Difficulty: model.DifficultyMedium,
		Rank:       model.DifficultyRank(model.DifficultyMedium),
		Text:       fmt.Sprintf("General competency check %d for %s (%s)", index+1, jobType, category),
		Options: []string{
			"Approach the task methodically and verify each step",
			"Delegate the task and review the outcome",
			"Defer the task until requirements are clearer",
			"Escalate the task to a supervisor",
		},
		CorrectIndices: []int{0},
		Points:         fallbackPoints(category),
		Synthesized:    true,
	}
}
