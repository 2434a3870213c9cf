package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"talentgate/internal/cache"
	"talentgate/internal/config"
	"talentgate/internal/model"
	"talentgate/internal/repository"
)

var ErrCaseNotFound = errors.New("evaluation case not found")

// AssessmentService orchestrates the full assessment lifecycle: question
// plan generation, whole-batch scoring through the phase gate, threshold
// classification, and result persistence. Each submission is scored from
// a fresh, fully materialized batch; the service holds no per-candidate
// state between calls.
type AssessmentService struct {
	selector        *QuestionSelector
	caseRepo        repository.CaseRepo
	resultRepo      repository.ResultRepo
	assessmentCache cache.AssessmentCache
	progressCache   cache.ProgressCache
	cfg             config.AssessmentConfig
	broadcaster     Broadcaster
}

// NewAssessmentService creates a new assessment service
func NewAssessmentService(
	selector *QuestionSelector,
	caseRepo repository.CaseRepo,
	resultRepo repository.ResultRepo,
	assessmentCache cache.AssessmentCache,
	progressCache cache.ProgressCache,
	cfg config.AssessmentConfig,
) *AssessmentService {
	return &AssessmentService{
		selector:        selector,
		caseRepo:        caseRepo,
		resultRepo:      resultRepo,
		assessmentCache: assessmentCache,
		progressCache:   progressCache,
		cfg:             cfg,
	}
}

// SetBroadcaster sets the broadcaster for WebSocket events
func (s *AssessmentService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// GenerateAssessment builds the question plan for one candidate and case:
// a Basic and Advanced pool per job type, plus leadership and character
// pools fetched once and shared across every job-type group. The plan is
// cached so a candidate reloading mid-assessment sees the same draw.
func (s *AssessmentService) GenerateAssessment(ctx context.Context, caseID, participantID string, jobTypes []string) (*model.GeneratedAssessment, error) {
	if s.assessmentCache != nil {
		if cached, err := s.assessmentCache.Get(ctx, caseID, participantID); err == nil && cached != nil {
			return cached, nil
		}
	}

	if len(jobTypes) == 0 {
		evalCase, err := s.caseRepo.GetByID(ctx, caseID)
		if err != nil {
			return nil, fmt.Errorf("failed to load case: %w", err)
		}
		if evalCase == nil {
			return nil, ErrCaseNotFound
		}
		jobTypes = evalCase.JobTypes
	}

	assessment := &model.GeneratedAssessment{CaseID: caseID}
	for _, jt := range jobTypes {
		assessment.JobTypeGroups = append(assessment.JobTypeGroups, model.JobTypeGroup{
			JobType:           jt,
			BasicQuestions:    s.selector.SelectQuestions(ctx, jt, model.CategoryFirstStageTechnical, s.cfg.BasicQuestionCount),
			AdvancedQuestions: s.selector.SelectQuestions(ctx, jt, model.CategoryAdvancedTechnical, s.cfg.AdvancedQuestionCount),
		})
	}

	// Shared across all job-type groups, fetched once per generation.
	assessment.LeadershipQuestions = s.selector.SelectQuestions(ctx, model.JobTypeAll, model.CategoryLeadershipScenario, s.cfg.LeadershipQuestionCount)
	assessment.CharacterQuestions = s.selector.SelectQuestions(ctx, model.JobTypeAll, model.CategoryCharacterAnalysis, s.cfg.LeadershipQuestionCount)

	if s.assessmentCache != nil {
		if err := s.assessmentCache.Set(ctx, caseID, participantID, assessment); err != nil {
			log.Printf("Warning: failed to cache assessment for %s/%s: %v", caseID, participantID, err)
		}
	}
	return assessment, nil
}

// ScoreSubmission scores one whole-batch submission: per-phase scores
// drive the phase gate, gated questions feed the overall score, and the
// normalized result is classified against the case threshold. The
// produced AssessmentResult is immutable; a resubmission replaces the
// prior result for the same participant+case+template key.
func (s *AssessmentService) ScoreSubmission(ctx context.Context, sub *model.Submission) (*model.AssessmentResult, error) {
	evalCase, err := s.caseRepo.GetByID(ctx, sub.CaseID)
	if err != nil {
		return nil, fmt.Errorf("failed to load case: %w", err)
	}
	if evalCase == nil {
		return nil, ErrCaseNotFound
	}

	assessment, err := s.GenerateAssessment(ctx, sub.CaseID, sub.ParticipantID, evalCase.JobTypes)
	if err != nil {
		return nil, err
	}

	// Phase gate: Basic scores first, then Advanced access per job type.
	progress := model.NewPhaseProgress()
	jobTypes := make([]string, 0, len(assessment.JobTypeGroups))
	for _, group := range assessment.JobTypeGroups {
		jobTypes = append(jobTypes, group.JobType)
	}

	result := &model.AssessmentResult{
		ParticipantID: sub.ParticipantID,
		CaseID:        sub.CaseID,
		TemplateID:    sub.TemplateID,
	}

	// Questions that count toward the overall score: Basic always, the
	// rest only when their gate opened.
	var scored []model.Question

	for _, group := range assessment.JobTypeGroups {
		basic := PhaseScoreFor(sub.Responses, group.BasicQuestions, s.cfg)
		progress = RecordBasicScore(progress, group.JobType, basic, jobTypes, s.cfg)
		scored = append(scored, group.BasicQuestions...)

		advanced := PhaseScoreFor(sub.Responses, group.AdvancedQuestions, s.cfg)
		advanced.HasAccess = progress.AdvancedUnlocked[group.JobType]
		if advanced.HasAccess {
			scored = append(scored, group.AdvancedQuestions...)
		}

		result.JobTypeScores = append(result.JobTypeScores, model.JobTypeScores{
			JobType:  group.JobType,
			Basic:    basic,
			Advanced: advanced,
		})
	}

	result.Leadership = PhaseScoreFor(sub.Responses, assessment.LeadershipQuestions, s.cfg)
	result.Leadership.HasAccess = progress.SharedUnlocked
	result.Character = PhaseScoreFor(sub.Responses, assessment.CharacterQuestions, s.cfg)
	result.Character.HasAccess = progress.SharedUnlocked
	if progress.SharedUnlocked {
		scored = append(scored, assessment.LeadershipQuestions...)
		scored = append(scored, assessment.CharacterQuestions...)
	}

	result.Summary = Score(sub.Responses, scored, s.cfg)
	result.Classification = Classify(result.Summary.NormalizedScore, evalCase.Threshold, sub.Responses, &result.Summary)

	if err := s.resultRepo.Save(ctx, result); err != nil {
		return nil, fmt.Errorf("failed to persist result: %w", err)
	}
	if s.progressCache != nil {
		if err := s.progressCache.Set(ctx, sub.CaseID, sub.ParticipantID, progress); err != nil {
			log.Printf("Warning: failed to cache progress for %s/%s: %v", sub.CaseID, sub.ParticipantID, err)
		}
	}

	if s.broadcaster != nil {
		s.broadcaster.BroadcastToReviewer(sub.CaseID, "submission_scored", map[string]interface{}{
			"participantId":   sub.ParticipantID,
			"normalizedScore": result.Summary.NormalizedScore,
			"classification":  result.Classification.Classification,
		})
		s.broadcaster.BroadcastToCandidate(sub.CaseID, sub.ParticipantID, "classification_ready", result.Classification)
	}

	return result, nil
}

// GetResult returns the stored result for a participant+case+template key.
func (s *AssessmentService) GetResult(ctx context.Context, participantID, caseID, templateID string) (*model.AssessmentResult, error) {
	return s.resultRepo.GetByKey(ctx, participantID, caseID, templateID)
}

// GetCaseResults returns every stored result for a case.
func (s *AssessmentService) GetCaseResults(ctx context.Context, caseID string) ([]*model.AssessmentResult, error) {
	return s.resultRepo.GetByCase(ctx, caseID)
}

// GetProgress returns the cached phase-gate progress, if any.
func (s *AssessmentService) GetProgress(ctx context.Context, caseID, participantID string) (*model.PhaseProgress, error) {
	if s.progressCache == nil {
		return nil, nil
	}
	return s.progressCache.Get(ctx, caseID, participantID)
}
