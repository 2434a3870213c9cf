package service

import (
	"context"
	"encoding/json"
	"talentgate/internal/config"
	"talentgate/internal/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCaseRepo struct {
	cases map[string]*model.EvaluationCase
}

func (f *fakeCaseRepo) Create(ctx context.Context, c *model.EvaluationCase) (string, error) {
	f.cases[c.ID] = c
	return c.ID, nil
}
func (f *fakeCaseRepo) GetByID(ctx context.Context, id string) (*model.EvaluationCase, error) {
	return f.cases[id], nil
}
func (f *fakeCaseRepo) GetAll(ctx context.Context) ([]*model.EvaluationCase, error) { return nil, nil }
func (f *fakeCaseRepo) Update(ctx context.Context, c *model.EvaluationCase) error   { return nil }
func (f *fakeCaseRepo) Delete(ctx context.Context, id string) error                 { return nil }

type fakeResultRepo struct {
	saved []*model.AssessmentResult
}

func (f *fakeResultRepo) Save(ctx context.Context, result *model.AssessmentResult) error {
	for i, r := range f.saved {
		if r.ParticipantID == result.ParticipantID && r.CaseID == result.CaseID && r.TemplateID == result.TemplateID {
			f.saved[i] = result
			return nil
		}
	}
	f.saved = append(f.saved, result)
	return nil
}
func (f *fakeResultRepo) GetByKey(ctx context.Context, participantID, caseID, templateID string) (*model.AssessmentResult, error) {
	for _, r := range f.saved {
		if r.ParticipantID == participantID && r.CaseID == caseID && r.TemplateID == templateID {
			return r, nil
		}
	}
	return nil, nil
}
func (f *fakeResultRepo) GetByCase(ctx context.Context, caseID string) ([]*model.AssessmentResult, error) {
	var out []*model.AssessmentResult
	for _, r := range f.saved {
		if r.CaseID == caseID {
			out = append(out, r)
		}
	}
	return out, nil
}
func (f *fakeResultRepo) GetByParticipant(ctx context.Context, participantID string) ([]*model.AssessmentResult, error) {
	return nil, nil
}

type fakeAssessmentCache struct {
	entries map[string]*model.GeneratedAssessment
	sets    int
}

func (f *fakeAssessmentCache) Set(ctx context.Context, caseID, participantID string, a *model.GeneratedAssessment) error {
	f.entries[caseID+":"+participantID] = a
	f.sets++
	return nil
}
func (f *fakeAssessmentCache) Get(ctx context.Context, caseID, participantID string) (*model.GeneratedAssessment, error) {
	return f.entries[caseID+":"+participantID], nil
}
func (f *fakeAssessmentCache) Delete(ctx context.Context, caseID, participantID string) error {
	delete(f.entries, caseID+":"+participantID)
	return nil
}

type broadcastEvent struct {
	caseID        string
	participantID string
	msgType       string
}

type fakeBroadcaster struct {
	events []broadcastEvent
}

func (f *fakeBroadcaster) BroadcastToReviewer(caseID string, msgType string, payload interface{}) {
	f.events = append(f.events, broadcastEvent{caseID: caseID, msgType: msgType})
}
func (f *fakeBroadcaster) BroadcastToCandidate(caseID, participantID string, msgType string, payload interface{}) {
	f.events = append(f.events, broadcastEvent{caseID: caseID, participantID: participantID, msgType: msgType})
}
func (f *fakeBroadcaster) BroadcastToAllCandidates(caseID string, msgType string, payload interface{}) {
	f.events = append(f.events, broadcastEvent{caseID: caseID, msgType: msgType})
}

func testAssessmentConfig() config.AssessmentConfig {
	cfg := config.DefaultAssessmentConfig()
	cfg.BasicQuestionCount = 2
	cfg.AdvancedQuestionCount = 1
	cfg.LeadershipQuestionCount = 1
	return cfg
}

func seededRepo() *fakeQuestionRepo {
	return &fakeQuestionRepo{pools: map[string][]*model.Question{
		poolKey("Backend Engineer", model.CategoryFirstStageTechnical): {
			bankQ("b1", "Backend Engineer", model.CategoryFirstStageTechnical, model.DifficultyEasy),
			bankQ("b2", "Backend Engineer", model.CategoryFirstStageTechnical, model.DifficultyMedium),
		},
		poolKey("Backend Engineer", model.CategoryAdvancedTechnical): {
			func() *model.Question {
				q := bankQ("a1", "Backend Engineer", model.CategoryAdvancedTechnical, model.DifficultyHard)
				q.Points = 15
				return q
			}(),
		},
		poolKey(model.JobTypeAll, model.CategoryLeadershipScenario): {{
			ID:                "l1",
			Type:              model.QuestionTypeScenario,
			Category:          model.CategoryLeadershipScenario,
			JobType:           model.JobTypeAll,
			Options:           []string{"a", "b"},
			LeadershipMapping: map[int]string{0: "teknik-leader"},
			LeadershipScoring: map[int]model.LeadershipOption{0: {Points: 20}, 1: {Points: 18}},
		}},
		poolKey(model.JobTypeAll, model.CategoryCharacterAnalysis): {{
			ID:       "c1",
			Type:     model.QuestionTypeSingleChoice,
			Category: model.CategoryCharacterAnalysis,
			JobType:  model.JobTypeAll,
			Options:  []string{"a", "b"},
			CategoryPoints: map[string][]int{
				"analytical":    {8, 2},
				"communication": {4, 2},
				"teamwork":      {6, 2},
				"initiative":    {2, 2},
			},
		}},
	}}
}

func newTestService(repo *fakeQuestionRepo) (*AssessmentService, *fakeResultRepo, *fakeAssessmentCache, *fakeBroadcaster) {
	caseRepo := &fakeCaseRepo{cases: map[string]*model.EvaluationCase{
		"case-1": {ID: "case-1", Title: "Backend Intake", TemplateID: "default", JobTypes: []string{"Backend Engineer"}, Threshold: 70},
	}}
	resultRepo := &fakeResultRepo{}
	assessmentCache := &fakeAssessmentCache{entries: map[string]*model.GeneratedAssessment{}}
	broadcaster := &fakeBroadcaster{}

	svc := NewAssessmentService(NewQuestionSelector(repo), caseRepo, resultRepo, assessmentCache, nil, testAssessmentConfig())
	svc.SetBroadcaster(broadcaster)
	return svc, resultRepo, assessmentCache, broadcaster
}

func TestGenerateAssessmentBuildsAllPools(t *testing.T) {
	svc, _, _, _ := newTestService(seededRepo())

	a, err := svc.GenerateAssessment(context.Background(), "case-1", "p1", nil)
	require.NoError(t, err)

	require.Len(t, a.JobTypeGroups, 1)
	assert.Equal(t, "Backend Engineer", a.JobTypeGroups[0].JobType)
	assert.Len(t, a.JobTypeGroups[0].BasicQuestions, 2)
	assert.Len(t, a.JobTypeGroups[0].AdvancedQuestions, 1)
	assert.Len(t, a.LeadershipQuestions, 1)
	assert.Len(t, a.CharacterQuestions, 1)
}

func TestGenerateAssessmentReturnsCachedPlan(t *testing.T) {
	repo := seededRepo()
	svc, _, cache, _ := newTestService(repo)

	first, err := svc.GenerateAssessment(context.Background(), "case-1", "p1", nil)
	require.NoError(t, err)
	assert.Equal(t, 1, cache.sets)

	callsAfterFirst := repo.calls
	second, err := svc.GenerateAssessment(context.Background(), "case-1", "p1", nil)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, callsAfterFirst, repo.calls, "cached plan must not requery the question bank")
}

func TestGenerateAssessmentUnknownCase(t *testing.T) {
	svc, _, _, _ := newTestService(seededRepo())

	_, err := svc.GenerateAssessment(context.Background(), "no-such-case", "p1", nil)
	assert.ErrorIs(t, err, ErrCaseNotFound)
}

func TestScoreSubmissionStrongCandidate(t *testing.T) {
	svc, resultRepo, _, broadcaster := newTestService(seededRepo())

	sub := &model.Submission{
		ParticipantID: "p1",
		CaseID:        "case-1",
		TemplateID:    "default",
		Responses: []model.Response{
			answer("b1", `0`),
			answer("b2", `0`),
			answer("a1", `0`),
			answer("l1", `0`),
			answer("c1", `0`),
		},
	}

	result, err := svc.ScoreSubmission(context.Background(), sub)
	require.NoError(t, err)

	require.Len(t, result.JobTypeScores, 1)
	jt := result.JobTypeScores[0]
	assert.Equal(t, 100, jt.Basic.Percentage)
	assert.True(t, jt.Advanced.HasAccess, "perfect Basic opens Advanced")
	assert.True(t, result.Leadership.HasAccess)
	assert.True(t, result.Character.HasAccess)

	// b1+b2+a1 = 35, l1 = 20, c1 averages to 5 over the trait categories
	assert.Equal(t, 60.0, result.Summary.RawScore)
	assert.Equal(t, 60.0, result.Summary.MaxScore)
	assert.Equal(t, 100, result.Summary.NormalizedScore)
	assert.Equal(t, "teknik-leader", result.Summary.DominantLeadershipType)

	assert.True(t, result.Classification.ThresholdMet)
	assert.Equal(t, model.ClassificationQualified, result.Classification.Classification)
	assert.Equal(t, model.StatusAccepted, result.Classification.RecommendedStatus)

	require.Len(t, resultRepo.saved, 1)

	require.Len(t, broadcaster.events, 2)
	assert.Equal(t, "submission_scored", broadcaster.events[0].msgType)
	assert.Equal(t, "classification_ready", broadcaster.events[1].msgType)
	assert.Equal(t, "p1", broadcaster.events[1].participantID)
}

func TestScoreSubmissionLockedAdvancedIsExcluded(t *testing.T) {
	svc, _, _, _ := newTestService(seededRepo())

	// Both Basic answers wrong: neither the percentage nor the
	// correct-count gate opens Advanced.
	sub := &model.Submission{
		ParticipantID: "p2",
		CaseID:        "case-1",
		TemplateID:    "default",
		Responses: []model.Response{
			answer("b1", `1`),
			answer("b2", `1`),
			answer("a1", `0`),
		},
	}

	result, err := svc.ScoreSubmission(context.Background(), sub)
	require.NoError(t, err)

	jt := result.JobTypeScores[0]
	assert.Equal(t, 0, jt.Basic.Percentage)
	assert.False(t, jt.Advanced.HasAccess)
	assert.Equal(t, 15.0, jt.Advanced.Score, "the locked phase is still reported")

	// Overall: b1+b2 wrong (max 20), shared leadership/character unanswered
	// (max 20 + 5); the correct Advanced answer must not leak in.
	assert.Equal(t, 0.0, result.Summary.RawScore)
	assert.Equal(t, 45.0, result.Summary.MaxScore)
	assert.Equal(t, model.ClassificationRampReady, result.Classification.Classification)
	assert.Equal(t, model.StatusPending, result.Classification.RecommendedStatus)
}

func TestScoreSubmissionUnknownCase(t *testing.T) {
	svc, _, _, _ := newTestService(seededRepo())

	_, err := svc.ScoreSubmission(context.Background(), &model.Submission{CaseID: "no-such-case"})
	assert.ErrorIs(t, err, ErrCaseNotFound)
}

func TestScoreSubmissionResubmissionReplacesResult(t *testing.T) {
	svc, resultRepo, _, _ := newTestService(seededRepo())

	sub := &model.Submission{
		ParticipantID: "p1",
		CaseID:        "case-1",
		TemplateID:    "default",
		Responses:     []model.Response{answer("b1", `1`), answer("b2", `1`)},
	}
	_, err := svc.ScoreSubmission(context.Background(), sub)
	require.NoError(t, err)

	sub.Responses = []model.Response{
		answer("b1", `0`), answer("b2", `0`),
		answer("a1", `0`), answer("l1", `0`), answer("c1", `0`),
	}
	second, err := svc.ScoreSubmission(context.Background(), sub)
	require.NoError(t, err)

	require.Len(t, resultRepo.saved, 1, "same key replaces, never duplicates")
	assert.Equal(t, second.Summary.NormalizedScore, resultRepo.saved[0].Summary.NormalizedScore)
}

func answerText(questionID, text string) model.Response {
	raw, _ := json.Marshal(text)
	return model.Response{QuestionID: questionID, Answer: raw}
}

func TestScoreSubmissionCarriesPersonalSignals(t *testing.T) {
	svc, _, _, _ := newTestService(seededRepo())

	sub := &model.Submission{
		ParticipantID: "p1",
		CaseID:        "case-1",
		TemplateID:    "default",
		Responses: []model.Response{
			answer("b1", `0`),
			answer("b2", `0`),
			answerText(PersonalExperienceID, "6 years"),
		},
	}

	result, err := svc.ScoreSubmission(context.Background(), sub)
	require.NoError(t, err)

	found := false
	for _, s := range result.Classification.StrengthAreas {
		if s == "Seasoned: 6+ years of professional experience" {
			found = true
		}
	}
	assert.True(t, found, "personal-info answers feed the narrative even though they are never scored")
}
