package service

import (
	"talentgate/internal/config"
	"talentgate/internal/model"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdvancedUnlockedORSemantics(t *testing.T) {
	cfg := config.DefaultAssessmentConfig()

	tests := []struct {
		name         string
		percentage   int
		correctCount int
		want         bool
	}{
		{"both conditions met", 80, 4, true},
		{"percentage alone", 50, 0, true},
		{"one correct answer alone", 20, 1, true},
		{"exactly at threshold", 50, 0, true},
		{"neither condition", 40, 0, false},
		{"zero everything", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			basic := model.PhaseScore{Percentage: tt.percentage, CorrectCount: tt.correctCount}
			assert.Equal(t, tt.want, AdvancedUnlocked(basic, cfg))
		})
	}
}

func TestSharedPhasesUnlockRequiresEveryJobType(t *testing.T) {
	jobTypes := []string{"Backend Engineer", "Data Engineer"}

	progress := model.NewPhaseProgress()
	assert.False(t, SharedPhasesUnlocked(progress, jobTypes))

	progress.BasicScores["Backend Engineer"] = model.PhaseScore{Percentage: 10}
	assert.False(t, SharedPhasesUnlocked(progress, jobTypes), "one group still missing")

	// A weak score still counts as complete; shared phases do not require
	// Advanced access anywhere.
	progress.BasicScores["Data Engineer"] = model.PhaseScore{Percentage: 0}
	assert.True(t, SharedPhasesUnlocked(progress, jobTypes))
}

func TestSharedPhasesUnlockedEdgeCases(t *testing.T) {
	assert.False(t, SharedPhasesUnlocked(nil, []string{"x"}))
	assert.False(t, SharedPhasesUnlocked(model.NewPhaseProgress(), nil))
}

func TestRecordBasicScore(t *testing.T) {
	cfg := config.DefaultAssessmentConfig()
	jobTypes := []string{"Backend Engineer"}

	progress := RecordBasicScore(nil, "Backend Engineer", model.PhaseScore{Percentage: 60, CorrectCount: 3}, jobTypes, cfg)

	assert.True(t, progress.AdvancedUnlocked["Backend Engineer"])
	assert.True(t, progress.SharedUnlocked)

	// A later weak score downgrades the gate for that job type
	progress = RecordBasicScore(progress, "Backend Engineer", model.PhaseScore{Percentage: 10, CorrectCount: 0}, jobTypes, cfg)
	assert.False(t, progress.AdvancedUnlocked["Backend Engineer"])
	assert.True(t, progress.SharedUnlocked, "shared unlock only needs a recorded score")
}
