package service

import (
	"talentgate/internal/config"
	"talentgate/internal/model"
)

// The phase gate is a per-job-type state machine with two states,
// BasicOnly and AdvancedUnlocked. The transition is deliberately lenient:
// either a passing percentage or a minimum number of correct answers
// unlocks Advanced, so one strong answer is enough even with a weak
// overall percentage. All functions here are pure; the candidate's state
// lives in model.PhaseProgress.

// AdvancedUnlocked reports whether the Basic-phase score opens the
// Advanced phase for that job type.
func AdvancedUnlocked(basic model.PhaseScore, cfg config.AssessmentConfig) bool {
	return basic.Percentage >= cfg.BasicSuccessThreshold || basic.CorrectCount >= cfg.MinCorrectAnswers
}

// SharedPhasesUnlocked reports whether the Leadership/Character phases
// are open. They gate at the whole-assessment level: every job-type group
// must have produced a Basic-phase score, independent of whether any of
// them reached Advanced.
func SharedPhasesUnlocked(progress *model.PhaseProgress, jobTypes []string) bool {
	if progress == nil || len(jobTypes) == 0 {
		return false
	}
	for _, jt := range jobTypes {
		if _, ok := progress.BasicScores[jt]; !ok {
			return false
		}
	}
	return true
}

// RecordBasicScore folds one job type's Basic-phase score into the
// progress state and re-evaluates both gates.
func RecordBasicScore(progress *model.PhaseProgress, jobType string, basic model.PhaseScore, jobTypes []string, cfg config.AssessmentConfig) *model.PhaseProgress {
	if progress == nil {
		progress = model.NewPhaseProgress()
	}
	progress.BasicScores[jobType] = basic
	progress.AdvancedUnlocked[jobType] = AdvancedUnlocked(basic, cfg)
	progress.SharedUnlocked = SharedPhasesUnlocked(progress, jobTypes)
	return progress
}
