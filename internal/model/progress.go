package model

import "time"

// PhaseProgress tracks a candidate's position in the phase state machine
// for one case: the Basic-phase score per job type, which job types have
// unlocked Advanced, and whether the shared Leadership/Character phases
// are open. It is cache state, rebuilt from scratch on resubmission.
type PhaseProgress struct {
	BasicScores      map[string]PhaseScore `json:"basicScores"`
	AdvancedUnlocked map[string]bool       `json:"advancedUnlocked"`
	SharedUnlocked   bool                  `json:"sharedUnlocked"`
	UpdatedAt        time.Time             `json:"updatedAt"`
}

// NewPhaseProgress returns empty progress
func NewPhaseProgress() *PhaseProgress {
	return &PhaseProgress{
		BasicScores:      make(map[string]PhaseScore),
		AdvancedUnlocked: make(map[string]bool),
	}
}
