package service

// Broadcaster interface for WebSocket broadcasting (avoids import cycle)
type Broadcaster interface {
	BroadcastToReviewer(caseID string, msgType string, payload interface{})
	BroadcastToCandidate(caseID, participantID string, msgType string, payload interface{})
	BroadcastToAllCandidates(caseID string, msgType string, payload interface{})
}
