package ws

import (
	"encoding/json"
	"log"
	"sync"
)

// MessageType defines the type of WebSocket message
type MessageType string

// Reviewer message types
const (
	MsgCandidateJoined   MessageType = "candidate_joined"
	MsgCandidateLeft     MessageType = "candidate_left"
	MsgSubmissionScored  MessageType = "submission_scored"
	MsgPhaseGateUpdate   MessageType = "phase_gate_update"
	MsgAssessmentStarted MessageType = "assessment_started"
)

// Candidate message types
const (
	MsgClassificationReady MessageType = "classification_ready"
	MsgError               MessageType = "error"
)

// Message is the WebSocket envelope format
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Hub manages WebSocket connections per evaluation case
type Hub struct {
	reviewerConns  map[string]*Connection
	candidateConns map[string]map[string]*Connection // caseID -> participantID -> conn

	mu sync.RWMutex

	register   chan *Connection
	unregister chan *Connection
	broadcast  chan *BroadcastMessage
}

// Connection represents a WebSocket connection
type Connection struct {
	CaseID        string
	ParticipantID string // Empty for reviewer connections
	IsReviewer    bool
	Send          chan []byte
	Hub           *Hub
}

// BroadcastMessage is a message to broadcast
type BroadcastMessage struct {
	CaseID        string
	ToReviewer    bool
	ToParticipant string // Empty means all candidates, specific ID means one
	Message       *Message
}

// NewHub creates a new WebSocket hub
func NewHub() *Hub {
	h := &Hub{
		reviewerConns:  make(map[string]*Connection),
		candidateConns: make(map[string]map[string]*Connection),
		register:       make(chan *Connection),
		unregister:     make(chan *Connection),
		broadcast:      make(chan *BroadcastMessage, 256),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			if conn.IsReviewer {
				h.reviewerConns[conn.CaseID] = conn
				log.Printf("Reviewer connected to case %s", conn.CaseID)
			} else {
				if h.candidateConns[conn.CaseID] == nil {
					h.candidateConns[conn.CaseID] = make(map[string]*Connection)
				}
				h.candidateConns[conn.CaseID][conn.ParticipantID] = conn
				log.Printf("Candidate %s connected to case %s", conn.ParticipantID, conn.CaseID)
				h.notifyReviewer(conn.CaseID, MsgCandidateJoined, conn.ParticipantID)
			}
			h.mu.Unlock()

		case conn := <-h.unregister:
			h.mu.Lock()
			if conn.IsReviewer {
				if existing, ok := h.reviewerConns[conn.CaseID]; ok && existing == conn {
					delete(h.reviewerConns, conn.CaseID)
					close(conn.Send)
					log.Printf("Reviewer disconnected from case %s", conn.CaseID)
				}
			} else {
				if candidates, ok := h.candidateConns[conn.CaseID]; ok {
					if existing, ok := candidates[conn.ParticipantID]; ok && existing == conn {
						delete(candidates, conn.ParticipantID)
						close(conn.Send)
						log.Printf("Candidate %s disconnected from case %s", conn.ParticipantID, conn.CaseID)
						h.notifyReviewer(conn.CaseID, MsgCandidateLeft, conn.ParticipantID)
					}
				}
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.RLock()
			data, _ := json.Marshal(msg.Message)

			if msg.ToReviewer {
				if conn, ok := h.reviewerConns[msg.CaseID]; ok {
					select {
					case conn.Send <- data:
					default:
						// Drop message if buffer full
					}
				}
			} else if msg.ToParticipant != "" {
				if candidates, ok := h.candidateConns[msg.CaseID]; ok {
					if conn, ok := candidates[msg.ToParticipant]; ok {
						select {
						case conn.Send <- data:
						default:
						}
					}
				}
			} else {
				if candidates, ok := h.candidateConns[msg.CaseID]; ok {
					for _, conn := range candidates {
						select {
						case conn.Send <- data:
						default:
						}
					}
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Register adds a connection
func (h *Hub) Register(conn *Connection) {
	h.register <- conn
}

// Unregister removes a connection
func (h *Hub) Unregister(conn *Connection) {
	h.unregister <- conn
}

// BroadcastToReviewer sends a message to the case reviewer (implements service.Broadcaster)
func (h *Hub) BroadcastToReviewer(caseID string, msgType string, payload interface{}) {
	data, _ := json.Marshal(payload)
	h.broadcast <- &BroadcastMessage{
		CaseID:     caseID,
		ToReviewer: true,
		Message: &Message{
			Type:    MessageType(msgType),
			Payload: data,
		},
	}
}

// BroadcastToCandidate sends a message to one candidate (implements service.Broadcaster)
func (h *Hub) BroadcastToCandidate(caseID, participantID string, msgType string, payload interface{}) {
	data, _ := json.Marshal(payload)
	h.broadcast <- &BroadcastMessage{
		CaseID:        caseID,
		ToParticipant: participantID,
		Message: &Message{
			Type:    MessageType(msgType),
			Payload: data,
		},
	}
}

// BroadcastToAllCandidates sends a message to every candidate in a case (implements service.Broadcaster)
func (h *Hub) BroadcastToAllCandidates(caseID string, msgType string, payload interface{}) {
	data, _ := json.Marshal(payload)
	h.broadcast <- &BroadcastMessage{
		CaseID: caseID,
		Message: &Message{
			Type:    MessageType(msgType),
			Payload: data,
		},
	}
}

func (h *Hub) notifyReviewer(caseID string, msgType MessageType, participantID string) {
	if conn, ok := h.reviewerConns[caseID]; ok {
		data, _ := json.Marshal(&Message{
			Type:    msgType,
			Payload: json.RawMessage(`{"participantId":"` + participantID + `"}`),
		})
		select {
		case conn.Send <- data:
		default:
		}
	}
}
