package model

import "github.com/golang-jwt/jwt/v5"

// ReviewerClaims are JWT claims for reviewer (hiring team) authentication
type ReviewerClaims struct {
	ReviewerID string `json:"reviewerId"`
	jwt.RegisteredClaims
}

// CandidateClaims are JWT claims for case-scoped candidate tokens
type CandidateClaims struct {
	CaseID        string `json:"caseId"`
	ParticipantID string `json:"participantId"`
	jwt.RegisteredClaims
}

// LoginRequest is the request body for reviewer login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is returned after successful login
type LoginResponse struct {
	Token      string `json:"token"`
	ReviewerID string `json:"reviewerId"`
}
