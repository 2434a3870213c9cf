package handler

import (
	"encoding/json"
	"net/http"
	"talentgate/internal/model"
	"talentgate/internal/service"

	"github.com/gorilla/mux"
)

// CaseHandler handles evaluation case endpoints
type CaseHandler struct {
	caseSvc *service.CaseService
	authSvc *service.AuthService
}

// NewCaseHandler creates a new case handler
func NewCaseHandler(caseSvc *service.CaseService, authSvc *service.AuthService) *CaseHandler {
	return &CaseHandler{caseSvc: caseSvc, authSvc: authSvc}
}

// CreateCaseRequest is the request body for creating a case
type CreateCaseRequest struct {
	Title      string   `json:"title"`
	TemplateID string   `json:"templateId"`
	JobTypes   []string `json:"jobTypes"`
	Threshold  int      `json:"threshold"`
}

// Create handles POST /v1/cases
func (h *CaseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateCaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	c := &model.EvaluationCase{
		Title:      req.Title,
		TemplateID: req.TemplateID,
		JobTypes:   req.JobTypes,
		Threshold:  req.Threshold,
	}

	id, err := h.caseSvc.Create(r.Context(), c)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"caseId": id})
}

// Get handles GET /v1/cases/{caseId}
func (h *CaseHandler) Get(w http.ResponseWriter, r *http.Request) {
	caseID := mux.Vars(r)["caseId"]

	c, err := h.caseSvc.GetByID(r.Context(), caseID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if c == nil {
		writeError(w, http.StatusNotFound, "case not found")
		return
	}

	writeJSON(w, http.StatusOK, c)
}

// List handles GET /v1/cases
func (h *CaseHandler) List(w http.ResponseWriter, r *http.Request) {
	cases, err := h.caseSvc.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"cases": cases})
}

// Update handles PUT /v1/cases/{caseId}
func (h *CaseHandler) Update(w http.ResponseWriter, r *http.Request) {
	caseID := mux.Vars(r)["caseId"]

	var req CreateCaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	c := &model.EvaluationCase{
		ID:         caseID,
		Title:      req.Title,
		TemplateID: req.TemplateID,
		JobTypes:   req.JobTypes,
		Threshold:  req.Threshold,
	}

	if err := h.caseSvc.Update(r.Context(), c); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, c)
}

// Delete handles DELETE /v1/cases/{caseId}
func (h *CaseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	caseID := mux.Vars(r)["caseId"]

	if err := h.caseSvc.Delete(r.Context(), caseID); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// JoinRequest is the request body for a candidate joining a case
type JoinRequest struct {
	ParticipantID string `json:"participantId"`
}

// Join handles POST /v1/cases/{caseId}/join: issues a case-scoped
// candidate token.
func (h *CaseHandler) Join(w http.ResponseWriter, r *http.Request) {
	caseID := mux.Vars(r)["caseId"]

	var req JoinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ParticipantID == "" {
		writeError(w, http.StatusBadRequest, "participantId is required")
		return
	}

	c, err := h.caseSvc.GetByID(r.Context(), caseID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if c == nil {
		writeError(w, http.StatusNotFound, "case not found")
		return
	}

	token, err := h.authSvc.GenerateCandidateToken(caseID, req.ParticipantID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"token":         token,
		"caseId":        caseID,
		"participantId": req.ParticipantID,
	})
}
