package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"talentgate/internal/model"
	"talentgate/internal/service"
	"talentgate/internal/transport/rest/middleware"

	"github.com/gorilla/mux"
)

// AssessmentHandler handles assessment generation, submission scoring and
// result retrieval
type AssessmentHandler struct {
	assessmentSvc *service.AssessmentService
}

// NewAssessmentHandler creates a new assessment handler
func NewAssessmentHandler(assessmentSvc *service.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{assessmentSvc: assessmentSvc}
}

// Generate handles GET /v1/cases/{caseId}/assessment (candidate)
func (h *AssessmentHandler) Generate(w http.ResponseWriter, r *http.Request) {
	caseID := mux.Vars(r)["caseId"]
	participantID := middleware.GetParticipantID(r.Context())

	if middleware.GetCaseID(r.Context()) != caseID {
		writeError(w, http.StatusForbidden, "token not valid for this case")
		return
	}

	assessment, err := h.assessmentSvc.GenerateAssessment(r.Context(), caseID, participantID, nil)
	if err != nil {
		if errors.Is(err, service.ErrCaseNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, assessment)
}

// SubmitRequest is the request body for an assessment submission
type SubmitRequest struct {
	TemplateID string           `json:"templateId"`
	Responses  []model.Response `json:"responses"`
}

// Submit handles POST /v1/cases/{caseId}/submissions (candidate)
func (h *AssessmentHandler) Submit(w http.ResponseWriter, r *http.Request) {
	caseID := mux.Vars(r)["caseId"]
	participantID := middleware.GetParticipantID(r.Context())

	if middleware.GetCaseID(r.Context()) != caseID {
		writeError(w, http.StatusForbidden, "token not valid for this case")
		return
	}

	var req SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sub := &model.Submission{
		ParticipantID: participantID,
		CaseID:        caseID,
		TemplateID:    req.TemplateID,
		Responses:     req.Responses,
	}

	result, err := h.assessmentSvc.ScoreSubmission(r.Context(), sub)
	if err != nil {
		if errors.Is(err, service.ErrCaseNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// GetResult handles GET /v1/cases/{caseId}/results/{participantId} (reviewer)
func (h *AssessmentHandler) GetResult(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	caseID := vars["caseId"]
	participantID := vars["participantId"]
	templateID := r.URL.Query().Get("templateId")

	result, err := h.assessmentSvc.GetResult(r.Context(), participantID, caseID, templateID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if result == nil {
		writeError(w, http.StatusNotFound, "result not found")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// ListResults handles GET /v1/cases/{caseId}/results (reviewer)
func (h *AssessmentHandler) ListResults(w http.ResponseWriter, r *http.Request) {
	caseID := mux.Vars(r)["caseId"]

	results, err := h.assessmentSvc.GetCaseResults(r.Context(), caseID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"results": results})
}

// GetProgress handles GET /v1/cases/{caseId}/progress (candidate)
func (h *AssessmentHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	caseID := mux.Vars(r)["caseId"]
	participantID := middleware.GetParticipantID(r.Context())

	progress, err := h.assessmentSvc.GetProgress(r.Context(), caseID, participantID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if progress == nil {
		progress = model.NewPhaseProgress()
	}

	writeJSON(w, http.StatusOK, progress)
}
