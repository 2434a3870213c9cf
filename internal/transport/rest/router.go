package rest

import (
	"net/http"
	"os"
	"talentgate/internal/service"
	"talentgate/internal/transport/rest/handler"
	"talentgate/internal/transport/rest/middleware"
	"talentgate/internal/transport/ws"

	"github.com/gorilla/mux"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService       *service.AuthService
	CaseService       *service.CaseService
	QuestionService   *service.QuestionService
	AssessmentService *service.AssessmentService
	WSHub             *ws.Hub
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService)
	caseHandler := handler.NewCaseHandler(c.CaseService, c.AuthService)
	questionHandler := handler.NewQuestionHandler(c.QuestionService)
	assessmentHandler := handler.NewAssessmentHandler(c.AssessmentService)
	wsHandler := ws.NewHandler(c.WSHub, c.AuthService)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")
	v1.HandleFunc("/cases/{caseId}/join", caseHandler.Join).Methods("POST", "OPTIONS")

	// WebSocket routes (public with token in query param)
	v1.HandleFunc("/ws/cases/{caseId}/reviewer", wsHandler.ReviewerWS).Methods("GET")
	v1.HandleFunc("/ws/cases/{caseId}/candidate", wsHandler.CandidateWS).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Reviewer routes (require reviewer auth)
	reviewerRoutes := v1.NewRoute().Subrouter()
	reviewerRoutes.Use(authMW.RequireReviewer)

	reviewerRoutes.HandleFunc("/cases", caseHandler.Create).Methods("POST", "OPTIONS")
	reviewerRoutes.HandleFunc("/cases", caseHandler.List).Methods("GET", "OPTIONS")
	reviewerRoutes.HandleFunc("/cases/{caseId}", caseHandler.Get).Methods("GET", "OPTIONS")
	reviewerRoutes.HandleFunc("/cases/{caseId}", caseHandler.Update).Methods("PUT", "OPTIONS")
	reviewerRoutes.HandleFunc("/cases/{caseId}", caseHandler.Delete).Methods("DELETE", "OPTIONS")

	reviewerRoutes.HandleFunc("/questions", questionHandler.Create).Methods("POST", "OPTIONS")
	reviewerRoutes.HandleFunc("/questions", questionHandler.List).Methods("GET", "OPTIONS")
	reviewerRoutes.HandleFunc("/questions/{questionId}", questionHandler.Get).Methods("GET", "OPTIONS")
	reviewerRoutes.HandleFunc("/questions/{questionId}", questionHandler.Update).Methods("PUT", "OPTIONS")
	reviewerRoutes.HandleFunc("/questions/{questionId}", questionHandler.Delete).Methods("DELETE", "OPTIONS")

	reviewerRoutes.HandleFunc("/cases/{caseId}/results", assessmentHandler.ListResults).Methods("GET", "OPTIONS")
	reviewerRoutes.HandleFunc("/cases/{caseId}/results/{participantId}", assessmentHandler.GetResult).Methods("GET", "OPTIONS")

	// Candidate routes (require candidate auth)
	candidateRoutes := v1.NewRoute().Subrouter()
	candidateRoutes.Use(authMW.RequireCandidate)

	candidateRoutes.HandleFunc("/cases/{caseId}/assessment", assessmentHandler.Generate).Methods("GET", "OPTIONS")
	candidateRoutes.HandleFunc("/cases/{caseId}/submissions", assessmentHandler.Submit).Methods("POST", "OPTIONS")
	candidateRoutes.HandleFunc("/cases/{caseId}/progress", assessmentHandler.GetProgress).Methods("GET", "OPTIONS")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		allowedMethods := os.Getenv("CORS_ALLOWED_METHODS")
		if allowedMethods == "" {
			allowedMethods = "GET, POST, PUT, DELETE, OPTIONS"
		}

		allowedHeaders := os.Getenv("CORS_ALLOWED_HEADERS")
		if allowedHeaders == "" {
			allowedHeaders = "Content-Type, Authorization"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
