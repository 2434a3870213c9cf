package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"talentgate/internal/cache"
	"talentgate/internal/config"
	"talentgate/internal/repository"
	"talentgate/internal/service"
	"talentgate/internal/transport/rest"
	"talentgate/internal/transport/ws"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	log.Println("started")
	ctx := context.Background()

	cfg := config.Load()
	assessmentCfg := config.DefaultAssessmentConfig()
	log.Printf("Assessment config:")
	log.Printf("  Basic success threshold: %d%%", assessmentCfg.BasicSuccessThreshold)
	log.Printf("  Min correct answers:     %d", assessmentCfg.MinCorrectAnswers)
	log.Printf("  Leadership pool cap:     %d", assessmentCfg.LeadershipQuestionCount)

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}
	log.Println("Connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDB)

	// Redis connection
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	defer rdb.Close()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	log.Println("Connected to Redis")

	// Initialize WebSocket hub
	wsHub := ws.NewHub()
	log.Println("WebSocket hub started")

	// Initialize repositories
	questionRepo := repository.NewQuestionRepo(db)
	caseRepo := repository.NewCaseRepo(db)
	resultRepo := repository.NewResultRepo(db)

	// Initialize caches
	assessmentCache := cache.NewAssessmentCache(rdb)
	progressCache := cache.NewProgressCache(rdb)

	// Initialize services
	authSvc := service.NewAuthService()
	caseSvc := service.NewCaseService(caseRepo)
	questionSvc := service.NewQuestionService(questionRepo)
	selector := service.NewQuestionSelector(questionRepo)
	assessmentSvc := service.NewAssessmentService(selector, caseRepo, resultRepo, assessmentCache, progressCache, assessmentCfg)

	// Inject broadcaster (wsHub implements service.Broadcaster)
	assessmentSvc.SetBroadcaster(wsHub)

	// Create router with container
	container := &rest.Container{
		AuthService:       authSvc,
		CaseService:       caseSvc,
		QuestionService:   questionSvc,
		AssessmentService: assessmentSvc,
		WSHub:             wsHub,
	}

	router := rest.NewRouter(container)

	// Start server
	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.HTTPPort)
		log.Println("Endpoints:")
		log.Println("  POST /v1/auth/login")
		log.Println("  POST/GET /v1/cases")
		log.Println("  POST /v1/cases/{caseId}/join")
		log.Println("  GET  /v1/cases/{caseId}/assessment")
		log.Println("  POST /v1/cases/{caseId}/submissions")
		log.Println("  GET  /v1/cases/{caseId}/results")
		log.Println("  WS  /v1/ws/cases/{caseId}/reviewer")
		log.Println("  WS  /v1/ws/cases/{caseId}/candidate")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
