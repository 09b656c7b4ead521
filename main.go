package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ilacftemp/app-libras/internal/config"
	"github.com/ilacftemp/app-libras/internal/event"
	"github.com/ilacftemp/app-libras/internal/handlers"
	"github.com/ilacftemp/app-libras/internal/repository"
	"github.com/ilacftemp/app-libras/internal/service"
	"github.com/ilacftemp/app-libras/pkg/discovery"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system env")
	}
	cfg := config.Load()

	// RabbitMQ event publisher
	var publisher *event.EventPublisher
	if cfg.RabbitMQ.URI != "" && cfg.RabbitMQ.Exchange != "" {
		var err error
		publisher, err = event.NewEventPublisher(cfg.RabbitMQ.URI, cfg.RabbitMQ.Exchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RabbitMQ not configured, lifecycle events will not be published")
	}

	// Consul registration
	var registry *discovery.ServiceRegistry
	if cfg.Consul.Address != "" {
		var err error
		registry, err = discovery.NewServiceRegistry(cfg)
		if err != nil {
			log.Fatalf("Service discovery init failed: %v", err)
		}
		if err := registry.Register(); err != nil {
			log.Fatalf("Service registration failed: %v", err)
		}
	} else {
		log.Println("Consul not configured, skipping service registration")
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": cfg.Server.ServiceName})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// One store for the process lifetime, handed down explicitly.
	store := repository.NewStore()

	userHandler := handlers.NewUserHandler(service.NewUserService(store))
	sessionHandler := handlers.NewSessionHandler(service.NewSessionService(store))
	quizHandler := handlers.NewQuizHandler(service.NewQuizService(store))
	submissionHandler := handlers.NewSubmissionHandler(service.NewSubmissionService(store))
	assessmentHandler := handlers.NewAssessmentHandler(service.NewAssessmentService(store))
	reviewHandler := handlers.NewReviewHandler(service.NewReviewService(store))

	var pub eventPublisher
	if publisher != nil {
		pub = publisher
	}
	setupRoutes(r, pub, userHandler, sessionHandler, quizHandler, submissionHandler, assessmentHandler, reviewHandler)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting server: %v", err)
		}
	}()

	<-shutdownChan
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Error shutting down HTTP server: %v", err)
	}

	if registry != nil {
		if err := registry.Deregister(); err != nil {
			log.Printf("Error deregistering from service discovery: %v", err)
		}
	}
	log.Println("Server shutdown complete")
}

type eventPublisher interface {
	Publish(eventType string, payload interface{}) error
}

// shouldPublish reports whether the wrapped handler accepted the request;
// lifecycle events only announce mutations that actually happened.
func shouldPublish(publisher eventPublisher, c *gin.Context) bool {
	return publisher != nil && c.Writer.Status() < http.StatusMultipleChoices
}

func setupRoutes(
	r *gin.Engine,
	publisher eventPublisher,
	userHandler *handlers.UserHandler,
	sessionHandler *handlers.SessionHandler,
	quizHandler *handlers.QuizHandler,
	submissionHandler *handlers.SubmissionHandler,
	assessmentHandler *handlers.AssessmentHandler,
	reviewHandler *handlers.ReviewHandler,
) {
	users := r.Group("/users")
	{
		users.POST("", func(c *gin.Context) {
			userHandler.CreateUser(c)
			if shouldPublish(publisher, c) {
				publisher.Publish("user.created", gin.H{"timestamp": time.Now()})
			}
		})
		users.GET("", userHandler.ListUsers)
		users.GET("/:id", userHandler.GetUser)
		users.PATCH("/:id", func(c *gin.Context) {
			userHandler.UpdateUser(c)
			if shouldPublish(publisher, c) {
				publisher.Publish("user.updated", gin.H{"user_id": c.Param("id"), "timestamp": time.Now()})
			}
		})
	}

	sessions := r.Group("/sessions")
	{
		sessions.POST("", func(c *gin.Context) {
			sessionHandler.CreateSession(c)
			if shouldPublish(publisher, c) {
				publisher.Publish("session.created", gin.H{"timestamp": time.Now()})
			}
		})
		sessions.GET("", sessionHandler.ListSessions)
		sessions.PATCH("/:id", func(c *gin.Context) {
			sessionHandler.UpdateSession(c)
			if shouldPublish(publisher, c) {
				publisher.Publish("session.status_updated", gin.H{"session_id": c.Param("id"), "timestamp": time.Now()})
			}
		})
	}

	quizzes := r.Group("/quizzes")
	{
		quizzes.POST("", func(c *gin.Context) {
			quizHandler.CreateQuiz(c)
			if shouldPublish(publisher, c) {
				publisher.Publish("quiz.created", gin.H{"timestamp": time.Now()})
			}
		})
		quizzes.GET("", quizHandler.ListQuizzes)
		quizzes.GET("/:id", quizHandler.GetQuiz)
	}

	submissions := r.Group("/quiz-submissions")
	{
		submissions.POST("", func(c *gin.Context) {
			submissionHandler.CreateSubmission(c)
			if shouldPublish(publisher, c) {
				publisher.Publish("quiz.submission.graded", gin.H{"timestamp": time.Now()})
			}
		})
		submissions.GET("", submissionHandler.ListSubmissions)
	}

	assessments := r.Group("/assessments")
	{
		assessments.POST("", func(c *gin.Context) {
			assessmentHandler.CreateAssessment(c)
			if shouldPublish(publisher, c) {
				publisher.Publish("assessment.created", gin.H{"timestamp": time.Now()})
			}
		})
		assessments.GET("", assessmentHandler.ListAssessments)
	}

	reviews := r.Group("/evaluator-reviews")
	{
		reviews.POST("", func(c *gin.Context) {
			reviewHandler.CreateReview(c)
			if shouldPublish(publisher, c) {
				publisher.Publish("evaluator.review.created", gin.H{"timestamp": time.Now()})
			}
		})
		reviews.GET("", reviewHandler.ListReviews)
	}
}
