package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/ilacftemp/app-libras/internal/handlers"
	"github.com/ilacftemp/app-libras/internal/repository"
	"github.com/ilacftemp/app-libras/internal/service"
)

type recordingPublisher struct {
	events []string
}

func (p *recordingPublisher) Publish(eventType string, payload interface{}) error {
	p.events = append(p.events, eventType)
	return nil
}

func setupEventRouter() (*gin.Engine, *recordingPublisher) {
	gin.SetMode(gin.TestMode)
	store := repository.NewStore()

	userHandler := handlers.NewUserHandler(service.NewUserService(store))
	sessionHandler := handlers.NewSessionHandler(service.NewSessionService(store))
	quizHandler := handlers.NewQuizHandler(service.NewQuizService(store))
	submissionHandler := handlers.NewSubmissionHandler(service.NewSubmissionService(store))
	assessmentHandler := handlers.NewAssessmentHandler(service.NewAssessmentService(store))
	reviewHandler := handlers.NewReviewHandler(service.NewReviewService(store))

	publisher := &recordingPublisher{}
	router := gin.New()
	setupRoutes(router, publisher, userHandler, sessionHandler, quizHandler, submissionHandler, assessmentHandler, reviewHandler)
	return router, publisher
}

func postJSON(router *gin.Engine, path string, payload interface{}) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(payload)
	req, _ := http.NewRequest("POST", path, bytes.NewBuffer(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestLifecycleEvents(t *testing.T) {
	t.Run("successful create publishes", func(t *testing.T) {
		router, publisher := setupEventRouter()
		w := postJSON(router, "/users", gin.H{"name": "Ana", "role": "student"})

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, []string{"user.created"}, publisher.events)
	})

	t.Run("rejected create publishes nothing", func(t *testing.T) {
		router, publisher := setupEventRouter()
		w := postJSON(router, "/users", gin.H{"name": "Ana", "role": "wizard"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, publisher.events)
	})

	t.Run("patch of missing session publishes nothing", func(t *testing.T) {
		router, publisher := setupEventRouter()
		raw, _ := json.Marshal(gin.H{"status": "completed"})
		req, _ := http.NewRequest("PATCH", "/sessions/9", bytes.NewBuffer(raw))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Empty(t, publisher.events)
	})

	t.Run("nil publisher is tolerated", func(t *testing.T) {
		gin.SetMode(gin.TestMode)
		store := repository.NewStore()
		router := gin.New()
		setupRoutes(router, nil,
			handlers.NewUserHandler(service.NewUserService(store)),
			handlers.NewSessionHandler(service.NewSessionService(store)),
			handlers.NewQuizHandler(service.NewQuizService(store)),
			handlers.NewSubmissionHandler(service.NewSubmissionService(store)),
			handlers.NewAssessmentHandler(service.NewAssessmentService(store)),
			handlers.NewReviewHandler(service.NewReviewService(store)))

		w := postJSON(router, "/users", gin.H{"name": "Ana", "role": "student"})
		assert.Equal(t, http.StatusCreated, w.Code)
	})
}
