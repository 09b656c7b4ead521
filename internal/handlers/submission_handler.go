package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ilacftemp/app-libras/internal/models"
	"github.com/ilacftemp/app-libras/internal/service"
)

type SubmissionHandler struct {
	Service *service.SubmissionService
}

func NewSubmissionHandler(s *service.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{Service: s}
}

type createSubmissionRequest struct {
	QuizID    int64 `json:"quiz_id"`
	StudentID int64 `json:"student_id"`
	Answers   []int `json:"answers"`
}

type submissionResponse struct {
	models.QuizSubmission
	ScorePercent float64 `json:"score_percent"`
}

func (h *SubmissionHandler) CreateSubmission(c *gin.Context) {
	var req createSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationFailures.WithLabelValues("submit_quiz").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	submission, err := h.Service.SubmitQuiz(req.QuizID, req.StudentID, req.Answers)
	if err != nil {
		validationFailures.WithLabelValues("submit_quiz").Inc()
		if errors.Is(err, service.ErrQuizNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	entityCreations.WithLabelValues("quiz_submissions").Inc()
	submissionsGraded.Inc()
	c.JSON(http.StatusCreated, submissionResponse{
		QuizSubmission: *submission,
		ScorePercent:   round2(submission.Score * 100),
	})
}

func (h *SubmissionHandler) ListSubmissions(c *gin.Context) {
	c.JSON(http.StatusOK, h.Service.ListSubmissions(queryID(c, "quiz_id"), queryID(c, "student_id")))
}
