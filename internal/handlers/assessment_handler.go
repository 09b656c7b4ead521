package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ilacftemp/app-libras/internal/models"
	"github.com/ilacftemp/app-libras/internal/rubric"
	"github.com/ilacftemp/app-libras/internal/service"
)

type AssessmentHandler struct {
	Service *service.AssessmentService
}

func NewAssessmentHandler(s *service.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{Service: s}
}

type createAssessmentRequest struct {
	StudentID   int64                  `json:"student_id"`
	EvaluatorID int64                  `json:"evaluator_id"`
	SessionID   *int64                 `json:"session_id"`
	Rubric      map[string]interface{} `json:"rubric"`
	Comments    *string                `json:"comments"`
}

type assessmentResponse struct {
	models.SkillAssessment
	AverageScore float64 `json:"average_score"`
}

func (h *AssessmentHandler) CreateAssessment(c *gin.Context) {
	var req createAssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationFailures.WithLabelValues("create_assessment").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	assessment, err := h.Service.CreateAssessment(req.StudentID, req.EvaluatorID, req.SessionID, req.Rubric, req.Comments)
	if err != nil {
		validationFailures.WithLabelValues("create_assessment").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	entityCreations.WithLabelValues("assessments").Inc()
	assessmentLevels.WithLabelValues(assessment.OverallLevel).Inc()
	c.JSON(http.StatusCreated, assessmentResponse{
		SkillAssessment: *assessment,
		AverageScore:    round2(rubric.Average(assessment.RubricScores)),
	})
}

func (h *AssessmentHandler) ListAssessments(c *gin.Context) {
	c.JSON(http.StatusOK, h.Service.ListAssessments(queryID(c, "student_id"), queryID(c, "evaluator_id")))
}
