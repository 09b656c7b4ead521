package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ilacftemp/app-libras/internal/models"
	"github.com/ilacftemp/app-libras/internal/rubric"
	"github.com/ilacftemp/app-libras/internal/service"
)

type ReviewHandler struct {
	Service *service.ReviewService
}

func NewReviewHandler(s *service.ReviewService) *ReviewHandler {
	return &ReviewHandler{Service: s}
}

type createReviewRequest struct {
	EvaluatorID int64                  `json:"evaluator_id"`
	ReviewerID  int64                  `json:"reviewer_id"`
	Scores      map[string]interface{} `json:"scores"`
	Comments    *string                `json:"comments"`
}

type reviewResponse struct {
	models.EvaluatorReview
	AverageScore float64 `json:"average_score"`
}

func (h *ReviewHandler) CreateReview(c *gin.Context) {
	var req createReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationFailures.WithLabelValues("create_review").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	review, err := h.Service.CreateReview(req.EvaluatorID, req.ReviewerID, req.Scores, req.Comments)
	if err != nil {
		validationFailures.WithLabelValues("create_review").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	entityCreations.WithLabelValues("evaluator_reviews").Inc()
	c.JSON(http.StatusCreated, reviewResponse{
		EvaluatorReview: *review,
		AverageScore:    round2(rubric.Average(review.Scores)),
	})
}

func (h *ReviewHandler) ListReviews(c *gin.Context) {
	c.JSON(http.StatusOK, h.Service.ListReviews(queryID(c, "evaluator_id")))
}
