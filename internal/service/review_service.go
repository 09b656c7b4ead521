package service

import (
	"github.com/ilacftemp/app-libras/internal/models"
	"github.com/ilacftemp/app-libras/internal/repository"
	"github.com/ilacftemp/app-libras/internal/rubric"
)

type ReviewService struct {
	Store *repository.Store
}

func NewReviewService(store *repository.Store) *ReviewService {
	return &ReviewService{Store: store}
}

// CreateReview validates the scores against the evaluator-review bands and
// stores the record. Reviews carry no level classification.
func (s *ReviewService) CreateReview(evaluatorID, reviewerID int64, scoresPayload map[string]interface{}, comments *string) (*models.EvaluatorReview, error) {
	scores, err := rubric.ValidateScores(scoresPayload, rubric.EvaluatorReviewRubric)
	if err != nil {
		return nil, err
	}
	return s.Store.AddEvaluatorReview(evaluatorID, reviewerID, scores, comments), nil
}

func (s *ReviewService) ListReviews(evaluatorID int64) []*models.EvaluatorReview {
	return s.Store.ListEvaluatorReviews(evaluatorID)
}
