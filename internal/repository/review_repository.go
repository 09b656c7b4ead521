package repository

import (
	"time"

	"github.com/ilacftemp/app-libras/internal/models"
)

func (s *Store) AddEvaluatorReview(evaluatorID, reviewerID int64, scores map[string]int, comments *string) *models.EvaluatorReview {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextReviewID++
	review := &models.EvaluatorReview{
		ID:          s.nextReviewID,
		EvaluatorID: evaluatorID,
		ReviewerID:  reviewerID,
		Scores:      scores,
		Comments:    comments,
		CreatedAt:   time.Now().UTC(),
	}
	s.reviews = append(s.reviews, review)
	return cloneReview(review)
}

func (s *Store) ListEvaluatorReviews(evaluatorID int64) []*models.EvaluatorReview {
	s.mu.Lock()
	defer s.mu.Unlock()

	reviews := []*models.EvaluatorReview{}
	for _, review := range s.reviews {
		if evaluatorID != 0 && review.EvaluatorID != evaluatorID {
			continue
		}
		reviews = append(reviews, cloneReview(review))
	}
	return reviews
}

func (s *Store) GetEvaluatorReview(id int64) *models.EvaluatorReview {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, review := range s.reviews {
		if review.ID == id {
			return cloneReview(review)
		}
	}
	return nil
}

func cloneReview(review *models.EvaluatorReview) *models.EvaluatorReview {
	clone := *review
	return &clone
}
