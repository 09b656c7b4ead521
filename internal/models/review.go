package models

import "time"

type EvaluatorReview struct {
	ID          int64          `json:"id"`
	EvaluatorID int64          `json:"evaluator_id"`
	ReviewerID  int64          `json:"reviewer_id"`
	Scores      map[string]int `json:"scores"`
	Comments    *string        `json:"comments"`
	CreatedAt   time.Time      `json:"created_at"`
}
