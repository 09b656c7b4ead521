package models

import "time"

type SkillAssessment struct {
	ID           int64          `json:"id"`
	StudentID    int64          `json:"student_id"`
	EvaluatorID  int64          `json:"evaluator_id"`
	SessionID    *int64         `json:"session_id"`
	RubricScores map[string]int `json:"rubric_scores"`
	Comments     *string        `json:"comments"`
	OverallLevel string         `json:"overall_level"`
	AssessedAt   time.Time      `json:"assessed_at"`
}
