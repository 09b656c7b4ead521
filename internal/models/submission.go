package models

import "time"

// QuizSubmission is append-only: once graded and stored it is never mutated.
type QuizSubmission struct {
	ID          int64     `json:"id"`
	QuizID      int64     `json:"quiz_id"`
	StudentID   int64     `json:"student_id"`
	Answers     []int     `json:"answers"`
	Score       float64   `json:"score"`
	SubmittedAt time.Time `json:"submitted_at"`
}
