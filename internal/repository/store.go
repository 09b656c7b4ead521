// Package repository keeps every collection in process memory for the
// lifetime of the service. It does pure bookkeeping: callers are trusted to
// have validated their input, and a miss is reported as a nil result, never
// as an error.
package repository

import (
	"sync"

	"github.com/ilacftemp/app-libras/internal/models"
)

// Store owns the six collections. Ids are assigned per collection, start at
// 1 and strictly increase; records are held in insertion order. A single
// mutex serializes every operation so concurrent requests observe the same
// sequential behavior as a single-threaded caller. Records never leave the
// store as live pointers: every method returns copies taken under the lock,
// so callers can read or marshal results while writers keep mutating the
// collections.
type Store struct {
	mu sync.Mutex

	users       []*models.User
	sessions    []*models.Session
	quizzes     []*models.Quiz
	submissions []*models.QuizSubmission
	assessments []*models.SkillAssessment
	reviews     []*models.EvaluatorReview

	nextUserID       int64
	nextSessionID    int64
	nextQuizID       int64
	nextSubmissionID int64
	nextAssessmentID int64
	nextReviewID     int64
}

func NewStore() *Store {
	return &Store{}
}
