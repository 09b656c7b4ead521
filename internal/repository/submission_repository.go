package repository

import (
	"time"

	"github.com/ilacftemp/app-libras/internal/models"
)

func (s *Store) AddQuizSubmission(quizID, studentID int64, answers []int, score float64) *models.QuizSubmission {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextSubmissionID++
	submission := &models.QuizSubmission{
		ID:          s.nextSubmissionID,
		QuizID:      quizID,
		StudentID:   studentID,
		Answers:     answers,
		Score:       score,
		SubmittedAt: time.Now().UTC(),
	}
	s.submissions = append(s.submissions, submission)
	return cloneSubmission(submission)
}

// ListQuizSubmissions applies both filters with AND semantics; 0 disables
// a filter.
func (s *Store) ListQuizSubmissions(quizID, studentID int64) []*models.QuizSubmission {
	s.mu.Lock()
	defer s.mu.Unlock()

	submissions := []*models.QuizSubmission{}
	for _, submission := range s.submissions {
		if quizID != 0 && submission.QuizID != quizID {
			continue
		}
		if studentID != 0 && submission.StudentID != studentID {
			continue
		}
		submissions = append(submissions, cloneSubmission(submission))
	}
	return submissions
}

func (s *Store) GetQuizSubmission(id int64) *models.QuizSubmission {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, submission := range s.submissions {
		if submission.ID == id {
			return cloneSubmission(submission)
		}
	}
	return nil
}

func cloneSubmission(submission *models.QuizSubmission) *models.QuizSubmission {
	clone := *submission
	return &clone
}
