package service

import (
	"errors"

	"github.com/ilacftemp/app-libras/internal/models"
	"github.com/ilacftemp/app-libras/internal/repository"
)

var (
	ErrQuizNotFound = errors.New("Quiz não encontrado")
	ErrAnswerCount  = errors.New("Número de respostas inválido")
)

type SubmissionService struct {
	Store *repository.Store
}

func NewSubmissionService(store *repository.Store) *SubmissionService {
	return &SubmissionService{Store: store}
}

// SubmitQuiz grades the answers against the quiz's answer key and stores
// the submission. Nothing is stored when validation fails.
func (s *SubmissionService) SubmitQuiz(quizID, studentID int64, answers []int) (*models.QuizSubmission, error) {
	quiz := s.Store.GetQuiz(quizID)
	if quiz == nil {
		return nil, ErrQuizNotFound
	}
	if len(answers) != len(quiz.Questions) {
		return nil, ErrAnswerCount
	}
	score := Grade(quiz, answers)
	return s.Store.AddQuizSubmission(quizID, studentID, answers, score), nil
}

func (s *SubmissionService) ListSubmissions(quizID, studentID int64) []*models.QuizSubmission {
	return s.Store.ListQuizSubmissions(quizID, studentID)
}

// Grade returns the fraction of answers matching the answer key, in [0,1].
// No partial credit, no negative marking. Callers must have checked that
// answers and questions have equal length.
func Grade(quiz *models.Quiz, answers []int) float64 {
	correct := 0
	for i, question := range quiz.Questions {
		if answers[i] == question.AnswerIndex {
			correct++
		}
	}
	return float64(correct) / float64(len(quiz.Questions))
}
