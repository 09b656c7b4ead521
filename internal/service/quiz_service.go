package service

import (
	"github.com/ilacftemp/app-libras/internal/models"
	"github.com/ilacftemp/app-libras/internal/repository"
)

type QuizService struct {
	Store *repository.Store
}

func NewQuizService(store *repository.Store) *QuizService {
	return &QuizService{Store: store}
}

func (s *QuizService) CreateQuiz(title, level string, questions []models.QuizQuestion, createdBy *int64) *models.Quiz {
	return s.Store.CreateQuiz(title, level, questions, createdBy)
}

func (s *QuizService) ListQuizzes(level string) []*models.Quiz {
	return s.Store.ListQuizzes(level)
}

func (s *QuizService) GetQuiz(id int64) *models.Quiz {
	return s.Store.GetQuiz(id)
}
