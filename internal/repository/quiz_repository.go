package repository

import "github.com/ilacftemp/app-libras/internal/models"

func (s *Store) CreateQuiz(title, level string, questions []models.QuizQuestion, createdBy *int64) *models.Quiz {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextQuizID++
	quiz := &models.Quiz{
		ID:        s.nextQuizID,
		Title:     title,
		Level:     level,
		Questions: questions,
		CreatedBy: createdBy,
	}
	s.quizzes = append(s.quizzes, quiz)
	return cloneQuiz(quiz)
}

func (s *Store) ListQuizzes(level string) []*models.Quiz {
	s.mu.Lock()
	defer s.mu.Unlock()

	quizzes := []*models.Quiz{}
	for _, quiz := range s.quizzes {
		if level != "" && quiz.Level != level {
			continue
		}
		quizzes = append(quizzes, cloneQuiz(quiz))
	}
	return quizzes
}

func (s *Store) GetQuiz(id int64) *models.Quiz {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, quiz := range s.quizzes {
		if quiz.ID == id {
			return cloneQuiz(quiz)
		}
	}
	return nil
}

func cloneQuiz(quiz *models.Quiz) *models.Quiz {
	clone := *quiz
	return &clone
}
