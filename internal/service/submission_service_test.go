package service

import (
	"errors"
	"testing"

	"github.com/ilacftemp/app-libras/internal/models"
	"github.com/ilacftemp/app-libras/internal/repository"
)

func fourQuestionQuiz(store *repository.Store) *models.Quiz {
	questions := []models.QuizQuestion{
		{Prompt: "Como se sinaliza 'olá'?", Options: []string{"a", "b", "c"}, AnswerIndex: 0},
		{Prompt: "Qual o sinal de 'obrigado'?", Options: []string{"a", "b", "c"}, AnswerIndex: 1},
		{Prompt: "Qual o sinal de 'família'?", Options: []string{"a", "b", "c"}, AnswerIndex: 2},
		{Prompt: "Qual o sinal de 'casa'?", Options: []string{"a", "b", "c"}, AnswerIndex: 0},
	}
	return store.CreateQuiz("Sinais básicos", "iniciante", questions, nil)
}

func TestSubmitQuizScores(t *testing.T) {
	store := repository.NewStore()
	svc := NewSubmissionService(store)
	quiz := fourQuestionQuiz(store)

	// 3 of 4 correct
	submission, err := svc.SubmitQuiz(quiz.ID, 7, []int{0, 1, 2, 1})
	if err != nil {
		t.Fatalf("Expected success, got error: %v", err)
	}
	if submission.Score != 0.75 {
		t.Errorf("Expected score 0.75, got %v", submission.Score)
	}
	if submission.QuizID != quiz.ID || submission.StudentID != 7 {
		t.Error("Expected submission to carry quiz and student ids")
	}
	if submission.SubmittedAt.IsZero() {
		t.Error("Expected submitted_at to be set")
	}
}

func TestSubmitQuizUnknownQuiz(t *testing.T) {
	store := repository.NewStore()
	svc := NewSubmissionService(store)

	_, err := svc.SubmitQuiz(42, 7, []int{0})
	if !errors.Is(err, ErrQuizNotFound) {
		t.Errorf("Expected ErrQuizNotFound, got %v", err)
	}
	if len(store.ListQuizSubmissions(0, 0)) != 0 {
		t.Error("Expected no submission stored on failure")
	}
}

func TestSubmitQuizAnswerCountMismatch(t *testing.T) {
	store := repository.NewStore()
	svc := NewSubmissionService(store)
	quiz := fourQuestionQuiz(store)

	// Valid indices, wrong count.
	_, err := svc.SubmitQuiz(quiz.ID, 7, []int{0, 1, 2})
	if !errors.Is(err, ErrAnswerCount) {
		t.Errorf("Expected ErrAnswerCount, got %v", err)
	}
	if len(store.ListQuizSubmissions(0, 0)) != 0 {
		t.Error("Expected no submission stored on failure")
	}
}

func TestGradeAllAndNoneCorrect(t *testing.T) {
	store := repository.NewStore()
	quiz := fourQuestionQuiz(store)

	if got := Grade(quiz, []int{0, 1, 2, 0}); got != 1.0 {
		t.Errorf("Expected perfect score 1.0, got %v", got)
	}
	if got := Grade(quiz, []int{2, 0, 1, 2}); got != 0.0 {
		t.Errorf("Expected score 0.0, got %v", got)
	}
}
