package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ilacftemp/app-libras/internal/models"
	"github.com/ilacftemp/app-libras/internal/service"
)

type QuizHandler struct {
	Service *service.QuizService
}

func NewQuizHandler(s *service.QuizService) *QuizHandler {
	return &QuizHandler{Service: s}
}

type questionPayload struct {
	Prompt      *string   `json:"prompt"`
	Options     *[]string `json:"options"`
	AnswerIndex *int      `json:"answer_index"`
	MediaURL    *string   `json:"media_url"`
}

type createQuizRequest struct {
	Title     string            `json:"title"`
	Level     string            `json:"level"`
	Questions []questionPayload `json:"questions"`
	CreatedBy *int64            `json:"created_by"`
}

// CreateQuiz validates every question before anything is stored, so a bad
// question late in the list leaves the store untouched.
func (h *QuizHandler) CreateQuiz(c *gin.Context) {
	var req createQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationFailures.WithLabelValues("create_quiz").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Title == "" || req.Level == "" || len(req.Questions) == 0 {
		validationFailures.WithLabelValues("create_quiz").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados obrigatórios ausentes"})
		return
	}

	questions := make([]models.QuizQuestion, 0, len(req.Questions))
	for _, q := range req.Questions {
		if missing := missingQuestionField(q); missing != "" {
			validationFailures.WithLabelValues("create_quiz").Inc()
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Campo ausente em questão: '%s'", missing)})
			return
		}
		if *q.AnswerIndex < 0 || *q.AnswerIndex >= len(*q.Options) {
			validationFailures.WithLabelValues("create_quiz").Inc()
			c.JSON(http.StatusBadRequest, gin.H{"error": "answer_index inválido"})
			return
		}
		questions = append(questions, models.QuizQuestion{
			Prompt:      *q.Prompt,
			Options:     *q.Options,
			AnswerIndex: *q.AnswerIndex,
			MediaURL:    q.MediaURL,
		})
	}

	quiz := h.Service.CreateQuiz(req.Title, req.Level, questions, req.CreatedBy)
	entityCreations.WithLabelValues("quizzes").Inc()
	c.JSON(http.StatusCreated, quiz)
}

func missingQuestionField(q questionPayload) string {
	if q.Prompt == nil {
		return "prompt"
	}
	if q.Options == nil {
		return "options"
	}
	if q.AnswerIndex == nil {
		return "answer_index"
	}
	return ""
}

func (h *QuizHandler) ListQuizzes(c *gin.Context) {
	c.JSON(http.StatusOK, h.Service.ListQuizzes(c.Query("level")))
}

func (h *QuizHandler) GetQuiz(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Quiz não encontrado"})
		return
	}
	quiz := h.Service.GetQuiz(id)
	if quiz == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Quiz não encontrado"})
		return
	}
	c.JSON(http.StatusOK, quiz)
}
