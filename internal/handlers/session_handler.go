package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ilacftemp/app-libras/internal/models"
	"github.com/ilacftemp/app-libras/internal/service"
)

type SessionHandler struct {
	Service *service.SessionService
}

func NewSessionHandler(s *service.SessionService) *SessionHandler {
	return &SessionHandler{Service: s}
}

type createSessionRequest struct {
	StudentID    int64   `json:"student_id"`
	InstructorID int64   `json:"instructor_id"`
	ScheduledFor string  `json:"scheduled_for"`
	Notes        *string `json:"notes"`
}

func (h *SessionHandler) CreateSession(c *gin.Context) {
	var req createSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationFailures.WithLabelValues("create_session").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.StudentID == 0 || req.InstructorID == 0 || req.ScheduledFor == "" {
		validationFailures.WithLabelValues("create_session").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": "Campos obrigatórios ausentes"})
		return
	}
	session := h.Service.CreateSession(req.StudentID, req.InstructorID, req.ScheduledFor, req.Notes)
	entityCreations.WithLabelValues("sessions").Inc()
	c.JSON(http.StatusCreated, session)
}

func (h *SessionHandler) ListSessions(c *gin.Context) {
	c.JSON(http.StatusOK, h.Service.ListSessions(queryID(c, "user_id")))
}

type updateSessionRequest struct {
	Status string `json:"status"`
}

func (h *SessionHandler) UpdateSession(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Sessão não encontrada"})
		return
	}
	var req updateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationFailures.WithLabelValues("update_session").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.ValidSessionStatus(req.Status) {
		validationFailures.WithLabelValues("update_session").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status inválido"})
		return
	}
	session := h.Service.UpdateSessionStatus(id, req.Status)
	if session == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Sessão não encontrada"})
		return
	}
	c.JSON(http.StatusOK, session)
}
