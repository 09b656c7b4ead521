package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ilacftemp/app-libras/internal/models"
	"github.com/ilacftemp/app-libras/internal/service"
)

type UserHandler struct {
	Service *service.UserService
}

func NewUserHandler(s *service.UserService) *UserHandler {
	return &UserHandler{Service: s}
}

type createUserRequest struct {
	Name         string   `json:"name"`
	Role         string   `json:"role"`
	Bio          *string  `json:"bio"`
	Availability []string `json:"availability"`
	Approved     bool     `json:"approved"`
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationFailures.WithLabelValues("create_user").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.ValidRole(req.Role) {
		validationFailures.WithLabelValues("create_user").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": "Role inválido"})
		return
	}
	if req.Name == "" {
		validationFailures.WithLabelValues("create_user").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nome é obrigatório"})
		return
	}
	user := h.Service.CreateUser(req.Name, req.Role, req.Bio, req.Availability, req.Approved)
	entityCreations.WithLabelValues("users").Inc()
	c.JSON(http.StatusCreated, user)
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	c.JSON(http.StatusOK, h.Service.ListUsers(c.Query("role")))
}

func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Usuário não encontrado"})
		return
	}
	user := h.Service.GetUser(id)
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Usuário não encontrado"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateUser applies a partial update. The body is decoded strictly: keys
// outside the patch contract are rejected instead of silently dropped.
// JSON nulls still mean "leave unchanged".
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Usuário não encontrado"})
		return
	}
	var patch models.UserPatch
	decoder := json.NewDecoder(c.Request.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&patch); err != nil {
		validationFailures.WithLabelValues("update_user").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user := h.Service.UpdateUser(id, patch)
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Usuário não encontrado"})
		return
	}
	c.JSON(http.StatusOK, user)
}
