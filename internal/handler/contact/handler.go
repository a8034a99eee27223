package contact

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medicore/hospital-api/internal/middleware"
	"github.com/medicore/hospital-api/internal/model"
	"github.com/medicore/hospital-api/internal/service/contact"
	apperrors "github.com/medicore/hospital-api/pkg/errors"
)

type Handler struct {
	service *contact.Service
}

func NewHandler(service *contact.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) CreateMessage(c *gin.Context) {
	var req model.CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if _, err := h.service.CreateMessage(c.Request.Context(), &req); err != nil {
		if appErr, ok := apperrors.AsAppError(err); ok && appErr.Code == apperrors.ErrBadRequest {
			c.JSON(http.StatusBadRequest, gin.H{"error": appErr.Message})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong, please try again"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "message received, we will get back to you shortly",
	})
}

func (h *Handler) ListMessages(c *gin.Context) {
	messages, err := h.service.ListMessages(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list messages"})
		return
	}
	c.JSON(http.StatusOK, messages)
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, auth *middleware.AuthMiddleware) {
	r.POST("/contacts", h.CreateMessage)
	r.GET("/contact/messages", auth.Authenticate(), auth.RequireRole(model.RoleAdmin), h.ListMessages)
}
