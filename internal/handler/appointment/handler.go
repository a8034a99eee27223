package appointment

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/medicore/hospital-api/internal/middleware"
	"github.com/medicore/hospital-api/internal/model"
	"github.com/medicore/hospital-api/internal/service/appointment"
	apperrors "github.com/medicore/hospital-api/pkg/errors"
	"github.com/medicore/hospital-api/pkg/metrics"
)

type Handler struct {
	service *appointment.Service
	metrics *metrics.Metrics
}

func NewHandler(service *appointment.Service, metrics *metrics.Metrics) *Handler {
	return &Handler{service: service, metrics: metrics}
}

// respondError keeps the booking endpoints on the wire shape the clients
// already parse: a bare {"error": "..."} object.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "something went wrong, please try again"

	if appErr, ok := apperrors.AsAppError(err); ok {
		switch appErr.Code {
		case apperrors.ErrBadRequest:
			status = http.StatusBadRequest
			message = appErr.Message
		case apperrors.ErrNotFound:
			status = http.StatusNotFound
			message = appErr.Message
		}
	}

	c.JSON(status, gin.H{"error": message})
}

// CreateAppointment accepts a booking request from either the full-page
// form or the modal; both payload shapes bind to the same normalized
// request type.
func (h *Handler) CreateAppointment(c *gin.Context) {
	var req model.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	apt, err := h.service.CreateAppointment(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	if h.metrics != nil {
		h.metrics.BookingsCreated.Inc()
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "appointment booked successfully",
		"id":      apt.ID,
	})
}

func (h *Handler) ListAppointments(c *gin.Context) {
	appointments, err := h.service.ListAppointments(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, appointments)
}

func (h *Handler) GetAppointment(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid appointment ID"})
		return
	}

	apt, err := h.service.GetAppointment(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, apt)
}

// UpdateStatus moves an appointment between statuses from the admin list or
// detail view.
func (h *Handler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid appointment ID"})
		return
	}

	var req model.UpdateAppointmentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.service.UpdateStatus(c.Request.Context(), id, req.Status); err != nil {
		respondError(c, err)
		return
	}

	if h.metrics != nil {
		h.metrics.StatusChanges.WithLabelValues(string(req.Status)).Inc()
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "appointment status updated",
	})
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, auth *middleware.AuthMiddleware) {
	appointments := r.Group("/appointments")
	{
		appointments.POST("", h.CreateAppointment)
		appointments.GET("", h.ListAppointments)
		appointments.GET("/:id", h.GetAppointment)
		appointments.PUT("/:id", auth.Authenticate(), auth.RequireRole(model.RoleAdmin), h.UpdateStatus)
	}
}
