package httputil

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medicore/hospital-api/pkg/errors"
)

// Response wraps all API responses
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   *Error      `json:"error,omitempty"`
}

// Error represents API error
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// RespondWithSuccess sends a success response
func RespondWithSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    data,
	})
}

// RespondWithCreated sends a 201 response carrying a confirmation message.
func RespondWithCreated(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// RespondWithError maps an error to an HTTP status and sends it.
func RespondWithError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "internal server error"

	if appErr, ok := errors.AsAppError(err); ok {
		switch appErr.Code {
		case errors.ErrNotFound:
			status = http.StatusNotFound
		case errors.ErrBadRequest:
			status = http.StatusBadRequest
		case errors.ErrUnauthorized:
			status = http.StatusUnauthorized
		case errors.ErrForbidden:
			status = http.StatusForbidden
		default:
			status = http.StatusInternalServerError
		}
		message = appErr.Message
	}

	c.JSON(status, Response{
		Success: false,
		Error: &Error{
			Code:    status,
			Message: message,
		},
	})
}
