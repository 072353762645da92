package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medsync/booking-api/internal/model"
	apperrors "github.com/medsync/booking-api/pkg/errors"
)

type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func NewSuccessResponse(data interface{}) *Response {
	return &Response{
		Status: "success",
		Data:   data,
	}
}

func NewErrorResponse(message string) *Response {
	return &Response{
		Status:  "error",
		Message: message,
	}
}

// ContextUserKey is where the auth middleware stores the session user.
const ContextUserKey = "currentUser"

// CurrentUser returns the session user set by the auth middleware, or
// nil on an unauthenticated request.
func CurrentUser(c *gin.Context) *model.User {
	v, ok := c.Get(ContextUserKey)
	if !ok {
		return nil
	}
	user, _ := v.(*model.User)
	return user
}

// Error writes err as a JSON error response with the status mapped
// from its error code. Every failure is recoverable; nothing here
// aborts the process.
func Error(c *gin.Context, err error) {
	c.JSON(statusFor(err), NewErrorResponse(userMessage(err)))
}

func statusFor(err error) int {
	switch apperrors.Code(err) {
	case apperrors.ErrNotFound:
		return http.StatusNotFound
	case apperrors.ErrBadRequest:
		return http.StatusBadRequest
	case apperrors.ErrUnauthenticated, apperrors.ErrInvalidCredentials:
		return http.StatusUnauthorized
	case apperrors.ErrForbidden:
		return http.StatusForbidden
	case apperrors.ErrEmailInUse, apperrors.ErrConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func userMessage(err error) string {
	if apperrors.Code(err) == apperrors.ErrInternal {
		return "internal server error"
	}
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}
