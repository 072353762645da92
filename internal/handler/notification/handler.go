package notification

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medsync/booking-api/internal/handler"
	"github.com/medsync/booking-api/internal/service/notification"
)

type Handler struct {
	service *notification.Service
}

func NewHandler(service *notification.Service) *Handler {
	return &Handler{service: service}
}

// ListNotifications drains the current user's pending notifications.
func (h *Handler) ListNotifications(c *gin.Context) {
	user := handler.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, handler.NewErrorResponse("authentication required"))
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(h.service.Drain(c.Request.Context(), user.ID)))
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/notifications", h.ListNotifications)
}
