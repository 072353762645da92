package appointment

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medsync/booking-api/internal/handler"
	"github.com/medsync/booking-api/internal/model"
	"github.com/medsync/booking-api/internal/service/appointment"
)

type Handler struct {
	service *appointment.Service
}

func NewHandler(service *appointment.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) BookAppointment(c *gin.Context) {
	var req model.BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.BindError(c, err)
		return
	}

	apt, err := h.service.Book(c.Request.Context(), handler.CurrentUser(c), &req)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(apt))
}

func (h *Handler) CancelAppointment(c *gin.Context) {
	if err := h.service.Cancel(c.Request.Context(), handler.CurrentUser(c), c.Param("id")); err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{"status": string(model.AppointmentStatusCancelled)}))
}

// ListAppointments serves the current user's role-scoped subset.
func (h *Handler) ListAppointments(c *gin.Context) {
	appointments, err := h.service.ListForUser(c.Request.Context(), handler.CurrentUser(c))
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(appointments))
}

// GetBuckets serves the today/upcoming/past partition.
func (h *Handler) GetBuckets(c *gin.Context) {
	buckets, err := h.service.Buckets(c.Request.Context(), handler.CurrentUser(c))
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(buckets))
}

func (h *Handler) GetSummary(c *gin.Context) {
	summary, err := h.service.Summary(c.Request.Context(), handler.CurrentUser(c))
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(summary))
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	appointments := r.Group("/appointments")
	{
		appointments.POST("", h.BookAppointment)
		appointments.GET("", h.ListAppointments)
		appointments.GET("/buckets", h.GetBuckets)
		appointments.GET("/summary", h.GetSummary)
		appointments.POST("/:id/cancel", h.CancelAppointment)
	}
}
