package homevisit

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medsync/booking-api/internal/handler"
	"github.com/medsync/booking-api/internal/model"
	"github.com/medsync/booking-api/internal/service/homevisit"
)

type Handler struct {
	service *homevisit.Service
}

func NewHandler(service *homevisit.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) CreateHomeVisit(c *gin.Context) {
	var req model.CreateHomeVisitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.BindError(c, err)
		return
	}

	hv, err := h.service.Create(c.Request.Context(), handler.CurrentUser(c), &req)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(hv))
}

func (h *Handler) ListHomeVisits(c *gin.Context) {
	visits, err := h.service.ListForUser(c.Request.Context(), handler.CurrentUser(c))
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(visits))
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	visits := r.Group("/home-visits")
	{
		visits.POST("", h.CreateHomeVisit)
		visits.GET("", h.ListHomeVisits)
	}
}
