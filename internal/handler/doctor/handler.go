package doctor

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medsync/booking-api/internal/handler"
	"github.com/medsync/booking-api/internal/model"
	"github.com/medsync/booking-api/internal/service/appointment"
	"github.com/medsync/booking-api/internal/service/directory"
)

type Handler struct {
	directory    *directory.Service
	appointments *appointment.Service
}

func NewHandler(directory *directory.Service, appointments *appointment.Service) *Handler {
	return &Handler{directory: directory, appointments: appointments}
}

// ListDoctors serves the directory, filtered by the optional
// specialization, name and min_rating query parameters.
func (h *Handler) ListDoctors(c *gin.Context) {
	var filter model.DoctorFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		handler.BindError(c, err)
		return
	}

	doctors, err := h.directory.Filter(c.Request.Context(), filter)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(doctors))
}

func (h *Handler) GetDoctor(c *gin.Context) {
	doctor, err := h.directory.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(doctor))
}

// GetAvailability serves the doctor's slots for the date query
// parameter, with booked flags reflecting the ledger.
func (h *Handler) GetAvailability(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("date is required"))
		return
	}

	slots, err := h.appointments.Availability(c.Request.Context(), c.Param("id"), date)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(slots))
}

func (h *Handler) ListSpecializations(c *gin.Context) {
	specializations, err := h.directory.Specializations(c.Request.Context())
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(specializations))
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	doctors := r.Group("/doctors")
	{
		doctors.GET("", h.ListDoctors)
		doctors.GET("/:id", h.GetDoctor)
		doctors.GET("/:id/availability", h.GetAvailability)
	}
	r.GET("/specializations", h.ListSpecializations)
}
