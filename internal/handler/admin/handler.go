package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medsync/booking-api/internal/handler"
	"github.com/medsync/booking-api/internal/model"
	"github.com/medsync/booking-api/internal/repository"
	"github.com/medsync/booking-api/internal/service/appointment"
)

type Handler struct {
	users        repository.UserRepository
	doctors      repository.DoctorRepository
	appointments *appointment.Service
}

func NewHandler(users repository.UserRepository, doctors repository.DoctorRepository,
	appointments *appointment.Service) *Handler {
	return &Handler{users: users, doctors: doctors, appointments: appointments}
}

// ListUsers serves every account: doctors first, then patients and
// registered users, mirroring the admin user table.
func (h *Handler) ListUsers(c *gin.Context) {
	doctors, err := h.doctors.List(c.Request.Context())
	if err != nil {
		handler.Error(c, err)
		return
	}
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		handler.Error(c, err)
		return
	}

	all := make([]*model.User, 0, len(doctors)+len(users))
	for _, d := range doctors {
		u := d.User
		all = append(all, &u)
	}
	all = append(all, users...)

	c.JSON(http.StatusOK, handler.NewSuccessResponse(all))
}

// ListActivity serves the recent booking activity feed.
func (h *Handler) ListActivity(c *gin.Context) {
	feed, err := h.appointments.Activity(c.Request.Context())
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(feed))
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	admin := r.Group("/admin")
	{
		admin.GET("/users", h.ListUsers)
		admin.GET("/activity", h.ListActivity)
	}
}
