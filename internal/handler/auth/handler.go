package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/medsync/booking-api/internal/handler"
	"github.com/medsync/booking-api/internal/model"
	authService "github.com/medsync/booking-api/internal/service/auth"
)

type Handler struct {
	service *authService.Service
}

func NewHandler(service *authService.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.BindError(c, err)
		return
	}

	session, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(session))
}

func (h *Handler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.BindError(c, err)
		return
	}

	session, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(session))
}

func (h *Handler) Logout(c *gin.Context) {
	token := bearerToken(c)
	if token == "" {
		c.JSON(http.StatusUnauthorized, handler.NewErrorResponse("missing authorization header"))
		return
	}
	if err := h.service.Logout(c.Request.Context(), token); err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{"message": "logged out"}))
}

// Me restores the session carried by the token, the path a client
// takes on page reload.
func (h *Handler) Me(c *gin.Context) {
	user := handler.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, handler.NewErrorResponse("authentication required"))
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(user))
}

func bearerToken(c *gin.Context) string {
	parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	auth := r.Group("/auth")
	{
		auth.POST("/login", h.Login)
		auth.POST("/register", h.Register)
	}
}

func (h *Handler) RegisterProtectedRoutes(r *gin.RouterGroup) {
	auth := r.Group("/auth")
	{
		auth.POST("/logout", h.Logout)
		auth.GET("/me", h.Me)
	}
}
