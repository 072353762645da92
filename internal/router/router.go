package router

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/medsync/booking-api/internal/handler"
	adminHandler "github.com/medsync/booking-api/internal/handler/admin"
	appointmentHandler "github.com/medsync/booking-api/internal/handler/appointment"
	authHandler "github.com/medsync/booking-api/internal/handler/auth"
	doctorHandler "github.com/medsync/booking-api/internal/handler/doctor"
	homevisitHandler "github.com/medsync/booking-api/internal/handler/homevisit"
	"github.com/medsync/booking-api/internal/handler/metrics"
	notificationHandler "github.com/medsync/booking-api/internal/handler/notification"
	"github.com/medsync/booking-api/internal/middleware"
	"github.com/medsync/booking-api/internal/model"
)

type Config struct {
	RateLimit  rate.Limit
	RateBurst  int
	CORSConfig middleware.CORSConfig
}

type Router struct {
	engine        *gin.Engine
	auth          *middleware.AuthMiddleware
	authH         *authHandler.Handler
	doctorH       *doctorHandler.Handler
	appointmentH  *appointmentHandler.Handler
	homevisitH    *homevisitHandler.Handler
	notificationH *notificationHandler.Handler
	adminH        *adminHandler.Handler
	metricsH      *metrics.Handler
	h             *handler.Handler
}

func NewRouter(
	auth *middleware.AuthMiddleware,
	authH *authHandler.Handler,
	doctorH *doctorHandler.Handler,
	appointmentH *appointmentHandler.Handler,
	homevisitH *homevisitHandler.Handler,
	notificationH *notificationHandler.Handler,
	adminH *adminHandler.Handler,
	metricsH *metrics.Handler,
	h *handler.Handler,
	config Config,
) *Router {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	r := &Router{
		engine:        engine,
		auth:          auth,
		authH:         authH,
		doctorH:       doctorH,
		appointmentH:  appointmentH,
		homevisitH:    homevisitH,
		notificationH: notificationH,
		adminH:        adminH,
		metricsH:      metricsH,
		h:             h,
	}

	engine.Use(
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Recovery(),
		metricsH.Middleware(),
	)
	engine.Use(middleware.CORS(config.CORSConfig))

	rateLimiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
		Rate:  config.RateLimit,
		Burst: config.RateBurst,
	})
	engine.Use(rateLimiter.RateLimit())

	return r
}

func (r *Router) Setup() {
	api := r.engine.Group("/api/v1")

	api.Use(func(c *gin.Context) {
		c.Header("X-API-Version", "1.0")
		c.Next()
	})

	api.GET("/health", r.h.HealthCheck)
	api.GET("/metrics", r.metricsH.Handler())

	// Public surface: session creation and the browsable directory.
	r.authH.RegisterRoutes(api)
	r.doctorH.RegisterRoutes(api)

	// Everything else requires a session.
	protected := api.Group("")
	protected.Use(r.auth.Authenticate())
	r.authH.RegisterProtectedRoutes(protected)
	r.appointmentH.RegisterRoutes(protected)
	r.homevisitH.RegisterRoutes(protected)
	r.notificationH.RegisterRoutes(protected)

	admin := protected.Group("")
	admin.Use(r.auth.RequireRole(model.RoleAdmin))
	r.adminH.RegisterRoutes(admin)
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
