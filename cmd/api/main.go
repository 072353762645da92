package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/medsync/booking-api/internal/config"
	"github.com/medsync/booking-api/internal/fixture"
	"github.com/medsync/booking-api/internal/handler"
	adminHandler "github.com/medsync/booking-api/internal/handler/admin"
	appointmentHandler "github.com/medsync/booking-api/internal/handler/appointment"
	authHandler "github.com/medsync/booking-api/internal/handler/auth"
	doctorHandler "github.com/medsync/booking-api/internal/handler/doctor"
	homevisitHandler "github.com/medsync/booking-api/internal/handler/homevisit"
	"github.com/medsync/booking-api/internal/handler/metrics"
	notificationHandler "github.com/medsync/booking-api/internal/handler/notification"
	"github.com/medsync/booking-api/internal/middleware"
	"github.com/medsync/booking-api/internal/repository/memory"
	"github.com/medsync/booking-api/internal/router"
	appointmentService "github.com/medsync/booking-api/internal/service/appointment"
	authService "github.com/medsync/booking-api/internal/service/auth"
	directoryService "github.com/medsync/booking-api/internal/service/directory"
	homevisitService "github.com/medsync/booking-api/internal/service/homevisit"
	notificationService "github.com/medsync/booking-api/internal/service/notification"
	"github.com/medsync/booking-api/pkg/auth"
	"github.com/medsync/booking-api/pkg/logger"
	"golang.org/x/time/rate"
)

func main() {
	log := logger.NewLogger(nil)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err, "failed to load configuration")
	}

	// Seed the fixture-backed repositories. All state is recreated on
	// every start; only the session token survives a restart.
	doctorRepo := memory.NewDoctorRepository(fixture.Doctors(), fixture.Specializations())
	userRepo := memory.NewUserRepository(fixture.Patients(), fixture.Admin())
	appointmentRepo := memory.NewAppointmentRepository(fixture.Appointments(time.Now()))
	homeVisitRepo := memory.NewHomeVisitRepository()

	jwtSvc := auth.NewJWTService(cfg.JWT.Secret, cfg.TokenExpiry())

	notifierSvc := notificationService.NewService(cfg.Notifications.TTL)
	authSvc := authService.NewService(userRepo, doctorRepo, jwtSvc, cfg.TokenExpiry(), cfg.Auth.SimulatedLatency)
	directorySvc := directoryService.NewService(doctorRepo)
	appointmentSvc := appointmentService.NewService(appointmentRepo, doctorRepo, notifierSvc)
	homeVisitSvc := homevisitService.NewService(homeVisitRepo, doctorRepo, notifierSvc)

	authMiddleware := middleware.NewAuthMiddleware(authSvc)

	h := handler.NewHandler()
	metricsH := metrics.New()

	r := router.NewRouter(
		authMiddleware,
		authHandler.NewHandler(authSvc),
		doctorHandler.NewHandler(directorySvc, appointmentSvc),
		appointmentHandler.NewHandler(appointmentSvc),
		homevisitHandler.NewHandler(homeVisitSvc),
		notificationHandler.NewHandler(notifierSvc),
		adminHandler.NewHandler(userRepo, doctorRepo, appointmentSvc),
		metricsH,
		h,
		router.Config{
			RateLimit:  rate.Limit(cfg.RateLimit.RPS),
			RateBurst:  cfg.RateLimit.Burst,
			CORSConfig: middleware.DefaultCORSConfig(),
		},
	)
	r.Setup()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info("starting server", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err, "failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal(err, "server forced to shutdown")
	}

	log.Info("server exited properly")
}
