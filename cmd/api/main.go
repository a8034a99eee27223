package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/medicore/hospital-api/internal/config"
	"github.com/medicore/hospital-api/internal/email"
	"github.com/medicore/hospital-api/internal/handler"
	appointmentHandler "github.com/medicore/hospital-api/internal/handler/appointment"
	authHandler "github.com/medicore/hospital-api/internal/handler/auth"
	contactHandler "github.com/medicore/hospital-api/internal/handler/contact"
	directoryHandler "github.com/medicore/hospital-api/internal/handler/directory"
	"github.com/medicore/hospital-api/internal/middleware"
	"github.com/medicore/hospital-api/internal/repository/postgres"
	"github.com/medicore/hospital-api/internal/router"
	appointmentService "github.com/medicore/hospital-api/internal/service/appointment"
	authService "github.com/medicore/hospital-api/internal/service/auth"
	contactService "github.com/medicore/hospital-api/internal/service/contact"
	directoryService "github.com/medicore/hospital-api/internal/service/directory"
	eventService "github.com/medicore/hospital-api/internal/service/event"
	"github.com/medicore/hospital-api/pkg/auth"
	"github.com/medicore/hospital-api/pkg/logger"
	"github.com/medicore/hospital-api/pkg/metrics"
	"github.com/medicore/hospital-api/pkg/security"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log := logger.NewLogger(&logger.Config{
		Level:      level,
		TimeFormat: time.RFC3339,
		Output:     os.Stdout,
	})

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal(err, "failed to connect to database")
	}
	defer db.Close()

	departmentRepo := postgres.NewDepartmentRepository(db)
	doctorRepo := postgres.NewDoctorRepository(db)
	appointmentRepo := postgres.NewAppointmentRepository(db)
	contactRepo := postgres.NewContactRepository(db)
	serviceRepo := postgres.NewServiceRepository(db)
	ambulanceRepo := postgres.NewAmbulanceRepository(db)
	bloodBankRepo := postgres.NewBloodBankRepository(db)
	userRepo := postgres.NewUserRepository(db)
	outboxRepo := postgres.NewOutboxRepository(db)

	events := eventService.NewService(outboxRepo)
	mailer := email.NewSender(cfg.SMTP)

	jwtSvc := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.Expiry())
	hasher := security.NewBcryptHasher(0)

	appointmentSvc := appointmentService.NewService(appointmentRepo, doctorRepo, events, mailer)
	directorySvc := directoryService.NewService(departmentRepo, doctorRepo, serviceRepo, ambulanceRepo, bloodBankRepo)
	contactSvc := contactService.NewService(contactRepo, events)
	authSvc := authService.NewService(userRepo, jwtSvc, hasher)

	m := metrics.NewMetrics("hospital_api", "api")

	authMW := middleware.NewAuthMiddleware(authSvc)

	r := router.NewRouter(
		authMW,
		appointmentHandler.NewHandler(appointmentSvc, m),
		directoryHandler.NewHandler(directorySvc),
		contactHandler.NewHandler(contactSvc),
		authHandler.NewHandler(authSvc),
		handler.NewHandler(db),
		router.DefaultConfig(),
	)
	r.Setup()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  time.Duration(cfg.Server.TimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.TimeoutSeconds) * time.Second,
	}

	go func() {
		log.Info("starting server", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err, "server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error(err, "forced shutdown")
	}
	log.Info("server stopped")
}
