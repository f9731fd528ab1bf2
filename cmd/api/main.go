package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/clinicdesk/clinic-api/internal/config"
	"github.com/clinicdesk/clinic-api/internal/handler"
	authHandler "github.com/clinicdesk/clinic-api/internal/handler/auth"
	doctorHandler "github.com/clinicdesk/clinic-api/internal/handler/doctor"
	patientHandler "github.com/clinicdesk/clinic-api/internal/handler/patient"
	treatmentHandler "github.com/clinicdesk/clinic-api/internal/handler/treatment"
	"github.com/clinicdesk/clinic-api/internal/middleware"
	"github.com/clinicdesk/clinic-api/internal/repository/mongodb"
	"github.com/clinicdesk/clinic-api/internal/router"
	authService "github.com/clinicdesk/clinic-api/internal/service/auth"
	doctorService "github.com/clinicdesk/clinic-api/internal/service/doctor"
	patientService "github.com/clinicdesk/clinic-api/internal/service/patient"
	treatmentService "github.com/clinicdesk/clinic-api/internal/service/treatment"
	"github.com/clinicdesk/clinic-api/pkg/logger"
	"github.com/clinicdesk/clinic-api/pkg/metrics"
	"github.com/clinicdesk/clinic-api/pkg/security"
	"github.com/clinicdesk/clinic-api/pkg/token"
)

func main() {
	// .env is optional; environment variables win either way.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger.Setup(logger.Config{
		Level:   cfg.Log.Level,
		Pretty:  cfg.Log.Pretty,
		Service: "clinic-api",
	})

	if err := os.MkdirAll(cfg.Upload.Dir, 0o755); err != nil {
		log.Fatal().Err(err).Str("dir", cfg.Upload.Dir).Msg("failed to create uploads directory")
	}

	db, err := mongodb.NewDB(cfg.Mongo)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := db.Client().Disconnect(ctx); err != nil {
			log.Error().Err(err).Msg("failed to disconnect from database")
		}
	}()

	m := metrics.New("clinic_api")

	doctorRepo := mongodb.NewDoctorRepository(db, m)
	patientRepo := mongodb.NewPatientRepository(db, m)
	treatmentRepo := mongodb.NewTreatmentRepository(db, m)

	hasher := security.NewBcryptHasher(cfg.Auth.BcryptCost)
	tokenSvc := token.NewService(cfg.JWT.Secret)

	authSvc := authService.NewService(doctorRepo, hasher, tokenSvc)
	doctorSvc := doctorService.NewService(doctorRepo)
	patientSvc := patientService.NewService(patientRepo)
	treatmentSvc := treatmentService.NewService(treatmentRepo)

	authMiddleware := middleware.NewAuthMiddleware(authSvc)

	r := router.NewRouter(
		authMiddleware,
		authHandler.NewHandler(authSvc),
		doctorHandler.NewHandler(doctorSvc, cfg.Upload.Dir, m),
		patientHandler.NewHandler(patientSvc),
		treatmentHandler.NewHandler(treatmentSvc),
		handler.NewHealthHandler(db),
		m,
		router.Config{
			Mode:         cfg.Server.Mode,
			UploadDir:    cfg.Upload.Dir,
			StaticDir:    "public",
			FrontendDist: "web/dist",
		},
	)
	r.Setup()

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r.Engine(),
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}
