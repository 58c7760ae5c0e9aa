package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hospital-admin-backend/internal/config"
	"hospital-admin-backend/internal/database"
	"hospital-admin-backend/internal/handler"
	"hospital-admin-backend/internal/middleware"
	"hospital-admin-backend/internal/models"
	"hospital-admin-backend/internal/repository"
	"hospital-admin-backend/internal/service"
	"hospital-admin-backend/pkg/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func main() {
	// 1. Load configuration
	cfg := config.LoadConfig()

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	logger.Info().Msg("configuration loaded")

	// 2. Initialize database connection
	db := database.Connect(cfg, logger)

	// 3. Initialize repositories
	userRepo := repository.NewUserRepo(db)
	sessionRepo := repository.NewSessionRepo(db)

	// 4. Initialize services
	authService := service.NewAuthService(userRepo, sessionRepo, cfg.Session.TTL)
	cleanupService := service.NewSessionCleanupService(sessionRepo, logger)

	// 5. Start session cleanup worker
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go cleanupService.Start(ctx)

	// 6. Setup Gin
	gin.SetMode(cfg.Server.GinMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Session(handler.SessionCookie, authService))

	// The API is open to any origin; credentials ride on the cookie.
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Content-Length"},
		MaxAge:          12 * time.Hour,
	}))

	// 7. Register resource handlers, one generic instance per entity
	handler.NewResourceHandler[models.Doctor](
		repository.NewResourceRepo[models.Doctor](db, "doctor_id", "")).Register(r, "doctors")
	handler.NewResourceHandler[models.Patient](
		repository.NewResourceRepo[models.Patient](db, "patient_id", "")).Register(r, "patients")
	handler.NewResourceHandler[models.Appointment](
		repository.NewResourceRepo[models.Appointment](db, "appointment_id", "appointment_date DESC")).Register(r, "appointments")
	handler.NewResourceHandler[models.Inpatient](
		repository.NewResourceRepo[models.Inpatient](db, "inpatient_id", "admission_date DESC")).Register(r, "inpatients")
	handler.NewResourceHandler[models.Prescription](
		repository.NewResourceRepo[models.Prescription](db, "prescription_id", "prescription_date DESC")).Register(r, "prescriptions")
	handler.NewResourceHandler[models.Billing](
		repository.NewResourceRepo[models.Billing](db, "billing_id", "bill_date DESC")).Register(r, "billing")
	handler.NewResourceHandler[models.Department](
		repository.NewResourceRepo[models.Department](db, "department_id", "")).Register(r, "departments")
	handler.NewResourceHandler[models.Staff](
		repository.NewResourceRepo[models.Staff](db, "staff_id", "")).Register(r, "staff")
	handler.NewResourceHandler[models.MedicalRecord](
		repository.NewResourceRepo[models.MedicalRecord](db, "record_id", "record_date DESC")).Register(r, "medical_records")
	handler.NewResourceHandler[models.Medication](
		repository.NewResourceRepo[models.Medication](db, "medication_id", "")).Register(r, "medications")

	// 8. Auth endpoint: POST /auth?action=register|login|logout
	authHandler := handler.NewAuthHandler(authService, int(cfg.Session.TTL.Seconds()), cfg.Session.CookieSecure)
	r.Any("/auth", authHandler.Handle)

	// 9. Browser client
	r.Static("/app", "./static")

	// Unknown resource paths are the only non-200 responses.
	r.NoRoute(func(c *gin.Context) {
		utils.NotFoundResponse(c)
	})

	// 10. Serve, then wait for shutdown signal
	go func() {
		logger.Info().Str("port", cfg.Server.Port).Msg("server starting")
		if err := r.Run(":" + cfg.Server.Port); err != nil {
			logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("shutting down")

	cancel()
}
