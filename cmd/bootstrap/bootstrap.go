package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinic-pharmacy-api/config"
	deliveryHttp "clinic-pharmacy-api/internal/delivery/http"
	"clinic-pharmacy-api/internal/delivery/http/handler"
	"clinic-pharmacy-api/internal/delivery/http/middleware"
	"clinic-pharmacy-api/internal/infrastructure/cache"
	"clinic-pharmacy-api/internal/infrastructure/database"
	"clinic-pharmacy-api/internal/repository"
	"clinic-pharmacy-api/internal/service"
	"clinic-pharmacy-api/internal/usecase"
	"clinic-pharmacy-api/pkg/jwt"
	"clinic-pharmacy-api/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	Log         *logrus.Logger
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New(cfg *config.Config) (*App, error) {
	log := NewLogger(cfg.Log)
	app := &App{Config: cfg, Log: log}

	loc, err := cfg.App.Location()
	if err != nil {
		return nil, err
	}

	// Initialize database
	db, err := database.NewConnection(cfg.DB, log)
	if err != nil {
		return nil, err
	}
	app.DB = db

	// Redis is optional; without it the dashboard is computed on every
	// request and no token is treated as revoked.
	if cfg.Redis.Enabled {
		redisClient, err := cache.NewRedisClient(cfg.Redis, log)
		if err != nil {
			app.Close()
			return nil, err
		}
		app.RedisClient = redisClient
	}

	app.Server = &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.App.Port),
		Handler:           NewHandler(cfg, log, db, app.RedisClient, loc),
		ReadHeaderTimeout: 10 * time.Second,
	}

	return app, nil
}

// NewLogger configures a JSON logrus logger at the configured level.
func NewLogger(cfg config.LogConfig) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	return log
}

// NewHandler wires repositories, usecases and handlers into the API router.
func NewHandler(cfg *config.Config, log *logrus.Logger, db *gorm.DB, redisClient *redis.Client, loc *time.Location) http.Handler {
	customValidator := validator.NewValidator()
	cacheService := service.NewRedisCacheService(redisClient, log, cfg.Dashboard.CacheTTL)

	// Initialize repositories
	patientRepo := repository.NewPatientRepository()
	doctorRepo := repository.NewDoctorRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	medicineRepo := repository.NewMedicineRepository()
	movementRepo := repository.NewStockMovementRepository()
	saleRepo := repository.NewSaleRepository()
	prescriptionRepo := repository.NewPrescriptionRepository()
	dashboardRepo := repository.NewDashboardRepository()

	// Initialize usecases
	patientUsecase := usecase.NewPatientUsecase(db, log, patientRepo, cacheService)
	doctorUsecase := usecase.NewDoctorUsecase(db, log, doctorRepo, cacheService)
	appointmentUsecase := usecase.NewAppointmentUsecase(db, log, loc, appointmentRepo, cacheService)
	medicineUsecase := usecase.NewMedicineUsecase(db, log, medicineRepo, movementRepo, cacheService)
	saleUsecase := usecase.NewSaleUsecase(db, log, loc, saleRepo, medicineRepo, movementRepo, cacheService)
	prescriptionUsecase := usecase.NewPrescriptionUsecase(db, log, prescriptionRepo)
	dashboardUsecase := usecase.NewDashboardUsecase(db, log, loc, dashboardRepo, cacheService)

	// Initialize handlers
	handlers := deliveryHttp.Handlers{
		Patient:      handler.NewPatientHandler(patientUsecase, customValidator),
		Doctor:       handler.NewDoctorHandler(doctorUsecase, customValidator),
		Appointment:  handler.NewAppointmentHandler(appointmentUsecase, customValidator, loc),
		Medicine:     handler.NewMedicineHandler(medicineUsecase, customValidator),
		Sale:         handler.NewSaleHandler(saleUsecase, customValidator, loc),
		Prescription: handler.NewPrescriptionHandler(prescriptionUsecase, customValidator),
		Dashboard:    handler.NewDashboardHandler(dashboardUsecase),
	}

	// Initialize middleware
	var authMiddleware *middleware.AuthMiddleware
	if cfg.Auth.Enabled {
		authMiddleware = middleware.NewAuthMiddleware(jwt.NewJWTService(cfg.JWT), cacheService)
	} else {
		log.Warn("Authentication is disabled; every route is public")
	}

	router := deliveryHttp.NewRouter(handlers, log, authMiddleware, middleware.NewCORSMiddleware())
	return router.Setup()
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() error {
	errCh := make(chan error, 1)
	go func() {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		app.Close()
		return fmt.Errorf("failed to start server: %w", err)
	case <-quit:
	}

	app.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	app.Log.Info("Server shutdown complete")
	return nil
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	if app.DB != nil {
		if sqlDB, err := app.DB.DB(); err == nil {
			sqlDB.Close()
		}
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
