package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"gdhealth/config"
	_ "gdhealth/docs"
	"gdhealth/internal/adapters/auth"
	"gdhealth/internal/adapters/email"
	delivery "gdhealth/internal/delivery/http"
	"gdhealth/internal/delivery/http/controllers"
	"gdhealth/internal/delivery/http/middleware"
	"gdhealth/internal/domain"
	"gdhealth/internal/repository/postgres"
	"gdhealth/internal/services"
)

const shutdownTimeout = 10 * time.Second

// @title       gdhealth API
// @version     1.0
// @description Gym membership, equipment, program reservation and review API.
// @BasePath    /
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		os.Exit(1)
	}

	logger, err := config.NewLogger(cfg.Environment, cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to build logger:", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	pager, err := domain.NewPager(cfg.Paging())
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := config.Connect(ctx, cfg.DBUrl)
	if err != nil {
		return err
	}
	defer db.Close()
	logger.Info("connected to postgres")

	// Adapters
	hasher := auth.NewBcryptHasher(cfg.BcryptCost)
	tokens := auth.NewJWT(cfg.JWTSecret)
	mailer, err := email.NewMailer(cfg.Email, logger)
	if err != nil {
		return err
	}
	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer(), logger)

	// Repositories
	employeeRepo := postgres.NewEmployeeRepository(db)
	customerRepo := postgres.NewCustomerRepository(db)
	equipmentRepo := postgres.NewEquipmentRepository(db)
	imageRepo := postgres.NewEmployeeImageRepository(db)
	reservationRepo := postgres.NewProgramReservationRepository(db)
	reviewRepo := postgres.NewReviewRepository(db)

	// Services
	timeout := cfg.ServiceTimeout
	authService := services.NewAuthService(employeeRepo, customerRepo, hasher, tokens, cfg.JWTExpiry, timeout)
	equipmentService := services.NewEquipmentService(equipmentRepo, pager, timeout)
	imageService := services.NewEmployeeImageService(imageRepo, timeout)
	reservationService := services.NewProgramReservationService(reservationRepo, customerRepo, emailService, logger, timeout)
	reviewService := services.NewReviewService(reviewRepo, reservationRepo, pager, timeout)

	router := delivery.NewRouter(delivery.Controllers{
		Auth:               controllers.NewAuthController(logger, authService),
		Equipment:          controllers.NewEquipmentController(logger, equipmentService),
		EmployeeImage:      controllers.NewEmployeeImageController(logger, imageService),
		ProgramReservation: controllers.NewProgramReservationController(logger, reservationService),
		Review:             controllers.NewReviewController(logger, reviewService),
		Health:             controllers.NewHealthController(logger, db),
	}, tokens, logger)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           middleware.LoggingMiddleware(logger, middleware.CORS(cfg.CORSAllowedOrigins, router)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", zap.String("addr", srv.Addr), zap.String("env", cfg.Environment))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
