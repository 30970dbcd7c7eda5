package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"lead-dashboard-backend/internal/api/routes"
	"lead-dashboard-backend/internal/config"
	"lead-dashboard-backend/internal/database"
	"lead-dashboard-backend/internal/logger"
	"lead-dashboard-backend/internal/metrics"
	"lead-dashboard-backend/internal/repository"
	"lead-dashboard-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	_ "lead-dashboard-backend/docs" // This is needed for swag
)

const shutdownTimeout = 15 * time.Second

//	@title			Lead Dashboard Team API
//	@version		1.0
//	@description	Team membership and access control for the lead dashboard: teams, invite codes, roles and join requests.

//	@host		localhost:7008
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Set up logging
	logger.Setup(cfg.LogLevel)

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	m := metrics.NewMetrics(prometheus.DefaultRegisterer)

	// Initialize router
	router, err := routes.SetupRoutes(db, cfg, m, prometheus.DefaultGatherer)
	if err != nil {
		logrus.Fatal("Failed to set up routes:", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	scheduler, err := startReconciler(ctx, cfg, service.NewLeadReconciler(repository.NewStore(db), m))
	if err != nil {
		logrus.Fatal("Failed to schedule lead reconciliation:", err)
	}

	// Start server
	port := cfg.Port
	if port == "" {
		port = "7008"
	}
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logrus.Infof("Starting server on port %s", port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatal("Failed to start server:", err)
		}
	}()

	<-ctx.Done()
	logrus.Info("Shutting down")

	if scheduler != nil {
		<-scheduler.Stop().Done()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logrus.Error("Graceful shutdown failed:", err)
	}
}

// startReconciler schedules lead ownership reconciliation when RECONCILE_SCHEDULE is set
func startReconciler(ctx context.Context, cfg *config.Config, reconciler *service.LeadReconciler) (*cron.Cron, error) {
	if cfg.ReconcileSchedule == "" {
		return nil, nil
	}

	scheduler := cron.New()
	_, err := scheduler.AddFunc(cfg.ReconcileSchedule, func() {
		if _, err := reconciler.Run(ctx); err != nil {
			logger.WithContext(ctx).WithError(err).Error("lead reconciliation failed")
		}
	})
	if err != nil {
		return nil, err
	}

	scheduler.Start()
	logrus.WithField("schedule", cfg.ReconcileSchedule).Info("lead reconciliation scheduled")
	return scheduler, nil
}
