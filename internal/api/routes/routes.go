package routes

import (
	"fmt"
	"net/http"
	"time"

	"lead-dashboard-backend/internal/api/handlers"
	"lead-dashboard-backend/internal/api/middleware"
	"lead-dashboard-backend/internal/auth"
	"lead-dashboard-backend/internal/config"
	"lead-dashboard-backend/internal/logger"
	"lead-dashboard-backend/internal/metrics"
	"lead-dashboard-backend/internal/profiles"
	"lead-dashboard-backend/internal/repository"
	"lead-dashboard-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

const identityClientTimeout = 10 * time.Second

// NewIdentityResolver picks the resolver for the configured IDENTITY_MODE
func NewIdentityResolver(cfg *config.Config) (auth.IdentityResolver, error) {
	switch cfg.IdentityMode {
	case config.IdentityModeRemote:
		return auth.NewRemoteResolver(cfg.IdentityURL, &http.Client{Timeout: identityClientTimeout}), nil
	case config.IdentityModeJWT:
		return auth.NewJWTResolver(cfg.JWTSecret, cfg.JWTAudience)
	default:
		return nil, fmt.Errorf("unknown identity mode %q", cfg.IdentityMode)
	}
}

// NewProfileDirectory builds the display name lookup chain: profile table,
// then LDAP when configured, behind an expiring cache
func NewProfileDirectory(store repository.StoreInterface, cfg *config.Config) profiles.Directory {
	var directory profiles.Directory = profiles.NewStoreDirectory(store.Profiles())
	if cfg.LDAPEnabled() {
		directory = profiles.NewLDAPDirectory(directory, cfg)
	}
	if cfg.ProfileCacheSize > 0 {
		directory = profiles.NewCachedDirectory(directory, cfg.ProfileCacheSize, cfg.ProfileCacheTTL())
	}
	return directory
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config, m *metrics.Metrics, gatherer prometheus.Gatherer) (*gin.Engine, error) {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))
	router.Use(m.GinMiddleware())

	// Initialize validator
	validator := validator.New()

	// Initialize store
	store := repository.NewStore(db)

	// Initialize services
	codes := service.NewInviteCodeGenerator(cfg.InviteCodeDigits, cfg.InviteCodeMaxAttempts, m)
	teamService := service.NewTeamService(store, codes, NewProfileDirectory(store, cfg), m, validator, service.TeamConfig{
		DefaultName:    cfg.DefaultTeamName,
		InsertAttempts: cfg.TeamCreateInsertAttempts,
	})
	membershipService := service.NewMembershipService(store, m)
	joinRequestService := service.NewJoinRequestService(store, m, validator)

	// Initialize auth
	resolver, err := NewIdentityResolver(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize identity resolver: %w", err)
	}
	authMiddleware := auth.NewAuthMiddleware(resolver)
	logger.New().WithField("identity_mode", cfg.IdentityMode).Info("identity resolver configured")

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	teamHandler := handlers.NewTeamHandler(teamService, membershipService, joinRequestService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Metrics
	router.GET("/metrics", metrics.Handler(gatherer))

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes - All endpoints require authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		team := v1.Group("/team")
		{
			team.GET("", teamHandler.GetOverview)
			team.POST("", teamHandler.CreateTeam)
			team.POST("/members/remove", teamHandler.RemoveMember)
			team.POST("/members/role", teamHandler.ChangeRole)
			team.POST("/requests", teamHandler.SubmitRequest)
			team.POST("/requests/approve", teamHandler.ApproveRequest)
			team.POST("/requests/reject", teamHandler.RejectRequest)
		}
	}

	return router, nil
}
