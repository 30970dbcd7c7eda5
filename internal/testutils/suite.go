package testutils

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"lead-dashboard-backend/internal/config"
	"lead-dashboard-backend/internal/database"
	"lead-dashboard-backend/internal/logger"

	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver for readiness ping
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

const (
	pgUser     = "lead"
	pgPassword = "lead-test"
	pgDatabase = "lead_dashboard_test"
)

// postgresContainer is the one Postgres instance shared by every integration suite in a test binary
type postgresContainer struct {
	pool     *dockertest.Pool
	resource *dockertest.Resource
	db       *gorm.DB
	cfg      *config.Config
}

var (
	sharedMu      sync.Mutex
	sharedOnce    sync.Once
	sharedInitErr error
	shared        *postgresContainer
)

// BaseTestSuite hands a migrated database and a matching config to integration suites
type BaseTestSuite struct {
	suite.Suite
	DB     *gorm.DB
	Config *config.Config
}

// SetupTestSuite starts the shared Postgres container on first use and returns a per-suite wrapper
func SetupTestSuite(t *testing.T) *BaseTestSuite {
	sharedOnce.Do(func() {
		pg, err := startPostgres()
		sharedMu.Lock()
		shared, sharedInitErr = pg, err
		sharedMu.Unlock()
	})
	if sharedInitErr != nil {
		t.Fatalf("failed to start shared postgres: %v", sharedInitErr)
	}
	return &BaseTestSuite{DB: shared.db, Config: shared.cfg}
}

// CleanupSharedContainer closes the shared connection and purges the container. Called from TestMain.
func CleanupSharedContainer() {
	sharedMu.Lock()
	defer sharedMu.Unlock()
	if shared == nil {
		return
	}

	log := logger.New().WithField("container", shared.resource.Container.Name)
	if sqlDB, err := shared.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	if err := shared.pool.Purge(shared.resource); err != nil {
		log.WithError(err).Warn("could not purge postgres container")
	} else {
		log.Info("purged postgres container")
	}
	shared = nil
}

func (s *BaseTestSuite) SetupTest()    { s.CleanTestDB() }
func (s *BaseTestSuite) TearDownTest() { s.CleanTestDB() }

// TeardownTestSuite only empties the tables; the container outlives the suite.
func (s *BaseTestSuite) TeardownTestSuite() { s.CleanTestDB() }

// CleanTestDB truncates every table owned by the service
func (s *BaseTestSuite) CleanTestDB() {
	if s.DB == nil {
		return
	}
	tables := make([]string, 0, len(database.Models()))
	for _, model := range database.Models() {
		stmt := &gorm.Statement{DB: s.DB}
		if err := stmt.Parse(model); err != nil {
			continue
		}
		tables = append(tables, `"`+stmt.Schema.Table+`"`)
	}
	if len(tables) == 0 {
		return
	}
	if err := s.DB.Exec("TRUNCATE TABLE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE").Error; err != nil {
		logger.New().WithError(err).Warn("truncate failed")
	}
}

// TestConfig returns a valid configuration pointing at dsn
func TestConfig(dsn string) *config.Config {
	return &config.Config{
		DatabaseURL:              dsn,
		DatabaseName:             pgDatabase,
		Port:                     "0",
		LogLevel:                 "debug",
		Environment:              "test",
		IdentityMode:             config.IdentityModeJWT,
		JWTSecret:                "test-secret",
		JWTAudience:              "authenticated",
		DefaultTeamName:          "My Team",
		InviteCodeDigits:         5,
		InviteCodeMaxAttempts:    30,
		TeamCreateInsertAttempts: 3,
	}
}

func startPostgres() (*postgresContainer, error) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return nil, fmt.Errorf("could not connect to docker: %w", err)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15-alpine",
		Env: []string{
			"POSTGRES_USER=" + pgUser,
			"POSTGRES_PASSWORD=" + pgPassword,
			"POSTGRES_DB=" + pgDatabase,
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return nil, fmt.Errorf("could not start postgres: %w", err)
	}

	hostPort := resource.GetPort("5432/tcp")
	dsn := fmt.Sprintf("postgres://%s:%s@127.0.0.1:%s/%s?sslmode=disable", pgUser, pgPassword, hostPort, pgDatabase)

	var db *gorm.DB
	pool.MaxWait = 2 * time.Minute
	err = pool.Retry(func() error {
		if err := pingPostgres(dsn); err != nil {
			return err
		}
		gdb, err := database.Initialize(dsn, nil)
		if err != nil {
			return err
		}
		db = gdb
		return nil
	})
	if err != nil {
		_ = pool.Purge(resource)
		return nil, fmt.Errorf("postgres never became ready: %w", err)
	}

	logger.New().WithFields(map[string]interface{}{
		"port":   hostPort,
		"tables": len(database.Models()),
	}).Info("shared postgres ready")

	return &postgresContainer{
		pool:     pool,
		resource: resource,
		db:       db,
		cfg:      TestConfig(dsn),
	}, nil
}

func pingPostgres(dsn string) error {
	std, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}
	defer std.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return std.PingContext(ctx)
}
