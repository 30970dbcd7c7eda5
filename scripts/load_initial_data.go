package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"lead-dashboard-backend/internal/config"
	"lead-dashboard-backend/internal/database"
	"lead-dashboard-backend/internal/database/models"
	apperrors "lead-dashboard-backend/internal/errors"
	"lead-dashboard-backend/internal/repository"
	"lead-dashboard-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type ProfileData struct {
	UserID   string `yaml:"user_id"`
	FullName string `yaml:"full_name"`
	Email    string `yaml:"email"`
}

type LeadData struct {
	UserID       string `yaml:"user_id"`
	BusinessName string `yaml:"business_name"`
	ContactName  string `yaml:"contact_name"`
	Email        string `yaml:"email"`
	Phone        string `yaml:"phone"`
	Category     string `yaml:"category"`
}

type TeamMemberData struct {
	UserID string `yaml:"user_id"`
	Role   string `yaml:"role"`
}

// TeamData is created through the team workflow: the owner creates the team
// and every member joins through an approved request
type TeamData struct {
	Name    string           `yaml:"name"`
	OwnerID string           `yaml:"owner_id"`
	Members []TeamMemberData `yaml:"members,omitempty"`
}

// File structures
type ProfilesFile struct {
	Profiles []ProfileData `yaml:"profiles"`
}

type LeadsFile struct {
	Leads []LeadData `yaml:"leads"`
}

type TeamsFile struct {
	Teams []TeamData `yaml:"teams"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Load data from YAML files
	if err := loadDataFromYAMLFiles(context.Background(), db, cfg, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(ctx context.Context, db *gorm.DB, cfg *config.Config, dataDir string) error {
	profiles, err := loadFiles(dataDir, "profiles", func(f *ProfilesFile) []ProfileData { return f.Profiles })
	if err != nil {
		return fmt.Errorf("failed to load profiles: %w", err)
	}

	leads, err := loadFiles(dataDir, "leads", func(f *LeadsFile) []LeadData { return f.Leads })
	if err != nil {
		return fmt.Errorf("failed to load leads: %w", err)
	}

	teams, err := loadFiles(dataDir, "teams", func(f *TeamsFile) []TeamData { return f.Teams })
	if err != nil {
		return fmt.Errorf("failed to load teams: %w", err)
	}

	// Profiles first so the overview has display names
	profileCreated := 0
	for _, profileData := range profiles {
		created, err := createProfile(db, profileData)
		if err != nil {
			return fmt.Errorf("failed to create profile %s: %w", profileData.Email, err)
		}
		if created {
			profileCreated++
		}
	}
	log.Printf("📋 Profiles: %d created, %d total", profileCreated, len(profiles))

	// Leads are created unassigned; team creation and approvals tag them
	leadCreated := 0
	for _, leadData := range leads {
		created, err := createLead(db, leadData)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create lead %s: %v", leadData.BusinessName, err)
			continue
		}
		if created {
			leadCreated++
		}
	}
	log.Printf("📋 Leads: %d created, %d total", leadCreated, len(leads))

	store := repository.NewStore(db)
	v := validator.New()
	teamService := service.NewTeamService(store,
		service.NewInviteCodeGenerator(cfg.InviteCodeDigits, cfg.InviteCodeMaxAttempts, nil),
		nil, nil, v,
		service.TeamConfig{DefaultName: cfg.DefaultTeamName, InsertAttempts: cfg.TeamCreateInsertAttempts})
	joinRequestService := service.NewJoinRequestService(store, nil, v)

	teamCreated := 0
	for _, teamData := range teams {
		created, err := createTeam(ctx, teamService, joinRequestService, teamData)
		if err != nil {
			return fmt.Errorf("failed to create team %s: %w", teamData.Name, err)
		}
		if created {
			teamCreated++
		}
	}
	log.Printf("📋 Teams: %d created, %d total", teamCreated, len(teams))

	return nil
}

// loadFiles collects the entries of every YAML file under dataDir whose path mentions kind
func loadFiles[F any, T any](dataDir, kind string, entries func(*F) []T) ([]T, error) {
	var all []T

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, kind) {
			var file F
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			all = append(all, entries(&file)...)
		}
		return nil
	})

	return all, err
}

func createProfile(db *gorm.DB, profileData ProfileData) (bool, error) {
	userID, err := uuid.Parse(profileData.UserID)
	if err != nil {
		return false, fmt.Errorf("invalid user_id %q: %w", profileData.UserID, err)
	}

	profile := models.Profile{UserID: userID, FullName: profileData.FullName, Email: profileData.Email}
	result := db.Where(models.Profile{UserID: userID}).FirstOrCreate(&profile)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func createLead(db *gorm.DB, leadData LeadData) (bool, error) {
	userID, err := uuid.Parse(leadData.UserID)
	if err != nil {
		return false, fmt.Errorf("invalid user_id %q: %w", leadData.UserID, err)
	}

	lead := models.Lead{
		UserID:       userID,
		BusinessName: leadData.BusinessName,
		ContactName:  leadData.ContactName,
		Email:        leadData.Email,
		Phone:        leadData.Phone,
		Category:     leadData.Category,
	}
	result := db.Where(models.Lead{UserID: userID, BusinessName: leadData.BusinessName}).FirstOrCreate(&lead)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// createTeam is idempotent: an owner who already has a team is skipped, as are
// members who already belong to one
func createTeam(ctx context.Context, teams *service.TeamService, requests *service.JoinRequestService, teamData TeamData) (bool, error) {
	ownerID, err := uuid.Parse(teamData.OwnerID)
	if err != nil {
		return false, fmt.Errorf("invalid owner_id %q: %w", teamData.OwnerID, err)
	}

	team, err := teams.CreateTeam(ctx, ownerID, &service.CreateTeamRequest{Name: teamData.Name})
	if errors.Is(err, apperrors.ErrAlreadyMember) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	log.Printf("   %s: invite code %s", team.Name, team.InviteCode)

	for _, memberData := range teamData.Members {
		userID, err := uuid.Parse(memberData.UserID)
		if err != nil {
			return true, fmt.Errorf("invalid member user_id %q: %w", memberData.UserID, err)
		}

		request, err := requests.SubmitRequest(ctx, userID, &service.SubmitJoinRequest{InviteCode: team.InviteCode, Role: memberData.Role})
		if errors.Is(err, apperrors.ErrAlreadyMember) {
			log.Printf("⚠️  Warning: %s already belongs to a team, skipped", memberData.UserID)
			continue
		}
		if err != nil {
			return true, fmt.Errorf("failed to submit request for %s: %w", memberData.UserID, err)
		}

		if err := requests.ApproveRequest(ctx, ownerID, request.ID); err != nil {
			return true, fmt.Errorf("failed to approve request for %s: %w", memberData.UserID, err)
		}
	}

	return true, nil
}
