package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

const defaultJWTSecret = "your-secret-key-change-in-production"

// Identity resolution modes
const (
	IdentityModeJWT    = "jwt"
	IdentityModeRemote = "remote"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// Identity configuration
	JWTSecret    string `mapstructure:"JWT_SECRET"`
	JWTAudience  string `mapstructure:"JWT_AUDIENCE"`
	IdentityMode string `mapstructure:"IDENTITY_MODE"`
	IdentityURL  string `mapstructure:"IDENTITY_URL"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Team configuration
	DefaultTeamName          string `mapstructure:"DEFAULT_TEAM_NAME"`
	InviteCodeDigits         int    `mapstructure:"INVITE_CODE_DIGITS"`
	InviteCodeMaxAttempts    int    `mapstructure:"INVITE_CODE_MAX_ATTEMPTS"`
	TeamCreateInsertAttempts int    `mapstructure:"TEAM_CREATE_INSERT_ATTEMPTS"`

	// LDAP profile directory (optional)
	LDAPHost               string `mapstructure:"LDAP_HOST"`
	LDAPPort               string `mapstructure:"LDAP_PORT"`
	LDAPBindDN             string `mapstructure:"LDAP_BIND_DN"`
	LDAPBindPW             string `mapstructure:"LDAP_BIND_PW"`
	LDAPBaseDN             string `mapstructure:"LDAP_BASE_DN"`
	LDAPInsecureSkipVerify bool   `mapstructure:"LDAP_INSECURE_SKIP_VERIFY"`
	LDAPTimeoutSec         int    `mapstructure:"LDAP_TIMEOUT_SEC"`

	// Profile cache
	ProfileCacheSize   int `mapstructure:"PROFILE_CACHE_SIZE"`
	ProfileCacheTTLSec int `mapstructure:"PROFILE_CACHE_TTL_SEC"`

	// Lead ownership reconciliation, cron syntax; empty disables the job
	ReconcileSchedule string `mapstructure:"RECONCILE_SCHEDULE"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// Set default values
	setDefaults(v)

	// Read config file if it exists
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("PORT", "7008")
	v.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "lead_dashboard")
	v.SetDefault("DB_SSL_MODE", "disable")

	// Identity defaults
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("JWT_AUDIENCE", "authenticated")
	v.SetDefault("IDENTITY_MODE", IdentityModeJWT)
	v.SetDefault("IDENTITY_URL", "")

	// CORS defaults
	v.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000"})

	// Team defaults
	v.SetDefault("DEFAULT_TEAM_NAME", "My Team")
	v.SetDefault("INVITE_CODE_DIGITS", 5)
	v.SetDefault("INVITE_CODE_MAX_ATTEMPTS", 30)
	v.SetDefault("TEAM_CREATE_INSERT_ATTEMPTS", 3)

	// LDAP defaults - empty host disables the directory
	v.SetDefault("LDAP_HOST", "")
	v.SetDefault("LDAP_PORT", "636")
	v.SetDefault("LDAP_BIND_DN", "")
	v.SetDefault("LDAP_BIND_PW", "")
	v.SetDefault("LDAP_BASE_DN", "")
	v.SetDefault("LDAP_INSECURE_SKIP_VERIFY", false)
	v.SetDefault("LDAP_TIMEOUT_SEC", 10)

	v.SetDefault("PROFILE_CACHE_SIZE", 1024)
	v.SetDefault("PROFILE_CACHE_TTL_SEC", 300)

	v.SetDefault("RECONCILE_SCHEDULE", "")
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if config.Environment == "production" {
		if config.JWTSecret == defaultJWTSecret {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
	}

	if config.DatabaseName == "" {
		return fmt.Errorf("database name is required")
	}

	switch config.IdentityMode {
	case IdentityModeJWT:
	case IdentityModeRemote:
		if config.IdentityURL == "" {
			return fmt.Errorf("IDENTITY_URL is required when IDENTITY_MODE is remote")
		}
	default:
		return fmt.Errorf("unknown IDENTITY_MODE %q", config.IdentityMode)
	}

	if config.InviteCodeDigits < 3 || config.InviteCodeDigits > 9 {
		return fmt.Errorf("INVITE_CODE_DIGITS must be between 3 and 9")
	}
	if config.InviteCodeMaxAttempts < 1 {
		return fmt.Errorf("INVITE_CODE_MAX_ATTEMPTS must be positive")
	}
	if config.TeamCreateInsertAttempts < 1 {
		return fmt.Errorf("TEAM_CREATE_INSERT_ATTEMPTS must be positive")
	}

	return nil
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// LDAPEnabled reports whether an LDAP profile directory is configured
func (c *Config) LDAPEnabled() bool {
	return c.LDAPHost != ""
}

// ProfileCacheTTL returns the profile cache entry lifetime
func (c *Config) ProfileCacheTTL() time.Duration {
	return time.Duration(c.ProfileCacheTTLSec) * time.Second
}
