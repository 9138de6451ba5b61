package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	IPayroll IPayrollConfig
	Jira     JiraConfig
	Report   ReportConfig
	Sync     SyncConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration. Tokens are issued by the external IdP;
// this service only verifies them with the shared secret.
type JWTConfig struct {
	Secret string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
}

// IPayrollConfig holds the OAuth2 client settings for the payroll vendor.
type IPayrollConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	BaseURL      string
	Scopes       []string
}

type JiraConfig struct {
	BaseURL  string
	Username string
	APIToken string
	Timeout  time.Duration
}

// ReportConfig holds tunables for the time-report aggregation engine.
type ReportConfig struct {
	// Hours credited for each distinct project-activity date. The tracker
	// records presence of work per day, not duration, so each day counts
	// as one nominal working day.
	ProjectDayHours float64
}

type SyncConfig struct {
	JiraInterval     time.Duration
	IPayrollInterval time.Duration
}

func Load() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "capdev"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret: getEnv("JWT_SECRET_KEY", ""),
	}

	// iPayroll OAuth2 configuration
	config.IPayroll = IPayrollConfig{
		ClientID:     getEnv("IPAYROLL_CLIENT_ID", ""),
		ClientSecret: getEnv("IPAYROLL_CLIENT_SECRET", ""),
		RedirectURL:  getEnv("IPAYROLL_REDIRECT_URL", ""),
		BaseURL:      getEnv("IPAYROLL_BASE_URL", "https://secure.ipayroll.co.nz"),
		Scopes:       getEnvSlice("IPAYROLL_SCOPES"),
	}

	// Jira configuration
	jiraTimeout, err := time.ParseDuration(getEnv("JIRA_HTTP_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid JIRA_HTTP_TIMEOUT: %w", err)
	}
	config.Jira = JiraConfig{
		BaseURL:  getEnv("JIRA_BASE_URL", ""),
		Username: getEnv("JIRA_USERNAME", ""),
		APIToken: getEnv("JIRA_API_TOKEN", ""),
		Timeout:  jiraTimeout,
	}

	// Report configuration
	projectDayHours, err := strconv.ParseFloat(getEnv("PROJECT_DAY_HOURS", "8"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid PROJECT_DAY_HOURS: %w", err)
	}
	config.Report = ReportConfig{
		ProjectDayHours: projectDayHours,
	}

	// Sync configuration
	jiraInterval, err := time.ParseDuration(getEnv("JIRA_SYNC_INTERVAL", "1h"))
	if err != nil {
		return nil, fmt.Errorf("invalid JIRA_SYNC_INTERVAL: %w", err)
	}
	ipayrollInterval, err := time.ParseDuration(getEnv("IPAYROLL_SYNC_INTERVAL", "24h"))
	if err != nil {
		return nil, fmt.Errorf("invalid IPAYROLL_SYNC_INTERVAL: %w", err)
	}
	config.Sync = SyncConfig{
		JiraInterval:     jiraInterval,
		IPayrollInterval: ipayrollInterval,
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Report.ProjectDayHours <= 0 {
		return fmt.Errorf("PROJECT_DAY_HOURS must be positive")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(env string) []string {
	value := getEnv(env, "")
	if value == "" {
		return []string{}
	}
	var result []string = strings.Split(value, ",")
	return result
}
