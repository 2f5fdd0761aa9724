package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/franciscosanchezn/pizza-management-api/internal/database"
	"github.com/sirupsen/logrus"
)

// Create a new instance of the logger
// Configure it to log at the desired level
// and format it as JSON for structured logging
var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(LevelForEnvironment(os.Getenv("APP_ENV")))
}

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTest        = "test"
)

// DefaultAllowedOrigins are the frontend dev servers allowed to call the API
var DefaultAllowedOrigins = []string{"http://localhost:3000", "http://localhost:5173"}

// Config used for the application configuration, loading the input from environment variables
type Config struct {
	// Server Configuration
	Port        int    `json:"port"`
	Host        string `json:"host"`
	Environment string `json:"environment"`

	// Logging configuration
	LogLevel string `json:"log_level"`

	// AllowedOrigins is the list of cross-origin callers accepted by the API
	AllowedOrigins []string `json:"allowed_origins"`

	// SeedData seeds default toppings and pizzas into an empty store on startup
	SeedData bool `json:"seed_data"`

	// Database configuration
	Database database.DatabaseConfig `json:"-"`
}

// String returns a string representation of Config with sensitive data masked
func (c *Config) String() string {
	return fmt.Sprintf("Config{Port: %d, Host: %s, Environment: %s, LogLevel: %s, AllowedOrigins: %v, SeedData: %t, Database: %s}",
		c.Port, c.Host, c.Environment, c.LogLevel, c.AllowedOrigins, c.SeedData, c.Database.String())
}

// Address returns the host:port the HTTP server listens on
func (c *Config) Address() string {
	return fmt.Sprintf("%v:%d", c.Host, c.Port)
}

// LoadConfig read the proper configuration from environment variables and returns a Config struct
// It validates the port and the DATABASE_URL format
// Returns an error if any environment variable is invalid
func LoadConfig() (*Config, error) {
	log.Info("Loading configuration from environment variables")
	port, err := strconv.Atoi(GetEnvWithDefault("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	environment := GetEnvWithDefault("APP_ENV", EnvDevelopment)

	dbConfig, err := loadDatabaseConfig(environment)
	if err != nil {
		return nil, err
	}

	config := &Config{
		Port:           port,
		Host:           GetEnvWithDefault("APP_HOST", "localhost"),
		Environment:    environment,
		LogLevel:       GetEnvWithDefault("LOG_LEVEL", "info"),
		AllowedOrigins: ParseList(GetEnvWithDefault("CORS_ALLOWED_ORIGINS", strings.Join(DefaultAllowedOrigins, ","))),
		SeedData:       GetEnvAsType("SEED_DATA", false),
		Database:       dbConfig,
	}
	log.Infof("Configuration loaded: %s", config.String())
	return config, nil
}

// loadDatabaseConfig picks the store from DATABASE_URL, the DB_* variables or the test default
func loadDatabaseConfig(environment string) (database.DatabaseConfig, error) {
	if environment == EnvTest {
		return database.DatabaseConfig{Driver: "sqlite", Path: "test.sqlite"}, nil
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL != "" {
		// Some providers still hand out the legacy postgres:// scheme
		if strings.HasPrefix(dbURL, "postgres://") {
			dbURL = "postgresql://" + strings.TrimPrefix(dbURL, "postgres://")
		}
		if _, err := url.ParseRequestURI(dbURL); err != nil {
			return database.DatabaseConfig{}, fmt.Errorf("invalid DATABASE_URL format: %w", err)
		}
		return database.DatabaseConfig{Driver: "postgres", URL: dbURL}, nil
	}

	return database.DatabaseConfig{
		Driver:   GetEnvWithDefault("DB_DRIVER", "sqlite"),
		Host:     GetEnvWithDefault("DB_HOST", "localhost"),
		Port:     GetEnvWithDefault("DB_PORT", "5432"),
		User:     GetEnvWithDefault("DB_USER", "user"),
		Password: GetEnvWithDefault("DB_PASSWORD", "password"),
		Name:     GetEnvWithDefault("DB_NAME", "pizzas"),
		SSLMode:  GetEnvWithDefault("DB_SSLMODE", "disable"),
		Path:     GetEnvWithDefault("DB_PATH", "pizza.sqlite"),
	}, nil
}

// LevelForEnvironment maps APP_ENV to the default log level
func LevelForEnvironment(environment string) logrus.Level {
	switch environment {
	case EnvDevelopment, "":
		return logrus.DebugLevel
	case EnvProduction:
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

// ParseList splits a comma separated value, dropping blanks
func ParseList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// Helper to get environment with default values
func GetEnvWithDefault(key, defaultValue string) string {
	log.Tracef("Getting environment variable: %s", key)
	value := os.Getenv(key)
	if value == "" {
		log.Debugf("Environment variable %s not set, using default value: %s", key, defaultValue)
		return defaultValue
	}
	return value
}

// GetEnvAsType retrieves an environment variable and converts it to the specified type
// using generic type handling.
func GetEnvAsType[T any](key string, defaultValue T) T {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var result T
	switch any(result).(type) {
	case int:
		intValue, err := strconv.Atoi(value)
		if err != nil {
			return defaultValue
		}
		return any(intValue).(T)
	case string:
		return any(value).(T)
	case bool:
		boolValue, err := strconv.ParseBool(value)
		if err != nil {
			return defaultValue
		}
		return any(boolValue).(T)
	default:
		return defaultValue // Fallback for unsupported types
	}
}
