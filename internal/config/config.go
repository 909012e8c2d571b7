package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/franciscosanchezn/gin-nutrition-api/internal/database"
	"github.com/sirupsen/logrus"
)

// Create a new instance of the logger
// Configure it to log at the desired level
// and format it as JSON for structured logging
var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(LevelForEnvironment(GetEnvWithDefault("APP_ENV", "development")))
}

// LevelForEnvironment maps APP_ENV to a log level: development logs debug,
// production only errors, anything else info.
func LevelForEnvironment(environment string) logrus.Level {
	switch environment {
	case "development":
		return logrus.DebugLevel
	case "production":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

// Config used for the application configuration, loading the input from environment variables
type Config struct {
	// Server Configuration
	Environment string `json:"environment"`
	Port        int    `json:"port"`
	Host        string `json:"host"`

	// Database configuration
	DBDriver          string `json:"db_driver"`
	DBPath            string `json:"db_path"`
	DBHost            string `json:"db_host"`
	DBPort            string `json:"db_port"`
	DBName            string `json:"db_name"`
	DBUser            string `json:"db_user"`
	DBPassword        string `json:"db_password"`
	DBSSLMode         string `json:"db_sslmode"`
	DBConnectAttempts int    `json:"db_connect_attempts"`

	// Logging configuration
	LogLevel string `json:"log_level"`

	// Data configuration
	SeedOnStart      bool `json:"seed_on_start"`
	DefaultListLimit int  `json:"default_list_limit"`
	MaxListLimit     int  `json:"max_list_limit"`
}

// String returns a string representation of Config with sensitive data masked
func (c *Config) String() string {
	return fmt.Sprintf("Config{Environment: %s, Port: %d, Host: %s, DBDriver: %s, DBPath: %s, DBHost: %s, DBPort: %s, DBName: %s, DBUser: %s, DBPassword: [REDACTED], LogLevel: %s, SeedOnStart: %t, DefaultListLimit: %d, MaxListLimit: %d}",
		c.Environment, c.Port, c.Host, c.DBDriver, c.DBPath, c.DBHost, c.DBPort, c.DBName, c.DBUser, c.LogLevel, c.SeedOnStart, c.DefaultListLimit, c.MaxListLimit)
}

// Database returns the connection settings for the database package
func (c *Config) Database() database.DatabaseConfig {
	return database.DatabaseConfig{
		Driver:          c.DBDriver,
		Host:            c.DBHost,
		Port:            c.DBPort,
		User:            c.DBUser,
		Password:        c.DBPassword,
		Name:            c.DBName,
		SSLMode:         c.DBSSLMode,
		Path:            c.DBPath,
		ConnectAttempts: c.DBConnectAttempts,
	}
}

// LogrusLevel parses LogLevel, falling back to the level implied by Environment
func (c *Config) LogrusLevel() logrus.Level {
	if level, err := logrus.ParseLevel(c.LogLevel); err == nil {
		return level
	}
	return LevelForEnvironment(c.Environment)
}

// LoadConfig read the proper configuration from environment variables and returns a Config struct
// Returns an error if any numeric variable is malformed or the values are inconsistent
func LoadConfig() (*Config, error) {
	log.Info("Loading configuration from environment variables")

	port, err := getEnvInt("APP_PORT", 8080)
	if err != nil {
		return nil, err
	}
	attempts, err := getEnvInt("DB_CONNECT_RETRIES", 1)
	if err != nil {
		return nil, err
	}
	defaultLimit, err := getEnvInt("DEFAULT_LIST_LIMIT", 100)
	if err != nil {
		return nil, err
	}
	maxLimit, err := getEnvInt("MAX_LIST_LIMIT", 500)
	if err != nil {
		return nil, err
	}

	config := &Config{
		Environment:       GetEnvWithDefault("APP_ENV", "development"),
		Port:              port,
		Host:              GetEnvWithDefault("APP_HOST", "localhost"),
		DBDriver:          strings.ToLower(GetEnvWithDefault("DB_DRIVER", "sqlite")),
		DBPath:            GetEnvWithDefault("DB_PATH", "nutrition.db"),
		DBHost:            GetEnvWithDefault("DB_HOST", "localhost"),
		DBPort:            GetEnvWithDefault("DB_PORT", "5432"),
		DBName:            GetEnvWithDefault("DB_NAME", "nutrition"),
		DBUser:            GetEnvWithDefault("DB_USER", "user"),
		DBPassword:        GetEnvWithDefault("DB_PASSWORD", "password"),
		DBSSLMode:         GetEnvWithDefault("DB_SSLMODE", "disable"),
		DBConnectAttempts: attempts,
		LogLevel:          GetEnvWithDefault("LOG_LEVEL", "info"),
		SeedOnStart:       GetEnvAsType("SEED_ON_START", false),
		DefaultListLimit:  defaultLimit,
		MaxListLimit:      maxLimit,
	}

	if err := config.validate(); err != nil {
		return nil, err
	}
	log.Infof("Configuration loaded: %s", config.String())
	return config, nil
}

func (c *Config) validate() error {
	switch c.DBDriver {
	case "sqlite", "postgres", "postgresql":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q (supported: sqlite, postgres)", c.DBDriver)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("APP_PORT out of range: %d", c.Port)
	}
	if c.DefaultListLimit < 1 {
		return fmt.Errorf("DEFAULT_LIST_LIMIT must be positive, got %d", c.DefaultListLimit)
	}
	if c.MaxListLimit < c.DefaultListLimit {
		return fmt.Errorf("MAX_LIST_LIMIT (%d) must not be below DEFAULT_LIST_LIMIT (%d)", c.MaxListLimit, c.DefaultListLimit)
	}
	return nil
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value, err := strconv.Atoi(GetEnvWithDefault(key, strconv.Itoa(defaultValue)))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return value, nil
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
