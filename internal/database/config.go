package database

import (
	"fmt"
	"strings"
)

// DatabaseConfig holds database connection configuration
type DatabaseConfig struct {
	// Driver specifies the database driver (postgres, sqlite)
	Driver string

	// PostgreSQL-specific configuration
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string

	// SQLite-specific configuration
	Path string

	// ConnectAttempts is how many times the initial connection is tried; values below 1 mean once
	ConnectAttempts int
}

// String returns a string representation with sensitive data masked
func (c *DatabaseConfig) String() string {
	return fmt.Sprintf("DatabaseConfig{Driver: %s, Host: %s, Port: %s, User: %s, Password: [REDACTED], Name: %s, SSLMode: %s, Path: %s, ConnectAttempts: %d}",
		c.Driver, c.Host, c.Port, c.User, c.Name, c.SSLMode, c.Path, c.ConnectAttempts)
}

// DSN builds a Data Source Name string based on the driver.
// SQLite connections always enable foreign key enforcement, which recipe
// items rely on for cascade and restrict behaviour.
func (c *DatabaseConfig) DSN() string {
	switch strings.ToLower(c.Driver) {
	case "postgres", "postgresql":
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
			c.Host, c.User, c.Password, c.Name, c.Port, c.SSLMode)
	case "sqlite", "":
		if strings.Contains(c.Path, "_foreign_keys") {
			return c.Path
		}
		sep := "?"
		if strings.Contains(c.Path, "?") {
			sep = "&"
		}
		return c.Path + sep + "_foreign_keys=on"
	default:
		return ""
	}
}
