package database

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/franciscosanchezn/gin-nutrition-api/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
}

// SetLevel changes the level of the database package logger
func SetLevel(level logrus.Level) {
	log.SetLevel(level)
}

func gormConfig() *gorm.Config {
	return &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// dialector picks the gorm driver for cfg
func dialector(cfg DatabaseConfig) (gorm.Dialector, string, error) {
	driver := strings.ToLower(cfg.Driver)
	switch driver {
	case "postgres", "postgresql":
		return postgres.Open(cfg.DSN()), "postgres", nil
	case "sqlite", "":
		return sqlite.Open(cfg.DSN()), "sqlite", nil
	default:
		return nil, driver, fmt.Errorf("unsupported database driver: %s (supported: postgres, sqlite)", cfg.Driver)
	}
}

// connect opens the database once and verifies it answers a ping
func connect(dial gorm.Dialector) (*gorm.DB, *sql.DB, error) {
	db, err := gorm.Open(dial, gormConfig())
	if err != nil {
		return nil, nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, err
	}
	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, nil, err
	}
	return db, sqlDB, nil
}

// InitDatabase opens the database described by cfg and configures its pool.
// The connection is attempted cfg.ConnectAttempts times (at least once),
// doubling the wait between attempts starting at one second.
func InitDatabase(cfg DatabaseConfig) (*gorm.DB, error) {
	dial, driver, err := dialector(cfg)
	if err != nil {
		return nil, err
	}

	entry := log.WithFields(logrus.Fields{
		"db_driver": driver,
		"db_host":   cfg.Host,
		"db_name":   cfg.Name,
		"db_path":   cfg.Path,
	})
	entry.Info("Initializing database connection")

	attempts := max(cfg.ConnectAttempts, 1)
	delay := time.Second
	for attempt := 1; ; attempt++ {
		db, sqlDB, err := connect(dial)
		if err == nil {
			configureConnectionPool(sqlDB, driver)
			entry.WithField("attempt", attempt).Info("Database initialized successfully")
			return db, nil
		}

		entry.WithFields(logrus.Fields{
			"attempt":      attempt,
			"max_attempts": attempts,
			"error":        err.Error(),
		}).Warn("Database connection attempt failed")

		if attempt == attempts {
			return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", attempts, err)
		}
		entry.WithField("delay", delay).Info("Retrying database connection")
		time.Sleep(delay)
		delay *= 2
	}
}

// configureConnectionPool sets up connection pool parameters
func configureConnectionPool(sqlDB *sql.DB, driver string) {
	maxOpen := 25
	if driver == "sqlite" {
		// sqlite serializes writers; a single connection avoids SQLITE_BUSY inside transactions
		maxOpen = 1
	}
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(min(5, maxOpen))
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	log.WithFields(logrus.Fields{
		"max_open_conns":    maxOpen,
		"conn_max_lifetime": "5m",
	}).Debug("Connection pool configured")
}

// Migrate creates or updates the schema for foods, recipes and recipe items
func Migrate(db *gorm.DB) error {
	if db == nil {
		return fmt.Errorf("database handle is nil")
	}
	if err := db.AutoMigrate(&models.Food{}, &models.Recipe{}, &models.RecipeItem{}); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	log.Debug("Schema migrated")
	return nil
}
