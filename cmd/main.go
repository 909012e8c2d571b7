package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	_ "github.com/franciscosanchezn/gin-nutrition-api/docs" // Import generated docs
	"github.com/franciscosanchezn/gin-nutrition-api/internal/config"
	"github.com/franciscosanchezn/gin-nutrition-api/internal/controllers"
	"github.com/franciscosanchezn/gin-nutrition-api/internal/database"
	"github.com/franciscosanchezn/gin-nutrition-api/internal/middleware"
	"github.com/franciscosanchezn/gin-nutrition-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

var (
	db            *gorm.DB
	configuration *config.Config
)

// @title Nutrition API
// @version 1.0
// @description Foods, recipes and aggregated recipe nutrition
// @host localhost:8080
// @BasePath /
func main() {
	// Load environment variables
	loadDotenvFile()

	// Initialize logger
	setUpLogger()

	// Load configuration
	configuration = loadConfig()
	applyLogLevel(configuration.LogrusLevel())

	// Initialize database connection
	db = setupDatabase(configuration)

	// Initialize services and controllers
	paging := controllers.Paging{
		DefaultLimit: configuration.DefaultListLimit,
		MaxLimit:     configuration.MaxListLimit,
	}
	seedService := services.NewSeedService(db)
	foodController := controllers.NewFoodController(services.NewFoodService(db), paging)
	recipeController := controllers.NewRecipeController(services.NewRecipeService(db), paging)
	seedController := controllers.NewSeedController(seedService)

	if configuration.SeedOnStart {
		seedDatabase(seedService)
	}

	// Initialize Gin router
	router := setupRouter(foodController, recipeController, seedController)

	// Start the server
	log.Infof("Starting server on %s:%d", configuration.Host, configuration.Port)
	checkPanicErr(router.Run(fmt.Sprintf("%v:%d", configuration.Host, configuration.Port)))
}

// checkPanicErr checks if an error occurred and panics if it did
func checkPanicErr(err error) {
	if err != nil {
		panic(err)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger initializes the logger with a JSON formatter and sets the log level based on the environment
func setUpLogger() {
	log.SetFormatter(&log.JSONFormatter{})
	log.SetLevel(config.LevelForEnvironment(config.GetEnvWithDefault("APP_ENV", "development")))
	if log.GetLevel() != log.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}
}

// applyLogLevel propagates the configured level to every package logger
func applyLogLevel(level log.Level) {
	log.SetLevel(level)
	database.SetLevel(level)
	services.SetLevel(level)
}

// loadConfig loads the application configuration from environment variables
// It returns a Config struct or panics if there is an error
func loadConfig() *config.Config {
	log.Info("Loading configuration from environment variables")
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	log.Infof("Configuration loaded: %s", conf)
	return conf
}

// setupDatabase opens the configured database and migrates the schema
func setupDatabase(conf *config.Config) *gorm.DB {
	conn, err := database.InitDatabase(conf.Database())
	checkPanicErr(err)
	checkPanicErr(database.Migrate(conn))
	return conn
}

// seedDatabase inserts the sample foods when the foods table is empty
func seedDatabase(seed services.SeedService) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	created, err := seed.SeedIfEmpty(ctx)
	checkPanicErr(err)
	log.WithField("created", created).Info("Startup seeding finished")
}

// setupRouter initializes the Gin router and sets up the routes
// It returns the configured router
func setupRouter(foods controllers.FoodController, recipes controllers.RecipeController, seed controllers.SeedController) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.RequestLogger(log.StandardLogger()))

	// Health check endpoint
	router.GET("/health", healthCheckHandler)

	controllers.RegisterRoutes(router.Group("/api/v1"), foods, recipes, seed)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	return router
}

// healthCheckHandler handles the health check endpoint
// @Summary Health check
// @Description Check if the service is running and the database answers
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func healthCheckHandler(c *gin.Context) {
	status, code := "healthy", http.StatusOK
	if sqlDB, err := db.DB(); err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
		status, code = "unhealthy", http.StatusServiceUnavailable
	}
	c.JSON(code, gin.H{
		"status":    status,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "gin-nutrition-api",
	})
}
