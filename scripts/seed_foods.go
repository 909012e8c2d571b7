package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/franciscosanchezn/gin-nutrition-api/internal/database"
	"github.com/franciscosanchezn/gin-nutrition-api/internal/services"
	log "github.com/sirupsen/logrus"
)

func main() {
	// Parse command line flags
	path := flag.String("db", "nutrition.db", "SQLite database file")
	count := flag.Int("count", len(services.SampleFoods()), "Number of sample foods to insert")
	flag.Parse()

	db, err := database.InitDatabase(database.DatabaseConfig{Driver: "sqlite", Path: *path})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	foods, err := services.NewSeedService(db).SeedFoods(context.Background(), *count)
	if err != nil {
		log.Fatal("Failed to seed foods:", err)
	}

	if len(foods) == 0 {
		fmt.Printf("No foods added to %s, sample names already exist\n", *path)
		return
	}
	fmt.Printf("✓ Added %d sample foods to %s\n", len(foods), *path)
	for _, food := range foods {
		fmt.Printf("  %d  %-22s %4d kcal per %g %s\n", food.ID, food.Name, food.Calories, food.ServingSize, food.ServingUnit)
	}
}
