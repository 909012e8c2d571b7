package services

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/franciscosanchezn/gin-nutrition-api/internal/database"
	"github.com/franciscosanchezn/gin-nutrition-api/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := database.InitDatabase(database.DatabaseConfig{
		Driver: "sqlite",
		Path:   fmt.Sprintf("file:%s?mode=memory&cache=shared", name),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func ptr[T any](v T) *T { return &v }

func createChickenAndOil(t *testing.T, foods FoodService) (models.Food, models.Food) {
	t.Helper()
	ctx := context.Background()
	chicken, err := foods.CreateFood(ctx, models.FoodCreate{
		Name: "Chicken 100g", Calories: 165, ProteinG: 31, FatG: 3.6,
		ServingSize: ptr(100.0), ServingUnit: models.UnitGram,
	})
	require.NoError(t, err)
	oil, err := foods.CreateFood(ctx, models.FoodCreate{
		Name: "Olive Oil ml", Calories: 119, FatG: 13.5,
		ServingSize: ptr(15.0), ServingUnit: models.UnitMl, GramsPerMl: ptr(0.91),
	})
	require.NoError(t, err)
	return chicken, oil
}
