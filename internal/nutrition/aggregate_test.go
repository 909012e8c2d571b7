package nutrition

import (
	"math"
	"testing"

	"github.com/franciscosanchezn/gin-nutrition-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chickenAndOil() (models.Food, models.Food) {
	chicken := models.Food{
		ID:          1,
		Name:        "Chicken 100g",
		Nutrients:   models.Nutrients{Calories: 165, ProteinG: 31, FatG: 3.6},
		ServingSize: 100,
		ServingUnit: models.UnitGram,
	}
	oil := models.Food{
		ID:          2,
		Name:        "Olive Oil ml",
		Nutrients:   models.Nutrients{Calories: 119, FatG: 13.5},
		ServingSize: 15,
		ServingUnit: models.UnitMl,
		GramsPerMl:  ptr(0.91),
	}
	return chicken, oil
}

func TestRecalculateChickenSalad(t *testing.T) {
	chicken, oil := chickenAndOil()
	recipe := &models.Recipe{Name: "Chicken Salad", Servings: 2, ServingUnit: models.UnitServing}
	items := []models.RecipeItem{
		{ID: 1, FoodID: chicken.ID, Quantity: 150, Unit: models.UnitGram},
		{ID: 2, FoodID: oil.ID, Quantity: 1, Unit: models.UnitServing},
	}

	skipped := Recalculate(recipe, items, NewFoodIndex([]models.Food{chicken, oil}))

	assert.Empty(t, skipped)
	assert.Equal(t, 367, recipe.Calories)
	assert.InDelta(t, 46.5, recipe.ProteinG, 1e-9)
	assert.InDelta(t, 5.4+13.5, recipe.FatG, 1e-9)

	perServing := PerServing(recipe)
	assert.Equal(t, 183.5, perServing[KeyCalories])
	assert.Equal(t, 23.25, perServing[KeyProteinG])
	assert.Equal(t, "Chicken Salad", recipe.Name)
	assert.Equal(t, 2.0, recipe.Servings)
}

func TestRecalculateCaloriesRoundedPerItem(t *testing.T) {
	food := models.Food{ID: 1, Nutrients: models.Nutrients{Calories: 1}, ServingSize: 1, ServingUnit: models.UnitServing}
	items := []models.RecipeItem{
		{ID: 1, FoodID: 1, Quantity: 0.4},
		{ID: 2, FoodID: 1, Quantity: 0.4},
		{ID: 3, FoodID: 1, Quantity: 0.4},
	}
	recipe := &models.Recipe{Servings: 1}

	Recalculate(recipe, items, NewFoodIndex([]models.Food{food}))

	// 0.4 rounds to 0 per item even though the sum would round to 1
	assert.Equal(t, 0, recipe.Calories)
}

func TestRecalculateCaloriesTiesRoundToEven(t *testing.T) {
	food := models.Food{ID: 1, Nutrients: models.Nutrients{Calories: 5}, ServingSize: 1, ServingUnit: models.UnitServing}
	lookup := NewFoodIndex([]models.Food{food})

	half := &models.Recipe{Servings: 1}
	Recalculate(half, []models.RecipeItem{{ID: 1, FoodID: 1, Quantity: 0.5}}, lookup)
	assert.Equal(t, 2, half.Calories, "2.5 kcal rounds to 2")

	threeAndHalf := &models.Recipe{Servings: 1}
	seven := models.Food{ID: 2, Nutrients: models.Nutrients{Calories: 7}, ServingSize: 1, ServingUnit: models.UnitServing}
	Recalculate(threeAndHalf, []models.RecipeItem{{ID: 1, FoodID: 2, Quantity: 0.5}}, NewFoodIndex([]models.Food{seven}))
	assert.Equal(t, 4, threeAndHalf.Calories, "3.5 kcal rounds to 4")
}

func TestRecalculateOrderIndependent(t *testing.T) {
	chicken, oil := chickenAndOil()
	rice := models.Food{
		ID:                  3,
		Nutrients:           models.Nutrients{Calories: 111, ProteinG: 2.6, CarbsG: 23, FiberG: 1.8},
		AdditionalNutrients: models.NutrientMap{"iron_mg": 0.4},
		ServingSize:         100,
		ServingUnit:         models.UnitGram,
	}
	lookup := NewFoodIndex([]models.Food{chicken, oil, rice})
	items := []models.RecipeItem{
		{ID: 1, FoodID: 1, Quantity: 137, Unit: models.UnitGram},
		{ID: 2, FoodID: 2, Quantity: 22, Unit: models.UnitMl},
		{ID: 3, FoodID: 3, Quantity: 0.3, Unit: models.UnitMl},
		{ID: 4, FoodID: 3, Quantity: 250, Unit: models.UnitGram},
	}
	reversed := make([]models.RecipeItem, len(items))
	for i := range items {
		reversed[len(items)-1-i] = items[i]
	}

	forward := &models.Recipe{Servings: 3}
	backward := &models.Recipe{Servings: 3}
	Recalculate(forward, items, lookup)
	Recalculate(backward, reversed, lookup)

	expected := 0
	for _, item := range items {
		food, _ := lookup.LookupFood(item.FoodID)
		expected += int(math.RoundToEven(float64(food.Calories) * ForFood(item.Quantity, item.Unit, food)))
	}
	assert.Equal(t, expected, forward.Calories)
	assert.Equal(t, forward.Calories, backward.Calories)
	assert.InDelta(t, forward.ProteinG, backward.ProteinG, 1e-9)
	assert.InDelta(t, forward.CarbsG, backward.CarbsG, 1e-9)
	assert.InDelta(t, forward.AdditionalNutrients["iron_mg"], backward.AdditionalNutrients["iron_mg"], 1e-9)
}

func TestRecalculateIsIdempotent(t *testing.T) {
	chicken, oil := chickenAndOil()
	chicken.AdditionalNutrients = models.NutrientMap{"b12_ug": 0.3}
	lookup := NewFoodIndex([]models.Food{chicken, oil})
	recipe := &models.Recipe{Servings: 4, ManualNutrients: models.NutrientMap{"b12_ug": 1, "salt_g": 2}}
	items := []models.RecipeItem{
		{ID: 1, FoodID: 1, Quantity: 333, Unit: models.UnitGram},
		{ID: 2, FoodID: 2, Quantity: 17, Unit: models.UnitGram},
	}

	Recalculate(recipe, items, lookup)
	first := recipe.Nutrients
	firstExtra := recipe.AdditionalNutrients.Clone()

	Recalculate(recipe, items, lookup)

	assert.Equal(t, first, recipe.Nutrients)
	assert.Equal(t, firstExtra, recipe.AdditionalNutrients)
}

func TestRecalculateSkipsMissingFood(t *testing.T) {
	chicken, _ := chickenAndOil()
	recipe := &models.Recipe{Servings: 1, Nutrients: models.Nutrients{Calories: 999, SodiumMg: 10}}
	items := []models.RecipeItem{
		{ID: 10, FoodID: chicken.ID, Quantity: 100, Unit: models.UnitGram},
		{ID: 11, FoodID: 42, Quantity: 500, Unit: models.UnitGram},
	}

	var skipped []uint
	require.NotPanics(t, func() {
		skipped = Recalculate(recipe, items, NewFoodIndex([]models.Food{chicken}))
	})

	assert.Equal(t, []uint{11}, skipped)
	assert.Equal(t, 165, recipe.Calories)
	assert.InDelta(t, 31, recipe.ProteinG, 1e-9)
	assert.Zero(t, recipe.SodiumMg)
}

func TestRecalculateMergesManualNutrients(t *testing.T) {
	food := models.Food{
		ID:                  1,
		AdditionalNutrients: models.NutrientMap{"vitamin_c_mg": 10, "iron_mg": 1},
		ServingSize:         100,
		ServingUnit:         models.UnitGram,
	}
	recipe := &models.Recipe{
		Servings:        2,
		ManualNutrients: models.NutrientMap{"vitamin_c_mg": 5, "omega3_g": 0.7},
	}
	items := []models.RecipeItem{{ID: 1, FoodID: 1, Quantity: 200, Unit: models.UnitGram}}

	Recalculate(recipe, items, NewFoodIndex([]models.Food{food}))

	assert.InDelta(t, 25, recipe.AdditionalNutrients["vitamin_c_mg"], 1e-9)
	assert.InDelta(t, 2, recipe.AdditionalNutrients["iron_mg"], 1e-9)
	assert.InDelta(t, 0.7, recipe.AdditionalNutrients["omega3_g"], 1e-9)
	assert.Len(t, recipe.AdditionalNutrients, 3)
	assert.Equal(t, models.NutrientMap{"vitamin_c_mg": 5, "omega3_g": 0.7}, recipe.ManualNutrients)
}

func TestRecalculateEmptyRecipe(t *testing.T) {
	recipe := &models.Recipe{Servings: 1, ManualNutrients: models.NutrientMap{"zinc_mg": 3}}

	Recalculate(recipe, nil, FoodIndex{})

	assert.Equal(t, models.Nutrients{}, recipe.Nutrients)
	assert.Equal(t, models.NutrientMap{"zinc_mg": 3}, recipe.AdditionalNutrients)
}

func TestPerServing(t *testing.T) {
	recipe := &models.Recipe{
		Servings: 3,
		Nutrients: models.Nutrients{
			Calories: 500, ProteinG: 10, CarbsG: 20.123, FatG: 1,
			FiberG: 0, SugarG: 7, SaturatedFatG: 2, SodiumMg: 100, PotassiumMg: 31, CholesterolMg: 9,
		},
		AdditionalNutrients: models.NutrientMap{"iron_mg": 1},
	}

	perServing := PerServing(recipe)

	require.Len(t, perServing, 11)
	for k, v := range FixedNutrients(recipe.Nutrients) {
		assert.Equal(t, Round2(v/3), perServing[k], k)
	}
	assert.Equal(t, 166.67, perServing[KeyCalories])
	assert.Equal(t, 6.71, perServing[KeyCarbsG])
	assert.Equal(t, 0.33, perServing["iron_mg"])
}

func TestPerServingTiesRoundToEven(t *testing.T) {
	recipe := &models.Recipe{Servings: 8, Nutrients: models.Nutrients{Calories: 1, FatG: 3}}

	perServing := PerServing(recipe)

	assert.Equal(t, 0.12, perServing[KeyCalories])
	assert.Equal(t, 0.38, perServing[KeyFatG])
	assert.Equal(t, 0.12, Round2(0.125))
	assert.Equal(t, 0.38, Round2(0.375))
}

func TestPerServingNonPositiveServings(t *testing.T) {
	for _, servings := range []float64{0, -1} {
		recipe := &models.Recipe{Servings: servings, Nutrients: models.Nutrients{Calories: 100}}
		assert.Empty(t, PerServing(recipe))
		assert.NotNil(t, PerServing(recipe))
	}
}
