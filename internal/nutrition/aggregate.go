package nutrition

import (
	"math"

	"github.com/franciscosanchezn/gin-nutrition-api/internal/models"
)

// Keys of the fixed nutrient fields as they appear in per-serving maps
const (
	KeyCalories      = "calories"
	KeyProteinG      = "protein_g"
	KeyCarbsG        = "carbs_g"
	KeyFatG          = "fat_g"
	KeyFiberG        = "fiber_g"
	KeySugarG        = "sugar_g"
	KeySaturatedFatG = "saturated_fat_g"
	KeySodiumMg      = "sodium_mg"
	KeyPotassiumMg   = "potassium_mg"
	KeyCholesterolMg = "cholesterol_mg"
)

// FoodLookup resolves the food referenced by a recipe item
type FoodLookup interface {
	LookupFood(id uint) (*models.Food, bool)
}

// FoodIndex is an in-memory FoodLookup keyed by food id
type FoodIndex map[uint]*models.Food

// NewFoodIndex indexes foods by id
func NewFoodIndex(foods []models.Food) FoodIndex {
	idx := make(FoodIndex, len(foods))
	for i := range foods {
		idx[foods[i].ID] = &foods[i]
	}
	return idx
}

func (idx FoodIndex) LookupFood(id uint) (*models.Food, bool) {
	food, ok := idx[id]
	return food, ok && food != nil
}

// Recalculate resets the recipe totals and rebuilds them from items.
// Items whose food cannot be resolved contribute nothing; their ids are
// returned so callers can report them. Calories are rounded per item.
// The recipe's ManualNutrients are added at face value, and the merged
// map replaces AdditionalNutrients. Name, servings and unit are untouched.
func Recalculate(recipe *models.Recipe, items []models.RecipeItem, lookup FoodLookup) (skipped []uint) {
	var totals models.Nutrients
	merged := models.NutrientMap{}

	for _, item := range items {
		food, ok := lookup.LookupFood(item.FoodID)
		if !ok {
			skipped = append(skipped, item.ID)
			continue
		}
		mult := ForFood(item.Quantity, item.Unit, food)
		addScaled(&totals, food.Nutrients, mult)
		merged.Add(food.AdditionalNutrients, mult)
	}

	merged.Add(recipe.ManualNutrients, 1)

	recipe.Nutrients = totals
	recipe.AdditionalNutrients = merged
	return skipped
}

func addScaled(dst *models.Nutrients, n models.Nutrients, mult float64) {
	dst.Calories += int(math.RoundToEven(float64(n.Calories) * mult))
	dst.ProteinG += n.ProteinG * mult
	dst.CarbsG += n.CarbsG * mult
	dst.FatG += n.FatG * mult
	dst.FiberG += n.FiberG * mult
	dst.SugarG += n.SugarG * mult
	dst.SaturatedFatG += n.SaturatedFatG * mult
	dst.SodiumMg += n.SodiumMg * mult
	dst.PotassiumMg += n.PotassiumMg * mult
	dst.CholesterolMg += n.CholesterolMg * mult
}

// PerServing divides every total and additional nutrient by the recipe's
// servings, rounded to 2 decimals. It is empty when servings is not positive.
func PerServing(recipe *models.Recipe) models.NutrientMap {
	out := models.NutrientMap{}
	s := recipe.Servings
	if s <= 0 {
		return out
	}
	for k, v := range FixedNutrients(recipe.Nutrients) {
		out[k] = Round2(v / s)
	}
	for k, v := range recipe.AdditionalNutrients {
		out[k] = Round2(v / s)
	}
	return out
}

// FixedNutrients flattens n into a map keyed by the wire field names
func FixedNutrients(n models.Nutrients) models.NutrientMap {
	return models.NutrientMap{
		KeyCalories:      float64(n.Calories),
		KeyProteinG:      n.ProteinG,
		KeyCarbsG:        n.CarbsG,
		KeyFatG:          n.FatG,
		KeyFiberG:        n.FiberG,
		KeySugarG:        n.SugarG,
		KeySaturatedFatG: n.SaturatedFatG,
		KeySodiumMg:      n.SodiumMg,
		KeyPotassiumMg:   n.PotassiumMg,
		KeyCholesterolMg: n.CholesterolMg,
	}
}

// Round2 rounds v to 2 decimal places, ties to even
func Round2(v float64) float64 {
	return math.RoundToEven(v*100) / 100
}
