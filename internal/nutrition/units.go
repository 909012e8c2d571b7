// Package nutrition converts recipe item quantities into multiples of a
// food's serving and aggregates recipe totals from their items.
package nutrition

import (
	"github.com/franciscosanchezn/gin-nutrition-api/internal/models"
)

// Multiplier returns how many of the food's servings the given quantity
// represents. A serving is servingSize of servingUnit. gramsPerMl is the
// food's density; nil or non-positive values fall back to 1 g per ml.
//
// Unit pairs without a real conversion (for example grams against a food
// measured in pieces) use the naive ratio quantity / servingSize.
func Multiplier(quantity float64, unit models.Unit, servingSize float64, servingUnit models.Unit, gramsPerMl *float64) float64 {
	unit = unit.OrDefault()
	servingUnit = servingUnit.OrDefault()

	switch {
	case unit == servingUnit:
		return quantity / servingSize
	case unit == models.UnitGram && servingUnit == models.UnitMl:
		return (quantity / density(gramsPerMl)) / servingSize
	case unit == models.UnitMl && servingUnit == models.UnitGram:
		return (quantity * density(gramsPerMl)) / servingSize
	case unit == models.UnitPiece && servingUnit == models.UnitServing,
		unit == models.UnitServing && servingUnit == models.UnitPiece:
		return quantity / servingSize
	case unit == models.UnitServing && isPhysical(servingUnit):
		// Not the quantity / servingSize fallback: one "serving" of a g/ml
		// food is its declared serving, so 1 serving of a 15 ml oil is 1.0.
		return quantity
	default:
		return quantity / servingSize
	}
}

// ForFood is Multiplier using the serving metadata of food
func ForFood(quantity float64, unit models.Unit, food *models.Food) float64 {
	return Multiplier(quantity, unit, food.ServingSize, food.ServingUnit, food.GramsPerMl)
}

func density(gramsPerMl *float64) float64 {
	if gramsPerMl == nil || *gramsPerMl <= 0 {
		return 1.0
	}
	return *gramsPerMl
}

func isPhysical(u models.Unit) bool {
	return u == models.UnitGram || u == models.UnitMl
}
