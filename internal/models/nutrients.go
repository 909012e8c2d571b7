package models

// NutrientMap holds caller-defined nutrient amounts keyed by nutrient name
type NutrientMap map[string]float64

// Add sums other into m, creating keys as needed. A nil m is not allowed.
func (m NutrientMap) Add(other NutrientMap, factor float64) {
	for k, v := range other {
		m[k] += v * factor
	}
}

// Clone returns a copy that never aliases m
func (m NutrientMap) Clone() NutrientMap {
	out := make(NutrientMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Nutrients is the fixed set of nutrient fields shared by foods and recipe totals.
// Values are per serving for a Food and for the whole recipe on a Recipe.
type Nutrients struct {
	Calories      int     `json:"calories" gorm:"not null;default:0"`
	ProteinG      float64 `json:"protein_g" gorm:"not null;default:0"`
	CarbsG        float64 `json:"carbs_g" gorm:"not null;default:0"`
	FatG          float64 `json:"fat_g" gorm:"not null;default:0"`
	FiberG        float64 `json:"fiber_g" gorm:"not null;default:0"`
	SugarG        float64 `json:"sugar_g" gorm:"not null;default:0"`
	SaturatedFatG float64 `json:"saturated_fat_g" gorm:"not null;default:0"`
	SodiumMg      float64 `json:"sodium_mg" gorm:"not null;default:0"`
	PotassiumMg   float64 `json:"potassium_mg" gorm:"not null;default:0"`
	CholesterolMg float64 `json:"cholesterol_mg" gorm:"not null;default:0"`
}
