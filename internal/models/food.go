package models

import (
	"time"
)

// Food is a reusable nutrition record; nutrient values describe one serving,
// where a serving is ServingSize of ServingUnit.
type Food struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"size:120;uniqueIndex;not null"`

	Nutrients           `gorm:"embedded"`
	AdditionalNutrients NutrientMap `json:"additional_nutrients" gorm:"serializer:json;type:text"`

	ServingSize float64  `json:"serving_size" gorm:"not null;default:1"`
	ServingUnit Unit     `json:"serving_unit" gorm:"size:16;not null;default:serving"`
	GramsPerMl  *float64 `json:"grams_per_ml"` // density used for g <-> ml conversion

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// FoodCreate is the payload accepted when creating a food
type FoodCreate struct {
	Name                string      `json:"name" binding:"required,min=1,max=120"`
	Calories            int         `json:"calories" binding:"gte=0"`
	ProteinG            float64     `json:"protein_g" binding:"gte=0"`
	CarbsG              float64     `json:"carbs_g" binding:"gte=0"`
	FatG                float64     `json:"fat_g" binding:"gte=0"`
	FiberG              float64     `json:"fiber_g" binding:"gte=0"`
	SugarG              float64     `json:"sugar_g" binding:"gte=0"`
	SaturatedFatG       float64     `json:"saturated_fat_g" binding:"gte=0"`
	SodiumMg            float64     `json:"sodium_mg" binding:"gte=0"`
	PotassiumMg         float64     `json:"potassium_mg" binding:"gte=0"`
	CholesterolMg       float64     `json:"cholesterol_mg" binding:"gte=0"`
	AdditionalNutrients NutrientMap `json:"additional_nutrients" binding:"omitempty,dive,gte=0"`
	ServingSize         *float64    `json:"serving_size" binding:"omitempty,gt=0"`
	ServingUnit         Unit        `json:"serving_unit" binding:"omitempty,oneof=serving g ml piece"`
	GramsPerMl          *float64    `json:"grams_per_ml" binding:"omitempty,gt=0"`
}

// ToFood builds a Food from the payload, applying defaults for omitted serving metadata
func (in FoodCreate) ToFood() Food {
	food := Food{
		Name: in.Name,
		Nutrients: Nutrients{
			Calories:      in.Calories,
			ProteinG:      in.ProteinG,
			CarbsG:        in.CarbsG,
			FatG:          in.FatG,
			FiberG:        in.FiberG,
			SugarG:        in.SugarG,
			SaturatedFatG: in.SaturatedFatG,
			SodiumMg:      in.SodiumMg,
			PotassiumMg:   in.PotassiumMg,
			CholesterolMg: in.CholesterolMg,
		},
		AdditionalNutrients: in.AdditionalNutrients.Clone(),
		ServingSize:         1.0,
		ServingUnit:         in.ServingUnit.OrDefault(),
		GramsPerMl:          in.GramsPerMl,
	}
	if in.ServingSize != nil {
		food.ServingSize = *in.ServingSize
	}
	return food
}

// FoodPatch is a partial update; nil fields are left untouched
type FoodPatch struct {
	Name                *string     `json:"name" binding:"omitempty,min=1,max=120"`
	Calories            *int        `json:"calories" binding:"omitempty,gte=0"`
	ProteinG            *float64    `json:"protein_g" binding:"omitempty,gte=0"`
	CarbsG              *float64    `json:"carbs_g" binding:"omitempty,gte=0"`
	FatG                *float64    `json:"fat_g" binding:"omitempty,gte=0"`
	FiberG              *float64    `json:"fiber_g" binding:"omitempty,gte=0"`
	SugarG              *float64    `json:"sugar_g" binding:"omitempty,gte=0"`
	SaturatedFatG       *float64    `json:"saturated_fat_g" binding:"omitempty,gte=0"`
	SodiumMg            *float64    `json:"sodium_mg" binding:"omitempty,gte=0"`
	PotassiumMg         *float64    `json:"potassium_mg" binding:"omitempty,gte=0"`
	CholesterolMg       *float64    `json:"cholesterol_mg" binding:"omitempty,gte=0"`
	AdditionalNutrients NutrientMap `json:"additional_nutrients" binding:"omitempty,dive,gte=0"`
	ServingSize         *float64    `json:"serving_size" binding:"omitempty,gt=0"`
	ServingUnit         *Unit       `json:"serving_unit" binding:"omitempty,oneof=serving g ml piece"`
	GramsPerMl          *float64    `json:"grams_per_ml" binding:"omitempty,gt=0"`
}

// Apply copies every set field of p onto f
func (p FoodPatch) Apply(f *Food) {
	setIfPresent(&f.Name, p.Name)
	setIfPresent(&f.Calories, p.Calories)
	setIfPresent(&f.ProteinG, p.ProteinG)
	setIfPresent(&f.CarbsG, p.CarbsG)
	setIfPresent(&f.FatG, p.FatG)
	setIfPresent(&f.FiberG, p.FiberG)
	setIfPresent(&f.SugarG, p.SugarG)
	setIfPresent(&f.SaturatedFatG, p.SaturatedFatG)
	setIfPresent(&f.SodiumMg, p.SodiumMg)
	setIfPresent(&f.PotassiumMg, p.PotassiumMg)
	setIfPresent(&f.CholesterolMg, p.CholesterolMg)
	setIfPresent(&f.ServingSize, p.ServingSize)
	setIfPresent(&f.ServingUnit, p.ServingUnit)
	if p.AdditionalNutrients != nil {
		f.AdditionalNutrients = p.AdditionalNutrients.Clone()
	}
	if p.GramsPerMl != nil {
		density := *p.GramsPerMl
		f.GramsPerMl = &density
	}
}

func setIfPresent[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
