package models

import (
	"time"
)

// Recipe is a named collection of food quantities. Nutrients and
// AdditionalNutrients carry totals for the whole recipe and are always
// derived from Items; ManualNutrients holds caller-provided additions
// that are merged into AdditionalNutrients on every recompute.
type Recipe struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	Name        string  `json:"name" gorm:"size:160;uniqueIndex;not null"`
	Servings    float64 `json:"servings" gorm:"not null;default:1"`
	ServingUnit Unit    `json:"serving_unit" gorm:"size:16;not null;default:serving"`

	Nutrients           `gorm:"embedded"`
	AdditionalNutrients NutrientMap `json:"additional_nutrients" gorm:"serializer:json;type:text"`
	ManualNutrients     NutrientMap `json:"-" gorm:"serializer:json;type:text"`
	PerServing          NutrientMap `json:"per_serving" gorm:"-"`

	Items []RecipeItem `json:"items" gorm:"constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// RecipeItem is one line of a recipe. It never exists without its Recipe, and
// the Food it references cannot be deleted while the item exists.
type RecipeItem struct {
	ID       uint    `json:"id" gorm:"primaryKey"`
	RecipeID uint    `json:"-" gorm:"not null;index"`
	FoodID   uint    `json:"food_id" gorm:"not null;index"`
	Food     *Food   `json:"-" gorm:"constraint:OnDelete:RESTRICT"`
	Quantity float64 `json:"quantity" gorm:"not null;default:1"`
	Unit     Unit    `json:"unit" gorm:"size:16;not null;default:serving"`
}

// RecipeItemCreate is the payload for a single recipe line
type RecipeItemCreate struct {
	FoodID   uint    `json:"food_id" binding:"required,gte=1"`
	Quantity float64 `json:"quantity" binding:"required,gt=0"`
	Unit     Unit    `json:"unit" binding:"omitempty,oneof=serving g ml piece"`
}

// ToItem converts the payload into an unsaved RecipeItem
func (in RecipeItemCreate) ToItem() RecipeItem {
	return RecipeItem{
		FoodID:   in.FoodID,
		Quantity: in.Quantity,
		Unit:     in.Unit.OrDefault(),
	}
}

// RecipeCreate is the payload accepted when creating a recipe
type RecipeCreate struct {
	Name                string             `json:"name" binding:"required,min=1,max=160"`
	AdditionalNutrients NutrientMap        `json:"additional_nutrients" binding:"omitempty,dive,gte=0"`
	Servings            *float64           `json:"servings" binding:"omitempty,gt=0"`
	ServingUnit         Unit               `json:"serving_unit" binding:"omitempty,oneof=serving g ml piece"`
	Items               []RecipeItemCreate `json:"items" binding:"omitempty,dive"`
}

// ToRecipe builds a Recipe without items, applying defaults
func (in RecipeCreate) ToRecipe() Recipe {
	recipe := Recipe{
		Name:            in.Name,
		Servings:        1.0,
		ServingUnit:     in.ServingUnit.OrDefault(),
		ManualNutrients: in.AdditionalNutrients.Clone(),
	}
	if in.Servings != nil {
		recipe.Servings = *in.Servings
	}
	return recipe
}

// RecipePatch is a partial update of recipe fields; items are managed separately
type RecipePatch struct {
	Name                *string     `json:"name" binding:"omitempty,min=1,max=160"`
	AdditionalNutrients NutrientMap `json:"additional_nutrients" binding:"omitempty,dive,gte=0"`
	Servings            *float64    `json:"servings" binding:"omitempty,gt=0"`
	ServingUnit         *Unit       `json:"serving_unit" binding:"omitempty,oneof=serving g ml piece"`
}

// Apply copies every set field of p onto r. AdditionalNutrients replaces the
// manual overrides, it does not touch derived totals.
func (p RecipePatch) Apply(r *Recipe) {
	setIfPresent(&r.Name, p.Name)
	setIfPresent(&r.Servings, p.Servings)
	setIfPresent(&r.ServingUnit, p.ServingUnit)
	if p.AdditionalNutrients != nil {
		r.ManualNutrients = p.AdditionalNutrients.Clone()
	}
}

// ItemQuantityUpdate changes the quantity of an existing recipe item
type ItemQuantityUpdate struct {
	Quantity float64 `json:"quantity" form:"quantity" binding:"required,gt=0"`
}
