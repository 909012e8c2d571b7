// Package repository holds the gorm-backed food and recipe stores.
package repository

import (
	"github.com/franciscosanchezn/gin-nutrition-api/internal/models"
	"gorm.io/gorm"
)

// FoodRepository stores foods keyed by id and unique name
type FoodRepository struct {
	db *gorm.DB
}

// NewFoodRepository creates a FoodRepository on db, which may be a transaction
func NewFoodRepository(db *gorm.DB) *FoodRepository {
	return &FoodRepository{db: db}
}

func (r *FoodRepository) Create(food *models.Food) error {
	return translate(r.db.Create(food).Error, "create food")
}

func (r *FoodRepository) GetByID(id uint) (*models.Food, error) {
	var food models.Food
	if err := r.db.First(&food, id).Error; err != nil {
		return nil, translate(err, "get food")
	}
	return &food, nil
}

func (r *FoodRepository) GetByName(name string) (*models.Food, error) {
	var food models.Food
	if err := r.db.Where("name = ?", name).First(&food).Error; err != nil {
		return nil, translate(err, "get food by name")
	}
	return &food, nil
}

// FindByIDs returns the foods that exist among ids; missing ids are not an error
func (r *FoodRepository) FindByIDs(ids []uint) ([]models.Food, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var foods []models.Food
	if err := r.db.Where("id IN ?", ids).Find(&foods).Error; err != nil {
		return nil, translate(err, "find foods")
	}
	return foods, nil
}

func (r *FoodRepository) List(limit, offset int) ([]models.Food, error) {
	var foods []models.Food
	if err := r.db.Order("id").Limit(limit).Offset(offset).Find(&foods).Error; err != nil {
		return nil, translate(err, "list foods")
	}
	return foods, nil
}

func (r *FoodRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Food{}).Count(&count).Error
	return count, translate(err, "count foods")
}

func (r *FoodRepository) Save(food *models.Food) error {
	return translate(r.db.Save(food).Error, "save food")
}

// Delete removes the food and reports whether it existed. Foods referenced by
// any recipe item are never removed; ErrReferentialConflict is returned instead.
func (r *FoodRepository) Delete(id uint) (bool, error) {
	var refs int64
	if err := r.db.Model(&models.RecipeItem{}).Where("food_id = ?", id).Count(&refs).Error; err != nil {
		return false, translate(err, "count food references")
	}
	if refs > 0 {
		return false, translate(ErrReferentialConflict, "delete food")
	}

	result := r.db.Delete(&models.Food{}, id)
	if result.Error != nil {
		return false, translate(result.Error, "delete food")
	}
	return result.RowsAffected > 0, nil
}
