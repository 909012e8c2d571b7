package repository

import (
	"github.com/franciscosanchezn/gin-nutrition-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RecipeRepository stores recipes and the items they own
type RecipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository creates a RecipeRepository on db, which may be a transaction
func NewRecipeRepository(db *gorm.DB) *RecipeRepository {
	return &RecipeRepository{db: db}
}

func orderedItems(db *gorm.DB) *gorm.DB {
	return db.Order("recipe_items.id")
}

// Create inserts the recipe row only; items are added with AddItem
func (r *RecipeRepository) Create(recipe *models.Recipe) error {
	return translate(r.db.Omit(clause.Associations).Create(recipe).Error, "create recipe")
}

// GetByID loads the recipe with its items ordered by id
func (r *RecipeRepository) GetByID(id uint) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := r.db.Preload("Items", orderedItems).First(&recipe, id).Error; err != nil {
		return nil, translate(err, "get recipe")
	}
	return &recipe, nil
}

func (r *RecipeRepository) GetByName(name string) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := r.db.Where("name = ?", name).First(&recipe).Error; err != nil {
		return nil, translate(err, "get recipe by name")
	}
	return &recipe, nil
}

func (r *RecipeRepository) List(limit, offset int) ([]models.Recipe, error) {
	var recipes []models.Recipe
	err := r.db.Preload("Items", orderedItems).Order("id").Limit(limit).Offset(offset).Find(&recipes).Error
	if err != nil {
		return nil, translate(err, "list recipes")
	}
	return recipes, nil
}

// Save writes the recipe columns, including the totals snapshot, without touching items
func (r *RecipeRepository) Save(recipe *models.Recipe) error {
	return translate(r.db.Omit(clause.Associations).Save(recipe).Error, "save recipe")
}

// Delete removes the recipe and every item it owns
func (r *RecipeRepository) Delete(id uint) (bool, error) {
	if err := r.db.Where("recipe_id = ?", id).Delete(&models.RecipeItem{}).Error; err != nil {
		return false, translate(err, "delete recipe items")
	}
	result := r.db.Delete(&models.Recipe{}, id)
	if result.Error != nil {
		return false, translate(result.Error, "delete recipe")
	}
	return result.RowsAffected > 0, nil
}

func (r *RecipeRepository) AddItem(item *models.RecipeItem) error {
	return translate(r.db.Omit(clause.Associations).Create(item).Error, "add recipe item")
}

// GetItem returns the item only when it belongs to recipeID
func (r *RecipeRepository) GetItem(recipeID, itemID uint) (*models.RecipeItem, error) {
	var item models.RecipeItem
	if err := r.db.Where("id = ? AND recipe_id = ?", itemID, recipeID).First(&item).Error; err != nil {
		return nil, translate(err, "get recipe item")
	}
	return &item, nil
}

func (r *RecipeRepository) UpdateItemQuantity(item *models.RecipeItem, quantity float64) error {
	if err := r.db.Model(item).Update("quantity", quantity).Error; err != nil {
		return translate(err, "update recipe item")
	}
	item.Quantity = quantity
	return nil
}

func (r *RecipeRepository) RemoveItem(item *models.RecipeItem) error {
	return translate(r.db.Delete(item).Error, "remove recipe item")
}

// Items returns the items of a recipe ordered by id
func (r *RecipeRepository) Items(recipeID uint) ([]models.RecipeItem, error) {
	var items []models.RecipeItem
	if err := orderedItems(r.db).Where("recipe_id = ?", recipeID).Find(&items).Error; err != nil {
		return nil, translate(err, "list recipe items")
	}
	return items, nil
}
