package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/franciscosanchezn/gin-nutrition-api/internal/models"
	"github.com/franciscosanchezn/gin-nutrition-api/internal/nutrition"
	"github.com/franciscosanchezn/gin-nutrition-api/internal/repository"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// RecipeService manages recipes and their items. Every recipe it returns has
// totals and per-serving values recomputed from the current items and foods.
type RecipeService interface {
	// CreateRecipe stores a recipe with its initial items.
	// ErrDuplicate if the name is taken, ErrInvalidReference if an item's food is missing.
	CreateRecipe(ctx context.Context, in models.RecipeCreate) (models.Recipe, error)
	// GetRecipe retrieves a recipe by its ID
	GetRecipe(ctx context.Context, id uint) (models.Recipe, error)
	// ListRecipes returns recipes ordered by id
	ListRecipes(ctx context.Context, limit, offset int) ([]models.Recipe, error)
	// UpdateRecipe applies a partial update of the recipe's own fields
	UpdateRecipe(ctx context.Context, id uint, patch models.RecipePatch) (models.Recipe, error)
	// DeleteRecipe removes a recipe with all of its items and reports whether it existed
	DeleteRecipe(ctx context.Context, id uint) (bool, error)
	// AddItem appends an item. A missing recipe and a missing food both match ErrNotFound.
	AddItem(ctx context.Context, recipeID uint, in models.RecipeItemCreate) (models.Recipe, error)
	// UpdateItemQuantity changes the quantity of an item that belongs to the recipe
	UpdateItemQuantity(ctx context.Context, recipeID, itemID uint, quantity float64) (models.Recipe, error)
	// RemoveItem deletes an item that belongs to the recipe
	RemoveItem(ctx context.Context, recipeID, itemID uint) error
}

type recipeService struct {
	db *gorm.DB
}

// NewRecipeService creates a new instance of RecipeService
func NewRecipeService(db *gorm.DB) RecipeService {
	return &recipeService{db: db}
}

// recompute refreshes the derived totals of recipe from its loaded items
func recompute(foods *repository.FoodRepository, recipe *models.Recipe) error {
	ids := make([]uint, 0, len(recipe.Items))
	for _, item := range recipe.Items {
		ids = append(ids, item.FoodID)
	}
	found, err := foods.FindByIDs(ids)
	if err != nil {
		return err
	}

	skipped := nutrition.Recalculate(recipe, recipe.Items, nutrition.NewFoodIndex(found))
	if len(skipped) > 0 {
		log.WithFields(logrus.Fields{
			"recipe_id": recipe.ID,
			"item_ids":  skipped,
		}).Warn("Recipe items reference missing foods and were skipped")
	}
	recipe.PerServing = nutrition.PerServing(recipe)
	return nil
}

// mutate runs fn in a transaction, then reloads the recipe, recomputes it and
// stores the totals snapshot. Any failure rolls the whole unit back.
func (s *recipeService) mutate(ctx context.Context, recipeID uint, fn func(foods *repository.FoodRepository, recipes *repository.RecipeRepository, recipe *models.Recipe) error) (models.Recipe, error) {
	var out *models.Recipe
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		foods := repository.NewFoodRepository(tx)
		recipes := repository.NewRecipeRepository(tx)

		recipe, err := recipes.GetByID(recipeID)
		if err != nil {
			return err
		}
		if err := fn(foods, recipes, recipe); err != nil {
			return err
		}
		if out, err = recipes.GetByID(recipeID); err != nil {
			return err
		}
		if err := recompute(foods, out); err != nil {
			return err
		}
		return recipes.Save(out)
	})
	if err != nil {
		return models.Recipe{}, err
	}
	return *out, nil
}

func addItem(foods *repository.FoodRepository, recipes *repository.RecipeRepository, recipeID uint, in models.RecipeItemCreate) error {
	if _, err := foods.GetByID(in.FoodID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return fmt.Errorf("food %d: %w", in.FoodID, ErrInvalidReference)
		}
		return err
	}
	item := in.ToItem()
	item.RecipeID = recipeID
	return recipes.AddItem(&item)
}

func ensureRecipeNameFree(recipes *repository.RecipeRepository, name string, selfID uint) error {
	existing, err := recipes.GetByName(name)
	switch {
	case errors.Is(err, ErrNotFound):
		return nil
	case err != nil:
		return err
	case existing.ID != selfID:
		return fmt.Errorf("recipe %q: %w", name, ErrDuplicate)
	}
	return nil
}

func (s *recipeService) CreateRecipe(ctx context.Context, in models.RecipeCreate) (models.Recipe, error) {
	recipe := in.ToRecipe()
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		foods := repository.NewFoodRepository(tx)
		recipes := repository.NewRecipeRepository(tx)

		if err := ensureRecipeNameFree(recipes, recipe.Name, 0); err != nil {
			return err
		}
		if err := recipes.Create(&recipe); err != nil {
			return err
		}
		for _, item := range in.Items {
			if err := addItem(foods, recipes, recipe.ID, item); err != nil {
				return err
			}
		}
		items, err := recipes.Items(recipe.ID)
		if err != nil {
			return err
		}
		recipe.Items = items
		if err := recompute(foods, &recipe); err != nil {
			return err
		}
		return recipes.Save(&recipe)
	})
	if err != nil {
		return models.Recipe{}, err
	}
	log.WithFields(logrus.Fields{
		"recipe_id": recipe.ID,
		"name":      recipe.Name,
		"items":     len(recipe.Items),
	}).Info("Recipe created")
	return recipe, nil
}

func (s *recipeService) GetRecipe(ctx context.Context, id uint) (models.Recipe, error) {
	db := s.db.WithContext(ctx)
	recipe, err := repository.NewRecipeRepository(db).GetByID(id)
	if err != nil {
		return models.Recipe{}, err
	}
	if err := recompute(repository.NewFoodRepository(db), recipe); err != nil {
		return models.Recipe{}, err
	}
	return *recipe, nil
}

func (s *recipeService) ListRecipes(ctx context.Context, limit, offset int) ([]models.Recipe, error) {
	limit, offset = normalizePage(limit, offset)
	db := s.db.WithContext(ctx)
	recipes, err := repository.NewRecipeRepository(db).List(limit, offset)
	if err != nil {
		return nil, err
	}
	foods := repository.NewFoodRepository(db)
	for i := range recipes {
		if err := recompute(foods, &recipes[i]); err != nil {
			return nil, err
		}
	}
	return recipes, nil
}

func (s *recipeService) UpdateRecipe(ctx context.Context, id uint, patch models.RecipePatch) (models.Recipe, error) {
	recipe, err := s.mutate(ctx, id, func(_ *repository.FoodRepository, recipes *repository.RecipeRepository, recipe *models.Recipe) error {
		if patch.Name != nil && *patch.Name != recipe.Name {
			if err := ensureRecipeNameFree(recipes, *patch.Name, recipe.ID); err != nil {
				return err
			}
		}
		patch.Apply(recipe)
		return recipes.Save(recipe)
	})
	if err != nil {
		return models.Recipe{}, err
	}
	log.WithField("recipe_id", id).Info("Recipe updated")
	return recipe, nil
}

func (s *recipeService) DeleteRecipe(ctx context.Context, id uint) (bool, error) {
	var deleted bool
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		deleted, err = repository.NewRecipeRepository(tx).Delete(id)
		return err
	})
	if err != nil {
		return false, err
	}
	log.WithFields(logrus.Fields{"recipe_id": id, "deleted": deleted}).Info("Recipe delete processed")
	return deleted, nil
}

func (s *recipeService) AddItem(ctx context.Context, recipeID uint, in models.RecipeItemCreate) (models.Recipe, error) {
	recipe, err := s.mutate(ctx, recipeID, func(foods *repository.FoodRepository, recipes *repository.RecipeRepository, recipe *models.Recipe) error {
		return addItem(foods, recipes, recipe.ID, in)
	})
	if err != nil {
		return models.Recipe{}, err
	}
	log.WithFields(logrus.Fields{"recipe_id": recipeID, "food_id": in.FoodID}).Info("Recipe item added")
	return recipe, nil
}

func (s *recipeService) UpdateItemQuantity(ctx context.Context, recipeID, itemID uint, quantity float64) (models.Recipe, error) {
	recipe, err := s.mutate(ctx, recipeID, func(_ *repository.FoodRepository, recipes *repository.RecipeRepository, recipe *models.Recipe) error {
		item, err := recipes.GetItem(recipe.ID, itemID)
		if err != nil {
			return err
		}
		return recipes.UpdateItemQuantity(item, quantity)
	})
	if err != nil {
		return models.Recipe{}, err
	}
	log.WithFields(logrus.Fields{"recipe_id": recipeID, "item_id": itemID}).Info("Recipe item quantity updated")
	return recipe, nil
}

func (s *recipeService) RemoveItem(ctx context.Context, recipeID, itemID uint) error {
	_, err := s.mutate(ctx, recipeID, func(_ *repository.FoodRepository, recipes *repository.RecipeRepository, recipe *models.Recipe) error {
		item, err := recipes.GetItem(recipe.ID, itemID)
		if err != nil {
			return err
		}
		return recipes.RemoveItem(item)
	})
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{"recipe_id": recipeID, "item_id": itemID}).Info("Recipe item removed")
	return nil
}
