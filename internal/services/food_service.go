package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/franciscosanchezn/gin-nutrition-api/internal/models"
	"github.com/franciscosanchezn/gin-nutrition-api/internal/repository"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// FoodService provides methods to manage foods
type FoodService interface {
	// CreateFood stores a new food; ErrDuplicate if the name is taken
	CreateFood(ctx context.Context, in models.FoodCreate) (models.Food, error)
	// GetFood retrieves a food by its ID
	GetFood(ctx context.Context, id uint) (models.Food, error)
	// ListFoods returns foods ordered by id
	ListFoods(ctx context.Context, limit, offset int) ([]models.Food, error)
	// UpdateFood applies a partial update; ErrNotFound for unknown ids
	UpdateFood(ctx context.Context, id uint, patch models.FoodPatch) (models.Food, error)
	// DeleteFood removes a food and reports whether it existed.
	// Foods used by a recipe item are kept and ErrReferentialConflict is returned.
	DeleteFood(ctx context.Context, id uint) (bool, error)
}

// foodService is the implementation of the FoodService interface
type foodService struct {
	db *gorm.DB
}

// NewFoodService creates a new instance of FoodService
func NewFoodService(db *gorm.DB) FoodService {
	return &foodService{db: db}
}

func (s *foodService) CreateFood(ctx context.Context, in models.FoodCreate) (models.Food, error) {
	food := in.ToFood()
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return createFood(repository.NewFoodRepository(tx), &food)
	})
	if err != nil {
		return models.Food{}, err
	}
	log.WithFields(logrus.Fields{"food_id": food.ID, "name": food.Name}).Info("Food created")
	return food, nil
}

// createFood rejects taken names before inserting
func createFood(foods *repository.FoodRepository, food *models.Food) error {
	if err := ensureFoodNameFree(foods, food.Name, 0); err != nil {
		return err
	}
	return foods.Create(food)
}

func ensureFoodNameFree(foods *repository.FoodRepository, name string, selfID uint) error {
	existing, err := foods.GetByName(name)
	switch {
	case errors.Is(err, ErrNotFound):
		return nil
	case err != nil:
		return err
	case existing.ID != selfID:
		return fmt.Errorf("food %q: %w", name, ErrDuplicate)
	}
	return nil
}

func (s *foodService) GetFood(ctx context.Context, id uint) (models.Food, error) {
	food, err := repository.NewFoodRepository(s.db.WithContext(ctx)).GetByID(id)
	if err != nil {
		return models.Food{}, err
	}
	return *food, nil
}

func (s *foodService) ListFoods(ctx context.Context, limit, offset int) ([]models.Food, error) {
	limit, offset = normalizePage(limit, offset)
	return repository.NewFoodRepository(s.db.WithContext(ctx)).List(limit, offset)
}

func (s *foodService) UpdateFood(ctx context.Context, id uint, patch models.FoodPatch) (models.Food, error) {
	var food *models.Food
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		foods := repository.NewFoodRepository(tx)
		var err error
		if food, err = foods.GetByID(id); err != nil {
			return err
		}
		if patch.Name != nil && *patch.Name != food.Name {
			if err := ensureFoodNameFree(foods, *patch.Name, food.ID); err != nil {
				return err
			}
		}
		patch.Apply(food)
		return foods.Save(food)
	})
	if err != nil {
		return models.Food{}, err
	}
	log.WithField("food_id", id).Info("Food updated")
	return *food, nil
}

func (s *foodService) DeleteFood(ctx context.Context, id uint) (bool, error) {
	var deleted bool
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		deleted, err = repository.NewFoodRepository(tx).Delete(id)
		return err
	})
	if err != nil {
		return false, err
	}
	log.WithFields(logrus.Fields{"food_id": id, "deleted": deleted}).Info("Food delete processed")
	return deleted, nil
}
