package services

import (
	"context"
	"errors"
	"math/rand/v2"

	"github.com/franciscosanchezn/gin-nutrition-api/internal/models"
	"github.com/franciscosanchezn/gin-nutrition-api/internal/repository"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func sample(name string, calories int, n models.Nutrients) models.FoodCreate {
	return models.FoodCreate{
		Name:          name,
		Calories:      calories,
		ProteinG:      n.ProteinG,
		CarbsG:        n.CarbsG,
		FatG:          n.FatG,
		FiberG:        n.FiberG,
		SugarG:        n.SugarG,
		SaturatedFatG: n.SaturatedFatG,
		SodiumMg:      n.SodiumMg,
		PotassiumMg:   n.PotassiumMg,
		CholesterolMg: n.CholesterolMg,
	}
}

// SampleFoods returns the built-in sample foods used for seeding
func SampleFoods() []models.FoodCreate {
	return []models.FoodCreate{
		sample("Apple", 95, models.Nutrients{ProteinG: 0.5, CarbsG: 25, FatG: 0.3, FiberG: 4.4, SugarG: 19}),
		sample("Banana", 105, models.Nutrients{ProteinG: 1.3, CarbsG: 27, FatG: 0.4, FiberG: 3.1, SugarG: 14}),
		sample("Chicken Breast 100g", 165, models.Nutrients{ProteinG: 31, FatG: 3.6, SaturatedFatG: 1.0, SodiumMg: 74}),
		sample("Brown Rice 100g", 111, models.Nutrients{ProteinG: 2.6, CarbsG: 23, FatG: 0.9, FiberG: 1.8}),
		sample("Olive Oil tbsp", 119, models.Nutrients{FatG: 13.5, SaturatedFatG: 2.0}),
		sample("Broccoli 100g", 34, models.Nutrients{ProteinG: 2.8, CarbsG: 7, FatG: 0.4, FiberG: 2.6, PotassiumMg: 316}),
	}
}

// SeedService inserts sample foods
type SeedService interface {
	// SeedFoods inserts up to count shuffled sample foods, skipping names that already exist
	SeedFoods(ctx context.Context, count int) ([]models.Food, error)
	// SeedIfEmpty seeds every sample food when no food exists yet and returns how many were added
	SeedIfEmpty(ctx context.Context) (int, error)
}

type seedService struct {
	db      *gorm.DB
	shuffle func(n int, swap func(i, j int))
}

// NewSeedService creates a new instance of SeedService
func NewSeedService(db *gorm.DB) SeedService {
	return &seedService{db: db, shuffle: rand.Shuffle}
}

func (s *seedService) SeedFoods(ctx context.Context, count int) ([]models.Food, error) {
	samples := SampleFoods()
	if count <= 0 {
		return []models.Food{}, nil
	}
	choices := make([]models.FoodCreate, 0, count+len(samples))
	for len(choices) < count {
		choices = append(choices, samples...)
	}
	s.shuffle(len(choices), func(i, j int) { choices[i], choices[j] = choices[j], choices[i] })

	created := []models.Food{}
	for _, in := range choices[:count] {
		food := in.ToFood()
		err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			return createFood(repository.NewFoodRepository(tx), &food)
		})
		if errors.Is(err, ErrDuplicate) {
			continue
		}
		if err != nil {
			return nil, err
		}
		created = append(created, food)
	}
	log.WithFields(logrus.Fields{"requested": count, "created": len(created)}).Info("Sample foods seeded")
	return created, nil
}

func (s *seedService) SeedIfEmpty(ctx context.Context) (int, error) {
	count, err := repository.NewFoodRepository(s.db.WithContext(ctx)).Count()
	if err != nil {
		return 0, err
	}
	if count > 0 {
		log.WithField("foods", count).Info("Database already seeded")
		return 0, nil
	}
	created, err := s.SeedFoods(ctx, len(SampleFoods()))
	return len(created), err
}
