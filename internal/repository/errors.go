package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when a food, recipe or recipe item does not exist
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned when a name is already taken
	ErrDuplicate = errors.New("duplicate name")
	// ErrInvalidReference is returned when a recipe item points at a missing food.
	// It matches ErrNotFound with errors.Is.
	ErrInvalidReference = fmt.Errorf("referenced food: %w", ErrNotFound)
	// ErrReferentialConflict is returned when deleting a food still used by recipe items
	ErrReferentialConflict = errors.New("still referenced by recipe items")
)

// translate maps gorm errors onto the store errors, keeping the original in the chain
func translate(err error, op string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%s: %w", op, ErrDuplicate)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%s: %w", op, ErrReferentialConflict)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
