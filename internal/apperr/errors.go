// Package apperr defines the error kinds shared by the data-access layers.
package apperr

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	// ErrValidation marks malformed input or a violated constraint on write
	ErrValidation = errors.New("validation error")
	// ErrNotFound marks a write addressed to an id that has no row
	ErrNotFound = errors.New("not found")
	// ErrStore marks any other failure executing a statement
	ErrStore = errors.New("store error")
)

// Validation builds an ErrValidation with a formatted detail
func Validation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// NotFound builds an ErrNotFound for the named entity
func NotFound(entity string, id uint) error {
	return fmt.Errorf("%w: %s %d", ErrNotFound, entity, id)
}

// FromGorm classifies a GORM error. Duplicate keys are validation errors,
// missing records are not-found, everything else is a store error.
func FromGorm(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %s: duplicate key: %v", ErrValidation, op, err)
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%w: %s: %v", ErrNotFound, op, err)
	default:
		return fmt.Errorf("%w: %s: %v", ErrStore, op, err)
	}
}

func IsValidation(err error) bool { return errors.Is(err, ErrValidation) }

func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }
