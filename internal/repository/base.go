// Package repository provides data access layer implementations for the application.
package repository

import (
	"errors"

	"tribune/internal/models"

	"gorm.io/gorm"
)

// translateError reclassifies storage-layer failures into the API error
// taxonomy. This is the single boundary where raw gorm/driver errors are
// handled; already-typed errors pass through untouched.
func translateError(err error) error {
	var apiErr *models.APIError
	switch {
	case err == nil:
		return nil
	case errors.As(err, &apiErr):
		return err
	case errors.Is(err, gorm.ErrRecordNotFound):
		return models.NewNotFoundError()
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return models.NewNotFoundError()
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return models.NewBadRequestError()
	case errors.Is(err, gorm.ErrInvalidData),
		errors.Is(err, gorm.ErrInvalidValue),
		errors.Is(err, gorm.ErrInvalidValueOfLength):
		return models.NewBadRequestError()
	default:
		return models.NewInternalError(err)
	}
}
