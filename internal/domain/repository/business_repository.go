// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"ratesmart/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrBusinessNotFound is returned when a business lookup has no match.
var ErrBusinessNotFound = errors.New("business not found")

// BusinessRepository defines the standard operations for business persistence.
type BusinessRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Business, error)

	// FindByEmail matches the email case-insensitively.
	FindByEmail(ctx context.Context, email string) (*entity.Business, error)

	List(ctx context.Context) ([]*entity.Business, error)

	Create(ctx context.Context, business *entity.Business) error

	Update(ctx context.Context, business *entity.Business) error

	// Delete removes the business together with its products and their reviews.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteNonStaff removes every business that is not flagged as staff and
	// returns how many rows were deleted.
	DeleteNonStaff(ctx context.Context) (int64, error)
}
