package repository

import (
	"context"
	"errors"

	"ratesmart/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProductNotFound is returned when a product lookup has no match.
var ErrProductNotFound = errors.New("product not found")

// ProductFilter narrows a product listing. Zero values mean no filter.
type ProductFilter struct {
	BusinessID uuid.UUID
}

type ProductRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	List(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)
	Create(ctx context.Context, product *entity.Product) error
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes the product and its reviews.
	Delete(ctx context.Context, id uuid.UUID) error

	DeleteAll(ctx context.Context) (int64, error)
}
