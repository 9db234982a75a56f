package usecase

import (
	"context"

	"github.com/google/uuid"

	"ratesmart/internal/domain/entity"
)

// CreateProductInput defines a new product for a business.
type CreateProductInput struct {
	BusinessID uuid.UUID
	Name       string
}

// UpdateProductInput is a partial product update. Nil fields are unchanged.
type UpdateProductInput struct {
	BusinessID *uuid.UUID
	Name       *string
}

// ProductUsecase defines product catalogue operations.
type ProductUsecase interface {
	List(ctx context.Context, businessID uuid.UUID) ([]*entity.Product, error)
	Get(ctx context.Context, caller Principal, id uuid.UUID) (*entity.Product, error)
	Create(ctx context.Context, caller Principal, input CreateProductInput) (*entity.Product, error)
	Update(ctx context.Context, caller Principal, id uuid.UUID, input UpdateProductInput) (*entity.Product, error)
	Delete(ctx context.Context, caller Principal, id uuid.UUID) error
}
