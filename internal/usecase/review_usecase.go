package usecase

import (
	"context"

	"github.com/google/uuid"

	"ratesmart/internal/domain/entity"
)

// CreateReviewInput is a customer's review. Sentiment and fake flag are
// always derived server side.
type CreateReviewInput struct {
	ProductID    uuid.UUID
	CustomerName string
	Text         string
	Rating       int
}

// ReviewListFilter narrows a review listing. Zero values mean no filter.
type ReviewListFilter struct {
	BusinessID uuid.UUID
	ProductID  uuid.UUID
}

// ReviewUsecase defines review operations.
type ReviewUsecase interface {
	List(ctx context.Context, filter ReviewListFilter) ([]*entity.Review, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Review, error)
	Create(ctx context.Context, input CreateReviewInput) (*entity.Review, error)

	// Update lets an admin change any field and the owning business change
	// the reply only.
	Update(ctx context.Context, caller Principal, id uuid.UUID, update entity.ReviewUpdate) (*entity.Review, error)

	// Delete is reserved for the admin.
	Delete(ctx context.Context, caller Principal, id uuid.UUID) error
}
