package repository

import (
	"context"
	"errors"

	"ratesmart/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrReviewNotFound is returned when a review lookup has no match.
var ErrReviewNotFound = errors.New("review not found")

// ReviewFilter narrows a review listing. Zero values mean no filter.
type ReviewFilter struct {
	BusinessID uuid.UUID
	ProductID  uuid.UUID
}

// ReviewRepository persists reviews. Listings are ordered newest first and
// carry the product and business names joined in.
type ReviewRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)
	List(ctx context.Context, filter ReviewFilter) ([]*entity.Review, error)
	Create(ctx context.Context, review *entity.Review) error
	Update(ctx context.Context, review *entity.Review) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteAll(ctx context.Context) (int64, error)
}
