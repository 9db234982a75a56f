package usecase

import (
	"context"

	"github.com/google/uuid"

	"ratesmart/internal/domain/entity"
)

// BusinessUsecase defines business profile operations.
type BusinessUsecase interface {
	Get(ctx context.Context, id uuid.UUID) (*entity.Business, error)
	List(ctx context.Context) ([]*entity.Business, error)

	// Me returns the business behind a business principal.
	Me(ctx context.Context, caller Principal) (*entity.Business, error)

	// Update applies a partial update. Only the owner or an admin may update.
	Update(ctx context.Context, caller Principal, id uuid.UUID, update entity.BusinessUpdate) (*entity.Business, error)

	// Delete removes the business and everything it owns.
	Delete(ctx context.Context, caller Principal, id uuid.UUID) error

	// ReviewQR renders the QR code pointing customers to the review form.
	ReviewQR(ctx context.Context, id uuid.UUID) ([]byte, error)
}
