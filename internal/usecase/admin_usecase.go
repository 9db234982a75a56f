package usecase

import "context"

// ResetOutput reports how many rows a system reset removed.
type ResetOutput struct {
	Reviews    int64
	Products   int64
	Businesses int64
}

// AdminUsecase defines moderator operations.
type AdminUsecase interface {
	// Reset deletes all reviews, all products and every non-staff business
	// in one transaction.
	Reset(ctx context.Context, caller Principal) (*ResetOutput, error)
}
