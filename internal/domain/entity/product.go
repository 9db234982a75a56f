package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product belongs to exactly one business and is the subject of reviews.
type Product struct {
	ID           uuid.UUID
	BusinessID   uuid.UUID
	BusinessName string // Read-only, joined from the owning business.
	Name         string
	CreatedAt    time.Time
}
