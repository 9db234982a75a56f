package service

import (
	"github.com/google/uuid"
)

// QRCodeService renders QR codes that lead customers to a business's review page.
type QRCodeService interface {
	// GenerateReviewQR encodes the review form URL of the business as a PNG.
	GenerateReviewQR(businessID uuid.UUID) ([]byte, error)
}
