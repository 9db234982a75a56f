// Package qrcode renders QR codes that send customers to a business's review form.
package qrcode

import (
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"

	"ratesmart/config"
	"ratesmart/internal/domain/service"
)

const (
	defaultSize    = 256
	reviewPath     = "/review"
	businessParam  = "business"
	defaultBaseURL = "http://localhost:3000"
)

type qrcodeService struct {
	baseURL              string
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a QR code service that links to baseURL.
func NewQRCodeService(baseURL string, size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch strings.ToUpper(errorCorrectionLevel) {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if size <= 0 {
		size = defaultSize
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &qrcodeService{
		baseURL:              strings.TrimRight(baseURL, "/"),
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// NewQRCodeServiceFromConfig wires the service from the qrcode and web sections.
func NewQRCodeServiceFromConfig(cfg *config.Config) service.QRCodeService {
	var (
		baseURL string
		size    int
		level   string
	)
	if cfg.Web != nil {
		baseURL = cfg.Web.PublicBaseURL
	}
	if cfg.QRCode != nil {
		size = cfg.QRCode.Size
		level = cfg.QRCode.ErrorCorrectionLevel
	}

	return NewQRCodeService(baseURL, size, level)
}

// GenerateReviewQR encodes the review form URL preselected to the business.
func (s *qrcodeService) GenerateReviewQR(businessID uuid.UUID) ([]byte, error) {
	qrCode, err := qrcode.New(s.reviewURL(businessID), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

func (s *qrcodeService) reviewURL(businessID uuid.UUID) string {
	q := url.Values{}
	q.Set(businessParam, businessID.String())

	return s.baseURL + reviewPath + "?" + q.Encode()
}
