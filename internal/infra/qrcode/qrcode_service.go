package qrcode

import (
	"strings"

	"skillswap/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

// maxContentBytes keeps map links well below the capacity of a medium-level QR code.
const maxContentBytes = 2048

const defaultSize = 256

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	// Set error correction level
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

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateMapQR generates a PNG QR code that opens the given map link
func (s *qrcodeService) GenerateMapQR(mapURL string) ([]byte, error) {
	mapURL = strings.TrimSpace(mapURL)
	if mapURL == "" {
		return nil, errors.New("map URL is empty")
	}
	if len(mapURL) > maxContentBytes {
		return nil, errors.Errorf("map URL too long for QR code: %d bytes", len(mapURL))
	}

	qrCode, err := qrcode.New(mapURL, s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}
