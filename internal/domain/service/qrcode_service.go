package service

// QRCodeService defines the interface for QR code generation
type QRCodeService interface {
	// GenerateMapQR encodes a map link as a PNG QR code
	GenerateMapQR(mapURL string) ([]byte, error)
}
