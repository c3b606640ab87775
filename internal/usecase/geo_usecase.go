package usecase

import (
	"context"

	"skillswap/internal/domain/entity"
)

// LocationDisplay is the shareable rendering of a location
type LocationDisplay struct {
	Display string `json:"display"`
	MapURL  string `json:"map_url"`
}

// GeoUsecase exposes the location resolver and current-position acquisition.
// Apart from QR generation none of these operations fail; they degrade to fallbacks.
type GeoUsecase interface {
	// GetCurrentLocation always settles within the configured timeout.
	GetCurrentLocation(ctx context.Context) *entity.Position
	GeocodeAddress(ctx context.Context, address string) *entity.GeocodeResult
	CalculateDistance(a, b entity.Coordinate) float64
	FindMidpointLocations(a, b entity.Coordinate) []*entity.Location
	GetPopularLocations(city string) []*entity.Location
	DescribeLocation(location *entity.Location) *LocationDisplay
	GetDirectionsURL(from, to *entity.Location) string
	GenerateMapQR(location *entity.Location) ([]byte, error)
}
