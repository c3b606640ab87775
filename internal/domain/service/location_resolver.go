package service

import (
	"context"

	"skillswap/internal/domain/entity"
	"skillswap/internal/errors"
)

// ErrGeolocationUnavailable is returned by a LocationProvider that has no way to obtain a fix.
var ErrGeolocationUnavailable = errors.New("geolocation capability unavailable")

// LocationResolver is the static-table geocoding heuristic.
// No method fails: every path degrades to a documented fallback.
type LocationResolver interface {
	// GeocodeAddress resolves free text to a coordinate, tiered city > state > country.
	GeocodeAddress(ctx context.Context, address string) *entity.GeocodeResult

	// CalculateDistance returns the great-circle distance in kilometres.
	CalculateDistance(a, b entity.Coordinate) float64

	// FindMidpointLocations returns synthetic meetup suggestions around the midpoint of a and b.
	FindMidpointLocations(a, b entity.Coordinate) []*entity.Location

	// GetPopularLocations returns curated places for known metros, or generic placeholders.
	GetPopularLocations(city string) []*entity.Location

	FormatLocationDisplay(location *entity.Location) string
	GetMapURL(location *entity.Location) string
	GetDirectionsURL(from, to *entity.Location) string

	// PrimaryCentroid is the default coordinate used whenever nothing better is known.
	PrimaryCentroid() entity.Coordinate
}

// LocationProvider acquires the caller's current position.
// Implementations should honour ctx cancellation; callers bound the wait regardless.
type LocationProvider interface {
	Acquire(ctx context.Context) (*entity.Position, error)
}

type clientIPKey struct{}

// WithClientIP attaches the caller's network address for providers that locate by IP.
func WithClientIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, clientIPKey{}, ip)
}

// ClientIPFromContext returns the address set by WithClientIP, or "".
func ClientIPFromContext(ctx context.Context) string {
	ip, _ := ctx.Value(clientIPKey{}).(string)

	return ip
}
