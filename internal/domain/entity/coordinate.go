package entity

import (
	"math"

	"github.com/paulmach/orb"
)

// Coordinate is a WGS84 latitude/longitude pair in degrees.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Point converts the coordinate to an orb point (lng, lat order).
func (c Coordinate) Point() orb.Point {
	return orb.Point{c.Longitude, c.Latitude}
}

// IsValid reports whether the coordinate is finite and within WGS84 ranges.
func (c Coordinate) IsValid() bool {
	if math.IsNaN(c.Latitude) || math.IsNaN(c.Longitude) {
		return false
	}

	return c.Latitude >= -90 && c.Latitude <= 90 && c.Longitude >= -180 && c.Longitude <= 180
}

// CoordinateFromPoint converts an orb point back to a Coordinate.
func CoordinateFromPoint(p orb.Point) Coordinate {
	return Coordinate{Latitude: p.Lat(), Longitude: p.Lon()}
}

// PositionSource records where a Position came from.
type PositionSource string

const (
	PositionSourceDevice   PositionSource = "device"
	PositionSourceIP       PositionSource = "ip"
	PositionSourceStatic   PositionSource = "static"
	PositionSourceCache    PositionSource = "cache"
	PositionSourceFallback PositionSource = "fallback"
)

// Position is an acquired current location.
// A large AccuracyMeters together with IsFallback means no real fix was obtained.
type Position struct {
	Coordinate
	AccuracyMeters float64        `json:"accuracy_meters"`
	Source         PositionSource `json:"source"`
	IsFallback     bool           `json:"is_fallback"`
}

// ResolutionTier is the precision at which an address was matched.
type ResolutionTier string

const (
	TierCity    ResolutionTier = "city"
	TierState   ResolutionTier = "state"
	TierCountry ResolutionTier = "country"
)

// GeocodeResult is the outcome of resolving a free-text address.
type GeocodeResult struct {
	Coordinate
	FormattedAddress string         `json:"formatted_address"`
	Tier             ResolutionTier `json:"tier"`
	CountryCode      string         `json:"country_code"`
	Country          string         `json:"country"`
	City             string         `json:"city,omitempty"`
	District         string         `json:"district,omitempty"`
	State            string         `json:"state,omitempty"`
}
