package geocode

import (
	"math"

	"skillswap/internal/domain/entity"

	"github.com/paulmach/orb"
)

// EarthRadiusKm is the mean Earth radius used for great-circle distances.
const EarthRadiusKm = 6371.0

// CalculateDistance returns the haversine distance between a and b in kilometres.
// Out-of-range input is not rejected; it yields a defined but meaningless value.
func (r *resolver) CalculateDistance(a, b entity.Coordinate) float64 {
	return HaversineKm(a.Point(), b.Point())
}

// HaversineKm is the great-circle distance between two lng/lat points in kilometres.
func HaversineKm(p1, p2 orb.Point) float64 {
	lat1 := p1.Lat() * math.Pi / 180
	lat2 := p2.Lat() * math.Pi / 180
	deltaLat := (p2.Lat() - p1.Lat()) * math.Pi / 180
	deltaLng := (p2.Lon() - p1.Lon()) * math.Pi / 180

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(deltaLng/2)*math.Sin(deltaLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}
