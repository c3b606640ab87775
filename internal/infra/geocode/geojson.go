package geocode

import (
	"skillswap/internal/domain/entity"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// FeatureCollection renders resolved locations as point features. Unresolved
// locations are skipped.
func FeatureCollection(locations []*entity.Location) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, loc := range locations {
		c, ok := loc.Coordinate()
		if !ok {
			continue
		}

		f := geojson.NewFeature(c.Point())
		f.Properties["name"] = loc.Name
		f.Properties["address"] = loc.Address
		f.Properties["city"] = loc.City
		f.Properties["category"] = string(loc.Category)
		if loc.Description != "" {
			f.Properties["description"] = loc.Description
		}
		fc.Append(f)
	}

	return fc
}

// MidpointFeature is the midpoint of a and b as a single point feature.
func MidpointFeature(a, b entity.Coordinate) *geojson.Feature {
	f := geojson.NewFeature(orb.Point{
		(a.Longitude + b.Longitude) / 2,
		(a.Latitude + b.Latitude) / 2,
	})
	f.Properties["kind"] = "midpoint"

	return f
}
