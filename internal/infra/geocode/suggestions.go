package geocode

import (
	"fmt"
	"strings"

	"skillswap/internal/domain/entity"

	"github.com/paulmach/orb"
)

const midpointDescription = "Suggested meetup spot near the midpoint, not a verified venue"

// FindMidpointLocations averages the two coordinates, buckets the midpoint into a metro
// box and returns one synthetic candidate per suggestion template.
func (r *resolver) FindMidpointLocations(a, b entity.Coordinate) []*entity.Location {
	mid := orb.Point{
		(a.Longitude + b.Longitude) / 2,
		(a.Latitude + b.Latitude) / 2,
	}

	city, state := centralLocation, ""
	if metro, ok := bucketMetro(mid); ok {
		city, state = metro.city, metro.state
	}

	out := make([]*entity.Location, 0, len(suggestionTemplates))
	for _, t := range suggestionTemplates {
		loc := &entity.Location{
			Name:        fmt.Sprintf(t.name, city),
			Address:     fmt.Sprintf(t.address, city),
			City:        city,
			State:       state,
			Country:     r.primary.name,
			Category:    t.category,
			IsPublic:    true,
			Description: midpointDescription,
		}
		loc.SetCoordinate(entity.Coordinate{
			Latitude:  mid.Lat() + t.dLat,
			Longitude: mid.Lon() + t.dLng,
		})
		out = append(out, loc)
	}

	return out
}

func bucketMetro(p orb.Point) (metroRegion, bool) {
	for _, m := range metroRegions {
		if m.bound.Contains(p) {
			return m, true
		}
	}

	return metroRegion{}, false
}

// GetPopularLocations returns the curated landmarks of a known metro (aliases accepted)
// or five generic placeholders named after the input.
func (r *resolver) GetPopularLocations(city string) []*entity.Location {
	text := newSearchText(city)

	for code, matcher := range regionMatchers {
		entry, ok := matcher.matchCity(text)
		if !ok {
			continue
		}
		places, ok := landmarks[entry.name]
		if !ok {
			continue
		}

		country, _ := lookupCountry(code)
		out := make([]*entity.Location, 0, len(places))
		for _, p := range places {
			loc := &entity.Location{
				Name:        p.name,
				Address:     p.address,
				City:        entry.name,
				District:    entry.district,
				State:       entry.state,
				Country:     country.name,
				Category:    p.category,
				IsPublic:    true,
				Description: p.description,
			}
			loc.SetCoordinate(entity.CoordinateFromPoint(p.point))
			out = append(out, loc)
		}

		return out
	}

	name := strings.TrimSpace(city)
	if name == "" {
		name = centralLocation
	}

	out := make([]*entity.Location, 0, len(fallbackTemplates))
	for _, t := range fallbackTemplates {
		out = append(out, &entity.Location{
			Name:     fmt.Sprintf(t.name, name),
			Address:  fmt.Sprintf(t.address, name),
			City:     name,
			Category: t.category,
			IsPublic: true,
		})
	}

	return out
}
