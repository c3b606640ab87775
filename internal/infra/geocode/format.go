package geocode

import (
	"net/url"
	"strconv"
	"strings"

	"skillswap/internal/domain/entity"
)

// FormatLocationDisplay joins the non-blank address fields with ", " in the order of the
// location's country profile (the primary profile when the country is unknown).
func (r *resolver) FormatLocationDisplay(location *entity.Location) string {
	if location == nil {
		return ""
	}

	order := r.profileFor(location.Country).addressOrder
	parts := make([]string, 0, len(order))
	for _, field := range order {
		if v := strings.TrimSpace(fieldValue(location, field)); v != "" {
			parts = append(parts, v)
		}
	}

	return strings.Join(parts, ", ")
}

// GetMapURL prefers a coordinate query with the country zoom level and falls back to a
// text search over the formatted address.
func (r *resolver) GetMapURL(location *entity.Location) string {
	if location == nil {
		return r.mapBaseURL
	}

	if c, ok := location.Coordinate(); ok {
		q := url.Values{}
		q.Set("q", latLng(c))
		q.Set("z", strconv.Itoa(r.profileFor(location.Country).mapZoom))

		return r.mapBaseURL + "?" + q.Encode()
	}

	q := url.Values{}
	q.Set("api", "1")
	q.Set("query", r.FormatLocationDisplay(location))

	return r.mapBaseURL + "/search/?" + q.Encode()
}

// GetDirectionsURL builds a route query; each end uses coordinates when resolved.
func (r *resolver) GetDirectionsURL(from, to *entity.Location) string {
	q := url.Values{}
	q.Set("api", "1")
	q.Set("origin", r.endpoint(from))
	q.Set("destination", r.endpoint(to))

	return r.mapBaseURL + "/dir/?" + q.Encode()
}

func (r *resolver) endpoint(location *entity.Location) string {
	if c, ok := location.Coordinate(); ok {
		return latLng(c)
	}

	return r.FormatLocationDisplay(location)
}

func latLng(c entity.Coordinate) string {
	return strconv.FormatFloat(c.Latitude, 'f', -1, 64) + "," + strconv.FormatFloat(c.Longitude, 'f', -1, 64)
}

func fieldValue(location *entity.Location, field addressField) string {
	switch field {
	case fieldName:
		return location.Name
	case fieldAddress:
		return location.Address
	case fieldDistrict:
		return location.District
	case fieldCity:
		return location.City
	case fieldState:
		return location.State
	case fieldCountry:
		return location.Country
	default:
		return ""
	}
}
