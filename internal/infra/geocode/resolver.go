// Package geocode resolves free-text addresses against static reference tables.
// No external geocoding API is called.
package geocode

import (
	"context"
	"log/slog"
	"strings"

	"skillswap/internal/domain/entity"
	"skillswap/internal/domain/service"

	"github.com/pkg/errors"
)

// DefaultMapBaseURL is used when no map service URL is configured.
const DefaultMapBaseURL = "https://www.google.com/maps"

type resolver struct {
	primary    countryProfile
	mapBaseURL string
	logger     *slog.Logger

	// foreignNames holds the names of every non-primary country, longest first.
	foreignNames []phrase
}

// NewResolver creates a resolver whose fallback country is primaryCountry (ISO code or name).
func NewResolver(primaryCountry, mapBaseURL string, logger *slog.Logger) (service.LocationResolver, error) {
	if strings.TrimSpace(primaryCountry) == "" {
		primaryCountry = indiaCode
	}

	primary, ok := lookupCountry(primaryCountry)
	if !ok {
		return nil, errors.Errorf("unsupported primary country: %s", primaryCountry)
	}

	mapBaseURL = strings.TrimRight(strings.TrimSpace(mapBaseURL), "/")
	if mapBaseURL == "" {
		mapBaseURL = DefaultMapBaseURL
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &resolver{
		primary:    primary,
		mapBaseURL: mapBaseURL,
		logger:     logger,
		foreignNames: buildPhrases(len(countries), func(i int) []string {
			if countries[i].code == primary.code {
				return nil
			}

			return countries[i].names
		}),
	}, nil
}

func (r *resolver) PrimaryCentroid() entity.Coordinate {
	return entity.CoordinateFromPoint(r.primary.centroid)
}

// GeocodeAddress detects the country, then tries a city or alias match, then a state
// centroid, then the country centroid. A panic anywhere below is recovered and mapped
// to the primary country centroid.
func (r *resolver) GeocodeAddress(ctx context.Context, address string) (result *entity.GeocodeResult) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.ErrorContext(ctx, "Geocoding failed, using primary country centroid",
				slog.Any("panic", rec),
			)
			result = r.countryResult(address, r.primary)
		}
	}()

	text := newSearchText(address)
	country, detected := r.detectCountry(text)

	if matcher, ok := regionMatchers[country.code]; ok {
		if city, ok := matcher.matchCity(text); ok {
			return &entity.GeocodeResult{
				Coordinate:       entity.CoordinateFromPoint(city.centroid),
				FormattedAddress: joinNonBlank(address, city.district, city.state, country.name),
				Tier:             entity.TierCity,
				CountryCode:      country.code,
				Country:          country.name,
				City:             city.name,
				District:         city.district,
				State:            city.state,
			}
		}

		if state, ok := matcher.matchState(text); ok {
			return &entity.GeocodeResult{
				Coordinate:       entity.CoordinateFromPoint(state.centroid),
				FormattedAddress: joinNonBlank(address, state.name, country.name),
				Tier:             entity.TierState,
				CountryCode:      country.code,
				Country:          country.name,
				State:            state.name,
			}
		}
	}

	if !detected {
		r.logger.DebugContext(ctx, "No country keyword matched, using primary country",
			slog.String("country", r.primary.code),
		)
	}

	return r.countryResult(address, country)
}

// detectCountry runs a fixed sequence and the first hit wins:
//
//  1. non-primary country names, longest first, so "new south wales" beats "wales"
//  2. the primary country's own names
//  3. a city or state from the primary country's region table
//  4. non-primary abbreviations, in table order
//  5. the primary country's abbreviations, address keywords and postal codes
//
// Abbreviations come after primary cities because short tokens like "UK" double as
// Indian state codes. When nothing matches the primary country is returned with detected=false.
func (r *resolver) detectCountry(text searchText) (country countryProfile, detected bool) {
	if i, ok := firstMatch(text, r.foreignNames); ok {
		return countries[i], true
	}
	if text.containsAny(r.primary.names) {
		return r.primary, true
	}

	matcher := regionMatchers[r.primary.code]
	if matcher != nil {
		if _, ok := matcher.matchCity(text); ok {
			return r.primary, true
		}
		if _, ok := matcher.matchState(text); ok {
			return r.primary, true
		}
	}

	for _, c := range countries {
		if c.code != r.primary.code && text.containsAny(c.abbreviations) {
			return c, true
		}
	}

	if text.containsAny(r.primary.abbreviations) {
		return r.primary, true
	}
	if matcher != nil && matcher.mentions(text, r.primary.code) {
		return r.primary, true
	}

	return r.primary, false
}

func (r *resolver) countryResult(address string, country countryProfile) *entity.GeocodeResult {
	return &entity.GeocodeResult{
		Coordinate:       entity.CoordinateFromPoint(country.centroid),
		FormattedAddress: joinNonBlank(address, country.name),
		Tier:             entity.TierCountry,
		CountryCode:      country.code,
		Country:          country.name,
	}
}

// profileFor returns the profile named by a Location's country field, or the primary.
func (r *resolver) profileFor(country string) countryProfile {
	if p, ok := lookupCountry(country); ok {
		return p
	}

	return r.primary
}

func joinNonBlank(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}

	return strings.Join(kept, ", ")
}
