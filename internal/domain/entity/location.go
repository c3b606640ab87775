// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category is the kind of place a Location describes.
type Category string

const (
	CategoryHome      Category = "home"
	CategoryWork      Category = "work"
	CategoryCafe      Category = "cafe"
	CategoryLibrary   Category = "library"
	CategoryCoworking Category = "coworking"
	CategoryPark      Category = "park"
	CategoryOther     Category = "other"
)

// Categories lists every valid Category.
var Categories = []Category{
	CategoryHome,
	CategoryWork,
	CategoryCafe,
	CategoryLibrary,
	CategoryCoworking,
	CategoryPark,
	CategoryOther,
}

// IsValid reports whether c is one of the known categories.
func (c Category) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}

	return false
}

// Location is a meetup spot or a user-saved place.
// A Location is unresolved until both Latitude and Longitude are set; resolved
// coordinates are the centroid of the best-matched geographic unit, not a street position.
type Location struct {
	ID          uuid.UUID  `json:"id,omitzero"`       // Assigned by storage, zero for suggestions.
	OwnerID     uuid.UUID  `json:"owner_id,omitzero"` // The user who saved the place.
	Name        string     `json:"name"`
	Address     string     `json:"address"`
	City        string     `json:"city"`
	District    string     `json:"district,omitempty"`
	State       string     `json:"state,omitempty"`
	Country     string     `json:"country"`
	PostalCode  string     `json:"postal_code,omitempty"`
	Latitude    *float64   `json:"latitude,omitempty"`
	Longitude   *float64   `json:"longitude,omitempty"`
	Category    Category   `json:"category"`
	IsPublic    bool       `json:"is_public"`
	IsPrimary   bool       `json:"is_primary"`
	Description string     `json:"description,omitempty"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

// IsResolved reports whether the location carries coordinates.
func (l *Location) IsResolved() bool {
	return l != nil && l.Latitude != nil && l.Longitude != nil
}

// Coordinate returns the resolved coordinate of the location.
func (l *Location) Coordinate() (Coordinate, bool) {
	if !l.IsResolved() {
		return Coordinate{}, false
	}

	return Coordinate{Latitude: *l.Latitude, Longitude: *l.Longitude}, true
}

// SetCoordinate marks the location as resolved at c.
func (l *Location) SetCoordinate(c Coordinate) {
	lat, lng := c.Latitude, c.Longitude
	l.Latitude = &lat
	l.Longitude = &lng
}
