package model

import (
	"time"

	"github.com/google/uuid"
)

// LocationModel is the GORM-specific struct for the 'locations' table.
// At most one primary location per owner is enforced by a partial unique index.
type LocationModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OwnerID     uuid.UUID `gorm:"type:uuid;not null;index:idx_locations_on_owner;uniqueIndex:idx_locations_primary_owner,where:is_primary = true"`
	Name        string    `gorm:"type:varchar(200);not null"`
	Address     string    `gorm:"type:text;not null;default:''"`
	City        string    `gorm:"type:varchar(100);not null;default:''"`
	District    string    `gorm:"type:varchar(100);not null;default:''"`
	State       string    `gorm:"type:varchar(100);not null;default:''"`
	Country     string    `gorm:"type:varchar(100);not null;default:''"`
	PostalCode  string    `gorm:"type:varchar(20);not null;default:''"`
	Latitude    *float64  `gorm:"type:decimal(10,8);index:idx_locations_on_coordinates"`
	Longitude   *float64  `gorm:"type:decimal(11,8);index:idx_locations_on_coordinates"`
	Category    string    `gorm:"type:varchar(20);not null;default:'other'"`
	IsPublic    bool      `gorm:"not null;default:false;index"`
	IsPrimary   bool      `gorm:"not null;default:false"`
	Description string    `gorm:"type:text;not null;default:''"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (LocationModel) TableName() string {
	return "locations"
}
