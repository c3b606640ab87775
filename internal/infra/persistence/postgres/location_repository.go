package postgres

import (
	"context"
	"math"
	"time"

	"skillswap/internal/domain/entity"
	domainerrors "skillswap/internal/domain/errors"
	"skillswap/internal/domain/repository"
	"skillswap/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// locationRepository implements the domain.LocationRepository interface.
type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository is the constructor for locationRepository.
func NewLocationRepository(db *gorm.DB) repository.LocationRepository {
	return &locationRepository{db: db}
}

// CreateLocation persists a new location for an owner.
func (repo *locationRepository) CreateLocation(ctx context.Context, location *entity.Location) error {
	locationM := fromLocationDomain(location)

	if err := repo.db.WithContext(ctx).Create(locationM).Error; err != nil {
		return translateWriteError(err, "failed to create location")
	}

	// Update the entity with generated values
	location.ID = locationM.ID
	location.CreatedAt = &locationM.CreatedAt
	location.UpdatedAt = &locationM.UpdatedAt

	return nil
}

// FindLocationByID retrieves a location by its unique ID.
func (repo *locationRepository) FindLocationByID(ctx context.Context, id uuid.UUID) (*entity.Location, error) {
	var locationM model.LocationModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&locationM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find location by ID")
	}

	return toLocationDomain(&locationM), nil
}

// FindLocationsByOwner retrieves all locations for a specific owner.
func (repo *locationRepository) FindLocationsByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Location, error) {
	var locationModels []*model.LocationModel
	err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("is_primary DESC").
		Order("created_at ASC").
		Find(&locationModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find locations by owner")
	}

	return toLocationDomains(locationModels), nil
}

// FindPrimaryLocationByOwner retrieves the primary location for a specific owner.
func (repo *locationRepository) FindPrimaryLocationByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Location, error) {
	var locationM model.LocationModel
	err := repo.db.WithContext(ctx).
		Where("owner_id = ? AND is_primary = ?", ownerID, true).
		First(&locationM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find primary location by owner")
	}

	return toLocationDomain(&locationM), nil
}

// UpdateLocation updates an existing location record.
func (repo *locationRepository) UpdateLocation(ctx context.Context, location *entity.Location) error {
	locationM := fromLocationDomain(location)

	if err := repo.db.WithContext(ctx).Save(locationM).Error; err != nil {
		return translateWriteError(err, "failed to update location")
	}

	location.UpdatedAt = &locationM.UpdatedAt

	return nil
}

// DeleteLocation removes a location by its ID.
func (repo *locationRepository) DeleteLocation(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.LocationModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete location")
	}

	// If no rows were affected, it means the location was not found.
	if result.RowsAffected == 0 {
		return repository.ErrLocationNotFound
	}

	return nil
}

// CountLocationsByOwner returns the total count of locations for a specific owner.
func (repo *locationRepository) CountLocationsByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.LocationModel{}).
		Where("owner_id = ?", ownerID).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count locations by owner")
	}

	return count, nil
}

// LockOwnerLocations takes a transaction-scoped advisory lock keyed by the owner.
func (repo *locationRepository) LockOwnerLocations(ctx context.Context, ownerID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Exec("SELECT pg_advisory_xact_lock(hashtextextended(?, 0))", ownerID.String()).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to lock owner locations")
	}

	return nil
}

// ClearPrimaryLocation unsets the primary flag on the owner's other locations.
func (repo *locationRepository) ClearPrimaryLocation(ctx context.Context, ownerID, exceptID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Model(&model.LocationModel{}).
		Where("owner_id = ? AND is_primary = ? AND id <> ?", ownerID, true, exceptID).
		Updates(map[string]any{
			"is_primary": false,
			"updated_at": time.Now(),
		}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear primary location")
	}

	return nil
}

// FindPublicLocationsInBound is the SQL prefilter for nearby searches.
func (repo *locationRepository) FindPublicLocationsInBound(ctx context.Context, bound orb.Bound, limit int) ([]*entity.Location, error) {
	var locationModels []*model.LocationModel
	err := repo.db.WithContext(ctx).
		Where("is_public = ?", true).
		Where("latitude IS NOT NULL AND longitude IS NOT NULL").
		Where("latitude BETWEEN ? AND ?", bound.Min.Lat(), bound.Max.Lat()).
		Where("longitude BETWEEN ? AND ?", bound.Min.Lon(), bound.Max.Lon()).
		Order(nearestFirst(bound.Center())).
		Limit(limit).
		Find(&locationModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find public locations in bound")
	}

	return toLocationDomains(locationModels), nil
}

// nearestFirst orders rows by squared planar distance to center, with longitude scaled
// by cos(latitude), and breaks ties by id. The service re-sorts by great-circle distance.
func nearestFirst(center orb.Point) clause.OrderBy {
	lonScale := math.Cos(center.Lat() * math.Pi / 180)

	return clause.OrderBy{Expression: clause.Expr{
		SQL:                "POWER(latitude - ?, 2) + POWER((longitude - ?) * ?, 2), id",
		Vars:               []any{center.Lat(), center.Lon(), lonScale},
		WithoutParentheses: true,
	}}
}

// translateWriteError converts PostgreSQL errors to domain errors.
func translateWriteError(err error, details string) error {
	switch classifyConstraint(err) {
	case constraintUnique:
		// the only unique index besides the primary key is the one-primary-per-owner index
		return repository.ErrPrimaryLocationConflict
	case constraintInput:
		return domainerrors.ErrValidationFailed.WithDetails(details)
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}

// --- Mapper Functions ---

// toLocationDomain converts a GORM LocationModel to a domain Location entity.
func toLocationDomain(data *model.LocationModel) *entity.Location {
	if data == nil {
		return nil
	}

	createdAt, updatedAt := data.CreatedAt, data.UpdatedAt

	return &entity.Location{
		ID:          data.ID,
		OwnerID:     data.OwnerID,
		Name:        data.Name,
		Address:     data.Address,
		City:        data.City,
		District:    data.District,
		State:       data.State,
		Country:     data.Country,
		PostalCode:  data.PostalCode,
		Latitude:    data.Latitude,
		Longitude:   data.Longitude,
		Category:    entity.Category(data.Category),
		IsPublic:    data.IsPublic,
		IsPrimary:   data.IsPrimary,
		Description: data.Description,
		CreatedAt:   &createdAt,
		UpdatedAt:   &updatedAt,
	}
}

func toLocationDomains(data []*model.LocationModel) []*entity.Location {
	locations := make([]*entity.Location, 0, len(data))
	for _, locationM := range data {
		locations = append(locations, toLocationDomain(locationM))
	}

	return locations
}

// fromLocationDomain converts a domain Location entity to a GORM LocationModel.
func fromLocationDomain(data *entity.Location) *model.LocationModel {
	if data == nil {
		return nil
	}

	m := &model.LocationModel{
		ID:          data.ID,
		OwnerID:     data.OwnerID,
		Name:        data.Name,
		Address:     data.Address,
		City:        data.City,
		District:    data.District,
		State:       data.State,
		Country:     data.Country,
		PostalCode:  data.PostalCode,
		Latitude:    data.Latitude,
		Longitude:   data.Longitude,
		Category:    string(data.Category),
		IsPublic:    data.IsPublic,
		IsPrimary:   data.IsPrimary,
		Description: data.Description,
	}
	if data.CreatedAt != nil {
		m.CreatedAt = *data.CreatedAt
	}
	if data.UpdatedAt != nil {
		m.UpdatedAt = *data.UpdatedAt
	}

	return m
}
