package postgres

import (
	"strings"
	"testing"
	"time"

	"skillswap/internal/domain/entity"
	domainerrors "skillswap/internal/domain/errors"
	"skillswap/internal/domain/repository"
	"skillswap/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func TestLocationMapper_RoundTrip(t *testing.T) {
	lat, lng := 12.9716, 77.5946
	now := time.Now().UTC().Truncate(time.Second)
	loc := &entity.Location{
		ID:        uuid.New(),
		OwnerID:   uuid.New(),
		Name:      "Cubbon Park",
		Address:   "Kasturba Road",
		City:      "Bangalore",
		State:     "Karnataka",
		Country:   "India",
		Latitude:  &lat,
		Longitude: &lng,
		Category:  entity.CategoryPark,
		IsPublic:  true,
		IsPrimary: true,
		CreatedAt: &now,
		UpdatedAt: &now,
	}

	m := fromLocationDomain(loc)
	assert.Equal(t, "park", m.Category)
	assert.Equal(t, now, m.CreatedAt)

	back := toLocationDomain(m)
	assert.Equal(t, loc, back)
}

func TestLocationMapper_Unresolved(t *testing.T) {
	m := &model.LocationModel{ID: uuid.New(), Name: "Home", Category: "home"}

	loc := toLocationDomain(m)
	require.NotNil(t, loc)
	assert.False(t, loc.IsResolved())
	assert.Equal(t, entity.CategoryHome, loc.Category)

	assert.Nil(t, toLocationDomain(nil))
	assert.Nil(t, fromLocationDomain(nil))
}

func TestTranslateWriteError(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(t *testing.T, got error)
	}{
		{
			name: "Duplicate primary",
			err:  errors.Wrap(gorm.ErrDuplicatedKey, "insert"),
			check: func(t *testing.T, got error) {
				assert.ErrorIs(t, got, repository.ErrPrimaryLocationConflict)
			},
		},
		{
			name: "SQLSTATE unique violation",
			err:  errors.New(`ERROR: duplicate key value violates unique constraint "idx_locations_primary_owner" (SQLSTATE 23505)`),
			check: func(t *testing.T, got error) {
				assert.ErrorIs(t, got, repository.ErrPrimaryLocationConflict)
			},
		},
		{
			name: "Not null",
			err:  errors.New(`null value in column "name" violates not-null constraint (SQLSTATE 23502)`),
			check: func(t *testing.T, got error) {
				var appErr domainerrors.AppError
				require.ErrorAs(t, got, &appErr)
				assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
			},
		},
		{
			name: "Other",
			err:  errors.New("connection reset by peer"),
			check: func(t *testing.T, got error) {
				var appErr domainerrors.AppError
				require.ErrorAs(t, got, &appErr)
				assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, translateWriteError(tt.err, "failed to create location"))
		})
	}
}

func TestNearestFirst(t *testing.T) {
	t.Run("scales longitude by latitude", func(t *testing.T) {
		order := nearestFirst(orb.Point{72.8777, 60})

		expr, ok := order.Expression.(clause.Expr)
		require.True(t, ok)
		assert.Contains(t, expr.SQL, "POWER(latitude - ?, 2)")
		assert.True(t, strings.HasSuffix(expr.SQL, ", id"))
		require.Len(t, expr.Vars, 3)
		assert.Equal(t, 60.0, expr.Vars[0])
		assert.Equal(t, 72.8777, expr.Vars[1])
		assert.InDelta(t, 0.5, expr.Vars[2], 1e-9)
	})

	t.Run("no scaling at the equator", func(t *testing.T) {
		expr, ok := nearestFirst(orb.Point{10, 0}).Expression.(clause.Expr)
		require.True(t, ok)
		assert.InDelta(t, 1.0, expr.Vars[2], 1e-9)
	})
}
