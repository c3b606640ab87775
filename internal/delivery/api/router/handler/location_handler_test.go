package handler

import (
	"net/http"
	"testing"

	"skillswap/internal/domain/entity"
	domainerrors "skillswap/internal/domain/errors"
	mockUsecase "skillswap/internal/mocks/usecase"
	"skillswap/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newLocationTestEcho(t *testing.T, userID uuid.UUID) (*echo.Echo, *mockUsecase.MockLocationUsecase) {
	locationUC := mockUsecase.NewMockLocationUsecase(t)
	h := NewLocationHandler(LocationHandlerParams{LocationUC: locationUC, Logger: discardLogger})

	e, authenticate := newTestEcho(t, userID)
	g := e.Group("/api/v1/locations", authenticate)
	g.GET("", h.ListLocations)
	g.POST("", h.CreateLocation)
	g.GET("/nearby", h.Nearby)
	g.PUT("/:id", h.UpdateLocation)
	g.DELETE("/:id", h.DeleteLocation)

	return e, locationUC
}

func TestLocationHandler_RequiresAuthentication(t *testing.T) {
	e, _ := newLocationTestEcho(t, uuid.New())

	rec := doRequest(e, http.MethodGet, "/api/v1/locations", "", false)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "UNAUTHORIZED", errorCode(t, rec))
}

func TestLocationHandler_ListLocations(t *testing.T) {
	userID := uuid.New()
	e, locationUC := newLocationTestEcho(t, userID)

	locationUC.EXPECT().ListUserLocations(mock.Anything, userID).Return([]*entity.Location{
		{ID: uuid.New(), OwnerID: userID, Name: "Home", IsPrimary: true},
	}, nil)

	rec := doRequest(e, http.MethodGet, "/api/v1/locations", "", true)

	require.Equal(t, http.StatusOK, rec.Code)
	var got []*entity.Location
	decodeData(t, rec, &got)
	require.Len(t, got, 1)
	assert.Equal(t, "Home", got[0].Name)
}

func TestLocationHandler_CreateLocation(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name       string
		body       string
		setup      func(uc *mockUsecase.MockLocationUsecase)
		wantStatus int
		wantCode   string
	}{
		{
			name: "created",
			body: `{"name":"Home","city":"Pune","latitude":18.5204,"longitude":73.8567,"category":"home","is_primary":true}`,
			setup: func(uc *mockUsecase.MockLocationUsecase) {
				uc.EXPECT().AddUserLocation(mock.Anything, userID, mock.MatchedBy(func(in *usecase.LocationInput) bool {
					return in.Name == "Home" && in.IsPrimary && in.Category == entity.CategoryHome
				})).Return(&entity.Location{ID: uuid.New(), OwnerID: userID, Name: "Home"}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "missing name",
			body:       `{"city":"Pune"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
		},
		{
			name:       "unknown category",
			body:       `{"name":"Home","category":"castle"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
		},
		{
			name:       "latitude without longitude",
			body:       `{"name":"Home","latitude":18.5}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_COORDINATE",
		},
		{
			name: "limit reached",
			body: `{"name":"Gym"}`,
			setup: func(uc *mockUsecase.MockLocationUsecase) {
				uc.EXPECT().AddUserLocation(mock.Anything, userID, mock.Anything).
					Return(nil, errors.Wrap(domainerrors.ErrLocationLimitReached, "user already has 10 locations"))
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   "LOCATION_LIMIT_REACHED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, locationUC := newLocationTestEcho(t, userID)
			if tt.setup != nil {
				tt.setup(locationUC)
			}

			rec := doRequest(e, http.MethodPost, "/api/v1/locations", tt.body, true)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, errorCode(t, rec))
			}
		})
	}
}

func TestLocationHandler_UpdateLocation(t *testing.T) {
	userID := uuid.New()
	locationID := uuid.New()

	t.Run("ownership violation", func(t *testing.T) {
		e, locationUC := newLocationTestEcho(t, userID)
		locationUC.EXPECT().UpdateUserLocation(mock.Anything, userID, locationID, mock.Anything).
			Return(nil, errors.Wrap(domainerrors.ErrLocationOwnershipViolation, "location belongs to another user"))

		rec := doRequest(e, http.MethodPut, "/api/v1/locations/"+locationID.String(), `{"name":"Office"}`, true)

		require.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "LOCATION_OWNERSHIP_VIOLATION", errorCode(t, rec))
	})

	t.Run("bad id", func(t *testing.T) {
		e, _ := newLocationTestEcho(t, userID)

		rec := doRequest(e, http.MethodPut, "/api/v1/locations/not-a-uuid", `{"name":"Office"}`, true)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", errorCode(t, rec))
	})

	t.Run("updated", func(t *testing.T) {
		e, locationUC := newLocationTestEcho(t, userID)
		locationUC.EXPECT().UpdateUserLocation(mock.Anything, userID, locationID, mock.Anything).
			Return(&entity.Location{ID: locationID, OwnerID: userID, Name: "Office"}, nil)

		rec := doRequest(e, http.MethodPut, "/api/v1/locations/"+locationID.String(), `{"name":"Office"}`, true)

		require.Equal(t, http.StatusOK, rec.Code)
		var got entity.Location
		decodeData(t, rec, &got)
		assert.Equal(t, locationID, got.ID)
	})
}

func TestLocationHandler_DeleteLocation(t *testing.T) {
	userID := uuid.New()
	locationID := uuid.New()

	t.Run("deleted", func(t *testing.T) {
		e, locationUC := newLocationTestEcho(t, userID)
		locationUC.EXPECT().DeleteUserLocation(mock.Anything, userID, locationID).Return(nil)

		rec := doRequest(e, http.MethodDelete, "/api/v1/locations/"+locationID.String(), "", true)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("not found", func(t *testing.T) {
		e, locationUC := newLocationTestEcho(t, userID)
		locationUC.EXPECT().DeleteUserLocation(mock.Anything, userID, locationID).
			Return(errors.Wrap(domainerrors.ErrLocationNotFound, "location not found"))

		rec := doRequest(e, http.MethodDelete, "/api/v1/locations/"+locationID.String(), "", true)

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "LOCATION_NOT_FOUND", errorCode(t, rec))
	})
}

func TestLocationHandler_Nearby(t *testing.T) {
	userID := uuid.New()
	center := entity.Coordinate{Latitude: 12.9716, Longitude: 77.5946}

	t.Run("results", func(t *testing.T) {
		e, locationUC := newLocationTestEcho(t, userID)
		locationUC.EXPECT().FindNearbyPublicLocations(mock.Anything, center, 2.5).Return([]*usecase.NearbyLocation{
			{Location: &entity.Location{Name: "Cubbon Park"}, DistanceKm: 0.6},
		}, nil)

		rec := doRequest(e, http.MethodGet, "/api/v1/locations/nearby?lat=12.9716&lng=77.5946&radius_km=2.5", "", true)

		require.Equal(t, http.StatusOK, rec.Code)
		var got []map[string]any
		decodeData(t, rec, &got)
		require.Len(t, got, 1)
		assert.Equal(t, "Cubbon Park", got[0]["name"])
		assert.InDelta(t, 0.6, got[0]["distance_km"], 1e-9)
	})

	t.Run("default radius", func(t *testing.T) {
		e, locationUC := newLocationTestEcho(t, userID)
		locationUC.EXPECT().FindNearbyPublicLocations(mock.Anything, center, 0.0).Return([]*usecase.NearbyLocation{}, nil)

		rec := doRequest(e, http.MethodGet, "/api/v1/locations/nearby?lat=12.9716&lng=77.5946", "", true)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("bad radius", func(t *testing.T) {
		e, _ := newLocationTestEcho(t, userID)

		rec := doRequest(e, http.MethodGet, "/api/v1/locations/nearby?lat=12.9716&lng=77.5946&radius_km=far", "", true)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", errorCode(t, rec))
	})
}
