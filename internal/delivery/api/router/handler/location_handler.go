package handler

import (
	"log/slog"
	"net/http"

	"skillswap/internal/delivery/api/middleware"
	"skillswap/internal/delivery/api/response"
	domainerrors "skillswap/internal/domain/errors"
	"skillswap/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LocationHandlerParams holds dependencies for LocationHandler, injected by Fx.
type LocationHandlerParams struct {
	fx.In

	LocationUC usecase.LocationUsecase
	Logger     *slog.Logger
}

// LocationHandler holds dependencies for saved location handlers
type LocationHandler struct {
	locationUC usecase.LocationUsecase
	logger     *slog.Logger
}

// NewLocationHandler is the constructor for LocationHandler
func NewLocationHandler(params LocationHandlerParams) *LocationHandler {
	return &LocationHandler{
		locationUC: params.LocationUC,
		logger:     params.Logger,
	}
}

// ListLocations returns the caller's saved locations
func (h *LocationHandler) ListLocations(c echo.Context) error {
	userID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	locations, err := h.locationUC.ListUserLocations(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, locations)
}

// CreateLocation saves a new location for the caller
func (h *LocationHandler) CreateLocation(c echo.Context) error {
	userID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	var input usecase.LocationInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}
	if (input.Latitude == nil) != (input.Longitude == nil) {
		return domainerrors.ErrInvalidCoordinate.WithDetails("latitude and longitude must be given together")
	}

	location, err := h.locationUC.AddUserLocation(c.Request().Context(), userID, &input)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, location)
}

// UpdateLocation replaces one of the caller's locations
func (h *LocationHandler) UpdateLocation(c echo.Context) error {
	userID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	locationID, err := parseUUID(c.Param("id"), "id")
	if err != nil {
		return err
	}

	var input usecase.LocationInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}
	if (input.Latitude == nil) != (input.Longitude == nil) {
		return domainerrors.ErrInvalidCoordinate.WithDetails("latitude and longitude must be given together")
	}

	location, err := h.locationUC.UpdateUserLocation(c.Request().Context(), userID, locationID, &input)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, location)
}

// DeleteLocation removes one of the caller's locations
func (h *LocationHandler) DeleteLocation(c echo.Context) error {
	userID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	locationID, err := parseUUID(c.Param("id"), "id")
	if err != nil {
		return err
	}

	if err := h.locationUC.DeleteUserLocation(c.Request().Context(), userID, locationID); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// Nearby lists public locations around lat/lng, nearest first
func (h *LocationHandler) Nearby(c echo.Context) error {
	center, err := queryCoordinate(c, "lat", "lng")
	if err != nil {
		return err
	}

	radiusKm, err := queryFloat(c, "radius_km")
	if err != nil {
		return err
	}

	nearby, err := h.locationUC.FindNearbyPublicLocations(c.Request().Context(), center, radiusKm)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nearby)
}

func (h *LocationHandler) getUserID(c echo.Context) (uuid.UUID, error) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return uuid.Nil, domainerrors.ErrUnauthorized
	}

	return userID, nil
}
