package handler

import (
	"skillswap/internal/domain/entity"
	domainerrors "skillswap/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// bindAndValidate decodes the request body into req and runs its validate tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("request body is malformed")
	}
	if err := c.Validate(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}

// queryCoordinate reads a required coordinate pair from the query string.
// NaN, infinities and out-of-range values are rejected.
func queryCoordinate(c echo.Context, latKey, lngKey string) (entity.Coordinate, error) {
	var coord entity.Coordinate
	err := echo.QueryParamsBinder(c).
		MustFloat64(latKey, &coord.Latitude).
		MustFloat64(lngKey, &coord.Longitude).
		BindError()
	if err != nil {
		return entity.Coordinate{}, domainerrors.ErrInvalidCoordinate.WithDetails(queryErrorDetails(err))
	}

	if !coord.IsValid() {
		return entity.Coordinate{}, domainerrors.ErrInvalidCoordinate.WithDetails(latKey + "/" + lngKey + " out of range")
	}

	return coord, nil
}

// queryFloat reads an optional float; a missing value yields 0.
func queryFloat(c echo.Context, key string) (float64, error) {
	var v float64
	if err := echo.QueryParamsBinder(c).Float64(key, &v).BindError(); err != nil {
		return 0, domainerrors.ErrValidationFailed.WithDetails(queryErrorDetails(err))
	}

	return v, nil
}

// queryErrorDetails tells a missing parameter from a malformed one.
func queryErrorDetails(err error) string {
	var bindErr *echo.BindingError
	if !errors.As(err, &bindErr) {
		return "invalid query parameter"
	}
	if len(bindErr.Values) == 0 || bindErr.Values[0] == "" {
		return bindErr.Field + " is required"
	}

	return bindErr.Field + " must be a number"
}

func parseUUID(raw, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails(name + " must be a UUID")
	}

	return id, nil
}

// validateLocation rejects half-resolved or out-of-range locations in request bodies.
func validateLocation(loc *entity.Location, name string) error {
	if loc == nil {
		return domainerrors.ErrValidationFailed.WithDetails(name + " is required")
	}
	if (loc.Latitude == nil) != (loc.Longitude == nil) {
		return domainerrors.ErrInvalidCoordinate.WithDetails(name + " must carry both latitude and longitude or neither")
	}
	if coord, ok := loc.Coordinate(); ok && !coord.IsValid() {
		return domainerrors.ErrInvalidCoordinate.WithDetails(name + " coordinate out of range")
	}

	return nil
}
