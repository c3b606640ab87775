package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"skillswap/internal/delivery/api/response"
	"skillswap/internal/domain/entity"
	"skillswap/internal/infra/geocode"
	"skillswap/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	formatGeoJSON   = "geojson"
	maxAddressBytes = 1024
)

// GeoHandlerParams holds dependencies for GeoHandler, injected by Fx.
type GeoHandlerParams struct {
	fx.In

	GeoUC  usecase.GeoUsecase
	Logger *slog.Logger
}

// GeoHandler serves the public resolver endpoints.
type GeoHandler struct {
	geoUC  usecase.GeoUsecase
	logger *slog.Logger
}

// NewGeoHandler is the constructor for GeoHandler
func NewGeoHandler(params GeoHandlerParams) *GeoHandler {
	return &GeoHandler{
		geoUC:  params.GeoUC,
		logger: params.Logger,
	}
}

// DirectionsRequest represents the request body for a directions link
type DirectionsRequest struct {
	From *entity.Location `json:"from" validate:"required"`
	To   *entity.Location `json:"to" validate:"required"`
}

// GetCurrentLocation returns the caller's position, or the fallback position.
func (h *GeoHandler) GetCurrentLocation(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.geoUC.GetCurrentLocation(c.Request().Context()))
}

// Geocode resolves the address query parameter.
func (h *GeoHandler) Geocode(c echo.Context) error {
	address := c.QueryParam("address")
	if len(address) > maxAddressBytes {
		address = address[:maxAddressBytes]
	}

	return response.Success(c, http.StatusOK, h.geoUC.GeocodeAddress(c.Request().Context(), address))
}

// Distance returns the great-circle distance between two query coordinates.
func (h *GeoHandler) Distance(c echo.Context) error {
	a, b, err := coordinatePair(c)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, map[string]float64{
		"distance_km": h.geoUC.CalculateDistance(a, b),
	})
}

// Midpoint returns meetup suggestions between two query coordinates.
// With format=geojson the suggestions and the midpoint are returned as a FeatureCollection.
func (h *GeoHandler) Midpoint(c echo.Context) error {
	a, b, err := coordinatePair(c)
	if err != nil {
		return err
	}

	suggestions := h.geoUC.FindMidpointLocations(a, b)

	if strings.EqualFold(c.QueryParam("format"), formatGeoJSON) {
		fc := geocode.FeatureCollection(suggestions)
		fc.Append(geocode.MidpointFeature(a, b))

		body, err := fc.MarshalJSON()
		if err != nil {
			return errors.Wrap(err, "failed to encode suggestions as GeoJSON")
		}

		return response.GeoJSON(c, body)
	}

	return response.Success(c, http.StatusOK, suggestions)
}

// Popular returns curated places for the city query parameter.
func (h *GeoHandler) Popular(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.geoUC.GetPopularLocations(c.QueryParam("city")))
}

// Format renders a location as display text and a map link.
func (h *GeoHandler) Format(c echo.Context) error {
	var loc entity.Location
	if err := bindAndValidate(c, &loc); err != nil {
		return err
	}
	if err := validateLocation(&loc, "location"); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, h.geoUC.DescribeLocation(&loc))
}

// Directions returns a directions link between two locations.
func (h *GeoHandler) Directions(c echo.Context) error {
	var req DirectionsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if err := validateLocation(req.From, "from"); err != nil {
		return err
	}
	if err := validateLocation(req.To, "to"); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"url": h.geoUC.GetDirectionsURL(req.From, req.To),
	})
}

// MapQR returns a PNG QR code of the location's map link.
func (h *GeoHandler) MapQR(c echo.Context) error {
	var loc entity.Location
	if err := bindAndValidate(c, &loc); err != nil {
		return err
	}
	if err := validateLocation(&loc, "location"); err != nil {
		return err
	}

	png, err := h.geoUC.GenerateMapQR(&loc)
	if err != nil {
		return errors.Wrap(err, "failed to generate map QR code")
	}

	return response.PNG(c, png)
}

func coordinatePair(c echo.Context) (entity.Coordinate, entity.Coordinate, error) {
	a, err := queryCoordinate(c, "lat1", "lng1")
	if err != nil {
		return entity.Coordinate{}, entity.Coordinate{}, err
	}
	b, err := queryCoordinate(c, "lat2", "lng2")
	if err != nil {
		return entity.Coordinate{}, entity.Coordinate{}, err
	}

	return a, b, nil
}
