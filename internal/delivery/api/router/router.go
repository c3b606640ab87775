// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"skillswap/internal/delivery/api/middleware"
	"skillswap/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	GeoHandler      *handler.GeoHandler
	LocationHandler *handler.LocationHandler
	MeetupHandler   *handler.MeetupHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	geoHandler      *handler.GeoHandler
	locationHandler *handler.LocationHandler
	meetupHandler   *handler.MeetupHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		geoHandler:      params.GeoHandler,
		locationHandler: params.LocationHandler,
		meetupHandler:   params.MeetupHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")

	// Resolver routes are public
	geoGroup := apiV1.Group("/geo")
	{
		geoGroup.GET("/current", r.geoHandler.GetCurrentLocation)
		geoGroup.GET("/geocode", r.geoHandler.Geocode)
		geoGroup.GET("/distance", r.geoHandler.Distance)
		geoGroup.GET("/midpoint", r.geoHandler.Midpoint)
		geoGroup.GET("/popular", r.geoHandler.Popular)
		geoGroup.POST("/format", r.geoHandler.Format)
		geoGroup.POST("/directions", r.geoHandler.Directions)
		geoGroup.POST("/qr", r.geoHandler.MapQR)
	}

	// Saved location routes
	locationsGroup := apiV1.Group("/locations")
	locationsGroup.Use(r.authMiddleware.Authenticate)
	{
		locationsGroup.GET("", r.locationHandler.ListLocations)
		locationsGroup.POST("", r.locationHandler.CreateLocation)
		locationsGroup.GET("/nearby", r.locationHandler.Nearby)
		locationsGroup.PUT("/:id", r.locationHandler.UpdateLocation)
		locationsGroup.DELETE("/:id", r.locationHandler.DeleteLocation)
	}

	// Meetup routes
	meetupsGroup := apiV1.Group("/meetups")
	meetupsGroup.Use(r.authMiddleware.Authenticate)
	{
		meetupsGroup.GET("/suggestions", r.meetupHandler.Suggestions)
		meetupsGroup.POST("", r.meetupHandler.Propose)
	}
}
