package middleware

import (
	"skillswap/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// ClientIP exposes the caller's address to IP-based location providers.
func ClientIP(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := service.WithClientIP(c.Request().Context(), c.RealIP())
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
