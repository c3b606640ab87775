// Package response writes the JSON envelope shared by every API endpoint:
// {"data": ..., "meta": {"request_id": ...}} on success and
// {"error": {...}, "meta": {...}} on failure.
package response

import (
	"net/http"

	deliverycontext "skillswap/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

const (
	mimePNG     = "image/png"
	mimeGeoJSON = "application/geo+json"
)

// SuccessResponse defines the structure for successful responses
type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // e.g. "INVALID_COORDINATE"
	Message string `json:"message"`           // User-friendly error message
	Details any    `json:"details,omitempty"` // 4xx only, except 401 and 403
}

type MetaInfo struct {
	RequestID string `json:"request_id"`
}

// Success returns a successful response
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{
		Data: data,
		Meta: meta(c),
	})
}

// Error returns an error response. Details never leave the server for
// server errors or for authentication and authorization failures.
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	if statusCode >= http.StatusInternalServerError ||
		statusCode == http.StatusUnauthorized ||
		statusCode == http.StatusForbidden {
		details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Error: &ErrorInfo{
			Code:    errorCode,
			Message: message,
			Details: details,
		},
		Meta: meta(c),
	})
}

// Unauthorized returns a 401 error
func Unauthorized(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message, nil)
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}

// PNG writes an image/png body
func PNG(c echo.Context, body []byte) error {
	return c.Blob(http.StatusOK, mimePNG, body)
}

// GeoJSON writes an already encoded GeoJSON document without the envelope.
func GeoJSON(c echo.Context, body []byte) error {
	return c.Blob(http.StatusOK, mimeGeoJSON, body)
}

func meta(c echo.Context) *MetaInfo {
	return &MetaInfo{RequestID: deliverycontext.GetRequestID(c)}
}
