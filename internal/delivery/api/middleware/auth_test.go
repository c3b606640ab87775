package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"skillswap/internal/delivery/api/response"
	"skillswap/internal/domain/service"
	mockService "skillswap/internal/mocks/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthMiddleware_Authenticate(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name       string
		header     string
		setup      func(tokenSvc *mockService.MockTokenService)
		wantStatus int
		wantCode   string
	}{
		{
			name:   "valid token",
			header: "Bearer good-token",
			setup: func(tokenSvc *mockService.MockTokenService) {
				tokenSvc.EXPECT().ValidateAccessToken("good-token").Return(&service.Claims{
					Type:             service.TokenTypeAccess,
					RegisteredClaims: jwt.RegisteredClaims{Subject: userID.String()},
				}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing header",
			wantStatus: http.StatusUnauthorized,
			wantCode:   "UNAUTHORIZED",
		},
		{
			name:       "not a bearer token",
			header:     "Basic dXNlcjpwYXNz",
			wantStatus: http.StatusUnauthorized,
			wantCode:   "TOKEN_INVALID",
		},
		{
			name:   "rejected token",
			header: "Bearer expired",
			setup: func(tokenSvc *mockService.MockTokenService) {
				tokenSvc.EXPECT().ValidateAccessToken("expired").Return(nil, errors.New("token is expired"))
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "TOKEN_INVALID",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mockService.NewMockTokenService(t)
			if tt.setup != nil {
				tt.setup(tokenSvc)
			}
			m := NewAuthMiddleware(AuthMiddlewareParams{TokenService: tokenSvc})

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/locations", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var seen uuid.UUID
			err := m.Authenticate(func(c echo.Context) error {
				seen, _ = GetUserID(c)

				return c.NoContent(http.StatusOK)
			})(c)

			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantCode == "" {
				assert.Equal(t, userID, seen)

				return
			}

			var body response.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.Equal(t, uuid.Nil, seen)
		})
	}
}
