package auth

import (
	"testing"
	"time"

	"skillswap/config"
	"skillswap/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_access_secret_key_very_long_for_testing"

func newTestConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = secret

	return cfg
}

func signToken(t *testing.T, method jwt.SigningMethod, key any, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)

	return token
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	svc, err := NewJWTService(newTestConfig(""))
	assert.Error(t, err)
	assert.Nil(t, svc)
}

func TestJWTService_ValidateAccessToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig(testSecret))
	require.NoError(t, err)

	userID := uuid.New()
	now := time.Now()

	tests := []struct {
		name    string
		token   string
		wantErr bool
	}{
		{
			name: "Valid access token",
			token: signToken(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{
				"sub": userID.String(), "type": "access", "roles": []string{"user"},
				"iat": now.Unix(), "exp": now.Add(time.Hour).Unix(),
			}),
		},
		{
			name: "Expired",
			token: signToken(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{
				"sub": userID.String(), "type": "access",
				"iat": now.Add(-2 * time.Hour).Unix(), "exp": now.Add(-time.Hour).Unix(),
			}),
			wantErr: true,
		},
		{
			name: "Missing expiry",
			token: signToken(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{
				"sub": userID.String(), "type": "access",
			}),
			wantErr: true,
		},
		{
			name: "Refresh token",
			token: signToken(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{
				"sub": userID.String(), "type": "refresh", "exp": now.Add(time.Hour).Unix(),
			}),
			wantErr: true,
		},
		{
			name: "Wrong secret",
			token: signToken(t, jwt.SigningMethodHS256, []byte("another_secret"), jwt.MapClaims{
				"sub": userID.String(), "type": "access", "exp": now.Add(time.Hour).Unix(),
			}),
			wantErr: true,
		},
		{
			name: "Wrong algorithm",
			token: signToken(t, jwt.SigningMethodHS512, []byte(testSecret), jwt.MapClaims{
				"sub": userID.String(), "type": "access", "exp": now.Add(time.Hour).Unix(),
			}),
			wantErr: true,
		},
		{
			name: "Subject is not a UUID",
			token: signToken(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{
				"sub": "alice", "type": "access", "exp": now.Add(time.Hour).Unix(),
			}),
			wantErr: true,
		},
		{
			name:    "Garbage",
			token:   "clearly-not-a-jwt-token-format",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := svc.ValidateAccessToken(tt.token)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, claims)

				return
			}
			require.NoError(t, err)
			got, err := claims.UserID()
			require.NoError(t, err)
			assert.Equal(t, userID, got)
			assert.Equal(t, service.TokenTypeAccess, claims.Type)
			assert.Equal(t, []string{"user"}, claims.Roles)
		})
	}
}
