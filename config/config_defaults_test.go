package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyLocationDefaults_Empty(t *testing.T) {
	cfg := &Config{}
	cfg.applyLocationDefaults()

	require.NotNil(t, cfg.Location)
	require.NotNil(t, cfg.Location.Geolocation)
	assert.Equal(t, "IN", cfg.Location.PrimaryCountry)
	assert.Equal(t, 10, cfg.Location.MaxSavedPerUser)
	assert.InDelta(t, 5.0, cfg.Location.NearbyRadiusKm, 0)
	assert.InDelta(t, 50.0, cfg.Location.MaxNearbyRadiusKm, 0)
	assert.Equal(t, "none", cfg.Location.Geolocation.Provider)
	assert.Equal(t, 10*time.Second, cfg.Location.Geolocation.Timeout)
	assert.Equal(t, 5*time.Minute, cfg.Location.Geolocation.CacheMaxAge)
	assert.InDelta(t, 100000.0, cfg.Location.Geolocation.FallbackAccuracyMeters, 0)
}

func TestApplyLocationDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Location: &LocationConfig{
			PrimaryCountry:  "US",
			MaxSavedPerUser: 3,
			NearbyRadiusKm:  80,
			Geolocation: &GeolocationConfig{
				Provider: "static",
				Timeout:  2 * time.Second,
			},
		},
	}
	cfg.applyLocationDefaults()

	assert.Equal(t, "US", cfg.Location.PrimaryCountry)
	assert.Equal(t, 3, cfg.Location.MaxSavedPerUser)
	assert.InDelta(t, 80.0, cfg.Location.NearbyRadiusKm, 0)
	assert.InDelta(t, 80.0, cfg.Location.MaxNearbyRadiusKm, 0)
	assert.Equal(t, "static", cfg.Location.Geolocation.Provider)
	assert.Equal(t, 2*time.Second, cfg.Location.Geolocation.Timeout)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{}
		cfg.SecretKey.Access = "secret"
		cfg.applyLocationDefaults()

		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			mutate: func(*Config) {},
		},
		{
			name:    "missing access secret",
			mutate:  func(cfg *Config) { cfg.SecretKey.Access = " " },
			wantErr: "secretKey.access",
		},
		{
			name:    "trusted proxy is not a cidr",
			mutate:  func(cfg *Config) { cfg.HTTP.TrustedProxies = []string{"10.0.0.1"} },
			wantErr: "http.trustedProxies",
		},
		{
			name:   "trusted proxy cidr",
			mutate: func(cfg *Config) { cfg.HTTP.TrustedProxies = []string{"10.0.0.0/8", "fd00::/8"} },
		},
		{
			name:    "relative map base url",
			mutate:  func(cfg *Config) { cfg.Location.MapBaseURL = "maps/search" },
			wantErr: "location.mapBaseUrl",
		},
		{
			name: "ipapi endpoint without placeholder",
			mutate: func(cfg *Config) {
				cfg.Location.Geolocation.Provider = "ipapi"
				cfg.Location.Geolocation.Endpoint = "https://ipapi.co/json/"
			},
			wantErr: "location.geolocation.endpoint",
		},
		{
			name: "google pubsub without topic",
			mutate: func(cfg *Config) {
				cfg.PubSub = &PubSubConfig{Provider: "google", ProjectID: "skillswap"}
			},
			wantErr: "pubsub.projectId",
		},
		{
			name: "local pubsub needs no project",
			mutate: func(cfg *Config) {
				cfg.PubSub = &PubSubConfig{Provider: "local", LocalEndpoint: "http://localhost:8085"}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
