package geolocation

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"skillswap/config"
	"skillswap/internal/domain/entity"
	"skillswap/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// countingProvider returns a scripted result and counts calls.
type countingProvider struct {
	calls    atomic.Int32
	position *entity.Position
	err      error
}

func (p *countingProvider) Acquire(context.Context) (*entity.Position, error) {
	p.calls.Add(1)
	if p.err != nil {
		return nil, p.err
	}
	pos := *p.position

	return &pos, nil
}

func TestStaticProvider(t *testing.T) {
	coord := entity.Coordinate{Latitude: 12.9716, Longitude: 77.5946}
	p := NewStaticProvider(coord, 50)

	pos, err := p.Acquire(context.Background())
	require.NoError(t, err)
	assert.Equal(t, coord, pos.Coordinate)
	assert.InDelta(t, 50, pos.AccuracyMeters, 0.001)
	assert.Equal(t, entity.PositionSourceStatic, pos.Source)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = p.Acquire(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestCachingProvider(t *testing.T) {
	backend := &countingProvider{
		position: &entity.Position{
			Coordinate: entity.Coordinate{Latitude: 19.076, Longitude: 72.8777},
			Source:     entity.PositionSourceIP,
		},
	}
	p := NewCachingProvider(backend, 8, time.Minute)
	ctx := service.WithClientIP(context.Background(), "8.8.8.8")

	first, err := p.Acquire(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.PositionSourceIP, first.Source)

	second, err := p.Acquire(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.PositionSourceCache, second.Source)
	assert.Equal(t, first.Coordinate, second.Coordinate)
	assert.Equal(t, int32(1), backend.calls.Load())

	// A different client misses the cache.
	_, err = p.Acquire(service.WithClientIP(context.Background(), "1.1.1.1"))
	require.NoError(t, err)
	assert.Equal(t, int32(2), backend.calls.Load())
}

func TestCachingProvider_Expires(t *testing.T) {
	backend := &countingProvider{
		position: &entity.Position{Coordinate: entity.Coordinate{Latitude: 1, Longitude: 2}},
	}
	p := NewCachingProvider(backend, 8, 20*time.Millisecond)
	ctx := service.WithClientIP(context.Background(), "8.8.8.8")

	_, err := p.Acquire(ctx)
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		_, err := p.Acquire(ctx)

		return err == nil && backend.calls.Load() >= 2
	}, time.Second, 10*time.Millisecond)
}

func TestCachingProvider_DoesNotCacheFailures(t *testing.T) {
	backend := &countingProvider{err: errors.New("lookup failed")}
	p := NewCachingProvider(backend, 8, time.Minute)
	ctx := service.WithClientIP(context.Background(), "8.8.8.8")

	for range 3 {
		_, err := p.Acquire(ctx)
		require.Error(t, err)
	}
	assert.Equal(t, int32(3), backend.calls.Load())
}

func TestIPAPIProvider(t *testing.T) {
	tests := []struct {
		name            string
		clientIP        string
		status          int
		body            string
		wantErr         bool
		wantUnavailable bool
		want            entity.Coordinate
	}{
		{
			name:     "public address",
			clientIP: "8.8.8.8",
			status:   http.StatusOK,
			body:     `{"latitude": 37.4056, "longitude": -122.0775}`,
			want:     entity.Coordinate{Latitude: 37.4056, Longitude: -122.0775},
		},
		{
			name:            "private address",
			clientIP:        "192.168.1.20",
			wantUnavailable: true,
		},
		{
			name:            "loopback address",
			clientIP:        "127.0.0.1",
			wantUnavailable: true,
		},
		{
			name:            "no address",
			wantUnavailable: true,
		},
		{
			name:     "lookup error body",
			clientIP: "8.8.8.8",
			status:   http.StatusOK,
			body:     `{"error": true, "reason": "RateLimited"}`,
			wantErr:  true,
		},
		{
			name:     "missing coordinate",
			clientIP: "8.8.8.8",
			status:   http.StatusOK,
			body:     `{"city": "Mountain View"}`,
			wantErr:  true,
		},
		{
			name:     "out of range coordinate",
			clientIP: "8.8.8.8",
			status:   http.StatusOK,
			body:     `{"latitude": 137.4, "longitude": 10}`,
			wantErr:  true,
		},
		{
			name:     "upstream failure",
			clientIP: "8.8.8.8",
			status:   http.StatusTooManyRequests,
			body:     `{}`,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var requestedPath string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				requestedPath = r.URL.Path
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			p := NewIPAPIProvider(srv.URL+"/%s/json/", srv.Client(), discardLogger)
			ctx := context.Background()
			if tt.clientIP != "" {
				ctx = service.WithClientIP(ctx, tt.clientIP)
			}

			pos, err := p.Acquire(ctx)

			switch {
			case tt.wantUnavailable:
				require.ErrorIs(t, err, service.ErrGeolocationUnavailable)
				assert.Empty(t, requestedPath)
			case tt.wantErr:
				require.Error(t, err)
				assert.Nil(t, pos)
			default:
				require.NoError(t, err)
				assert.Equal(t, "/"+tt.clientIP+"/json/", requestedPath)
				assert.Equal(t, tt.want, pos.Coordinate)
				assert.Equal(t, entity.PositionSourceIP, pos.Source)
			}
		})
	}
}

func TestNewProvider(t *testing.T) {
	tests := []struct {
		name            string
		geo             config.GeolocationConfig
		wantErr         bool
		wantSource      entity.PositionSource
		wantUnavailable bool
	}{
		{
			name:            "none",
			geo:             config.GeolocationConfig{Provider: "none"},
			wantUnavailable: true,
		},
		{
			name:            "empty",
			geo:             config.GeolocationConfig{},
			wantUnavailable: true,
		},
		{
			name: "static",
			geo: config.GeolocationConfig{
				Provider:    "Static",
				CacheSize:   4,
				CacheMaxAge: time.Minute,
				Static: config.StaticPositionConfig{
					Latitude:       28.6139,
					Longitude:      77.209,
					AccuracyMeters: 10,
				},
			},
			wantSource: entity.PositionSourceStatic,
		},
		{
			name:    "ipapi without endpoint",
			geo:     config.GeolocationConfig{Provider: "ipapi"},
			wantErr: true,
		},
		{
			name:    "unknown",
			geo:     config.GeolocationConfig{Provider: "gps"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			geo := tt.geo
			p, err := NewProvider(Params{
				Config: &config.Config{Location: &config.LocationConfig{Geolocation: &geo}},
				Logger: discardLogger,
			})
			if tt.wantErr {
				require.Error(t, err)

				return
			}
			require.NoError(t, err)

			pos, err := p.Acquire(context.Background())
			if tt.wantUnavailable {
				require.ErrorIs(t, err, service.ErrGeolocationUnavailable)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantSource, pos.Source)
		})
	}
}
