package geolocation

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"

	"skillswap/internal/domain/entity"
	"skillswap/internal/domain/service"

	"github.com/pkg/errors"
)

// ipAccuracyMeters is the nominal accuracy of an IP lookup, roughly city level.
const ipAccuracyMeters = 25000

// maxResponseBytes bounds the lookup response body.
const maxResponseBytes = 64 << 10

// ipAPIProvider locates the caller by their network address.
type ipAPIProvider struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

type ipAPIResponse struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Error     bool     `json:"error"`
	Reason    string   `json:"reason"`
}

// NewIPAPIProvider creates an IP lookup provider. endpoint contains one "%s" for the address.
func NewIPAPIProvider(endpoint string, httpClient *http.Client, logger *slog.Logger) service.LocationProvider {
	return &ipAPIProvider{
		endpoint:   endpoint,
		httpClient: httpClient,
		logger:     logger,
	}
}

func (p *ipAPIProvider) Acquire(ctx context.Context) (*entity.Position, error) {
	ip := net.ParseIP(service.ClientIPFromContext(ctx))
	if ip == nil || ip.IsLoopback() || ip.IsPrivate() || ip.IsUnspecified() {
		return nil, service.ErrGeolocationUnavailable
	}

	url := p.endpoint
	if strings.Contains(url, "%s") {
		url = fmt.Sprintf(url, ip.String())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("ip lookup returned status %d", resp.StatusCode)
	}

	var body ipAPIResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&body); err != nil {
		return nil, errors.Wrap(err, "decode ip lookup response")
	}
	if body.Error {
		return nil, errors.Errorf("ip lookup failed: %s", body.Reason)
	}
	if body.Latitude == nil || body.Longitude == nil {
		return nil, errors.New("ip lookup returned no coordinate")
	}
	coord := entity.Coordinate{Latitude: *body.Latitude, Longitude: *body.Longitude}
	if !coord.IsValid() {
		return nil, errors.New("ip lookup returned an out-of-range coordinate")
	}

	p.logger.DebugContext(ctx, "IP geolocation resolved",
		slog.Float64("latitude", coord.Latitude),
		slog.Float64("longitude", coord.Longitude),
	)

	return &entity.Position{
		Coordinate:     coord,
		AccuracyMeters: ipAccuracyMeters,
		Source:         entity.PositionSourceIP,
	}, nil
}
