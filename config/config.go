package config

import (
	"net"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath                   = "."
	defaultMaxRequestBodySize     = "100KB"
	defaultGeolocationTimeout     = 10 * time.Second
	defaultGeolocationCacheMaxAge = 5 * time.Minute
	defaultGeolocationCacheSize   = 1024
	defaultFallbackAccuracyMeters = 100000
	defaultMaxSavedPerUser        = 10
	defaultNearbyRadiusKm         = 5
	defaultMaxNearbyRadiusKm      = 50
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int      `json:"port" yaml:"port"`
		MaxRequestBodySize string   `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		AllowOrigins       []string `json:"allowOrigins" yaml:"allowOrigins"`

		// TrustedProxies lists the CIDRs allowed to set X-Forwarded-For. When empty the
		// client IP is always the connection's remote address.
		TrustedProxies []string `json:"trustedProxies" yaml:"trustedProxies"`
		Timeouts       struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// SecretKey.Access verifies access tokens issued by the SkillSwap account service.
	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	// Location configuration for geocoding, geolocation and saved locations
	Location *LocationConfig `json:"location" yaml:"location"`

	// QRCode configuration for map link QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// PubSub configuration for meetup event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// LocationConfig defines the location resolver and saved location settings
type LocationConfig struct {
	// ISO code or name of the fallback country, e.g. "IN"
	PrimaryCountry string `json:"primaryCountry" yaml:"primaryCountry"`

	// Base URL of the map service used for map and directions links
	MapBaseURL string `json:"mapBaseUrl" yaml:"mapBaseUrl"`

	Geolocation *GeolocationConfig `json:"geolocation" yaml:"geolocation"`

	// Maximum saved locations per user
	MaxSavedPerUser int `json:"maxSavedPerUser" yaml:"maxSavedPerUser"`

	// Default and maximum radius in kilometers for nearby searches
	NearbyRadiusKm    float64 `json:"nearbyRadiusKm" yaml:"nearbyRadiusKm"`
	MaxNearbyRadiusKm float64 `json:"maxNearbyRadiusKm" yaml:"maxNearbyRadiusKm"`
}

// GeolocationConfig defines how the current position is acquired
type GeolocationConfig struct {
	// Provider type: "none", "static" or "ipapi"
	Provider string `json:"provider" yaml:"provider"`

	// Upper bound on a single acquisition
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// How long an acquired position may be reused
	CacheMaxAge time.Duration `json:"cacheMaxAge" yaml:"cacheMaxAge"`
	CacheSize   int           `json:"cacheSize" yaml:"cacheSize"`

	// Accuracy reported when the primary country centroid is used
	FallbackAccuracyMeters float64 `json:"fallbackAccuracyMeters" yaml:"fallbackAccuracyMeters"`

	// Fixed position for the static provider
	Static StaticPositionConfig `json:"static" yaml:"static"`

	// Lookup endpoint for the ipapi provider, "%s" is replaced with the client IP
	Endpoint string `json:"endpoint" yaml:"endpoint"`
}

// StaticPositionConfig is the position reported by the static provider
type StaticPositionConfig struct {
	Latitude       float64 `json:"latitude" yaml:"latitude"`
	Longitude      float64 `json:"longitude" yaml:"longitude"`
	AccuracyMeters float64 `json:"accuracyMeters" yaml:"accuracyMeters"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP push, "google" for Google Pub/Sub, empty disables publishing
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if len(cfg.HTTP.AllowOrigins) == 0 {
		cfg.HTTP.AllowOrigins = []string{"*"}
	}

	cfg.applyLocationDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// applyLocationDefaults fills every unset location setting.
func (c *Config) applyLocationDefaults() {
	if c.Location == nil {
		c.Location = &LocationConfig{}
	}
	loc := c.Location

	if strings.TrimSpace(loc.PrimaryCountry) == "" {
		loc.PrimaryCountry = "IN"
	}
	if loc.MaxSavedPerUser <= 0 {
		loc.MaxSavedPerUser = defaultMaxSavedPerUser
	}
	if loc.NearbyRadiusKm <= 0 {
		loc.NearbyRadiusKm = defaultNearbyRadiusKm
	}
	if loc.MaxNearbyRadiusKm < loc.NearbyRadiusKm {
		loc.MaxNearbyRadiusKm = max(loc.NearbyRadiusKm, defaultMaxNearbyRadiusKm)
	}

	if loc.Geolocation == nil {
		loc.Geolocation = &GeolocationConfig{}
	}
	geo := loc.Geolocation
	if strings.TrimSpace(geo.Provider) == "" {
		geo.Provider = "none"
	}
	if geo.Timeout <= 0 {
		geo.Timeout = defaultGeolocationTimeout
	}
	if geo.CacheMaxAge <= 0 {
		geo.CacheMaxAge = defaultGeolocationCacheMaxAge
	}
	if geo.CacheSize <= 0 {
		geo.CacheSize = defaultGeolocationCacheSize
	}
	if geo.FallbackAccuracyMeters <= 0 {
		geo.FallbackAccuracyMeters = defaultFallbackAccuracyMeters
	}
}

// validate rejects settings that would only fail later, at first use.
func (c *Config) validate() error {
	if strings.TrimSpace(c.SecretKey.Access) == "" {
		return errors.New("secretKey.access is required to verify access tokens")
	}

	for _, cidr := range c.HTTP.TrustedProxies {
		if _, _, err := net.ParseCIDR(cidr); err != nil {
			return errors.Errorf("http.trustedProxies entry %q is not a CIDR", cidr)
		}
	}

	if c.Location.MapBaseURL != "" {
		u, err := url.Parse(c.Location.MapBaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return errors.Errorf("location.mapBaseUrl %q is not an absolute URL", c.Location.MapBaseURL)
		}
	}

	geo := c.Location.Geolocation
	if strings.EqualFold(geo.Provider, "ipapi") && !strings.Contains(geo.Endpoint, "%s") {
		return errors.New("location.geolocation.endpoint must contain %s for the client IP")
	}

	if c.PubSub != nil && strings.EqualFold(c.PubSub.Provider, "google") &&
		(c.PubSub.ProjectID == "" || c.PubSub.TopicID == "") {
		return errors.New("pubsub.projectId and pubsub.topicId are required for the google provider")
	}

	return nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
