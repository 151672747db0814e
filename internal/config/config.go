package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/trafico-pr/trafico-cli/internal/api"
	"github.com/trafico-pr/trafico-cli/internal/models"
)

const (
	// EnvAPIKey holds the directions API key
	EnvAPIKey = "GOOGLE_MAPS_API_KEY"

	// EnvAPIKeyFile points at a fallback plain-text key file
	EnvAPIKeyFile = "API_KEY_FILE"

	// EnvRefreshSeconds overrides the board refresh interval
	EnvRefreshSeconds = "DISPLAY_REFRESH_SECONDS"

	// EnvTrafficModel selects the provider traffic model
	EnvTrafficModel = "TRAFFIC_MODEL"

	// DefaultKeyFile is read when no env var or override is present
	DefaultKeyFile = "api_key"

	// DefaultRefreshInterval is the board refresh interval
	DefaultRefreshInterval = 120 * time.Second
)

// defaultRoutes are the two Caguas to San Juan approaches shown when no route
// variables are set and strict mode is off.
var defaultRoutes = [2]models.RouteDef{
	{
		Name:   "Normal",
		Origin: models.Coordinate{Lat: 18.269514, Lng: -66.039249},
		Dest:   models.Coordinate{Lat: 18.336549, Lng: -66.063951},
	},
	{
		Name:   "Expreso",
		Origin: models.Coordinate{Lat: 18.252369, Lng: -66.037003},
		Dest:   models.Coordinate{Lat: 18.403981, Lng: -66.050583},
	},
}

// Config is the process configuration, built once at startup and passed to
// each component.
type Config struct {
	APIKey          string
	Routes          [2]models.RouteDef
	RefreshInterval time.Duration
	TrafficModel    string
}

// Option configures Load
type Option func(*loader)

// Strict disables built-in route defaults: missing route variables become
// configuration errors instead of falling back.
func Strict() Option {
	return func(l *loader) {
		l.strict = true
	}
}

// WithKeyFile overrides the fallback API key file path.
func WithKeyFile(path string) Option {
	return func(l *loader) {
		l.keyFile = path
	}
}

type loader struct {
	strict  bool
	keyFile string
}

// Load reads the process environment (after merging a .env file, if one
// exists) and produces the full configuration. The API key resolution order is
// environment variable first, then the fallback key file.
func Load(opts ...Option) (*Config, error) {
	// Load .env into environment (ignore if missing)
	_ = godotenv.Load()

	l := &loader{keyFile: DefaultKeyFile}
	if v := os.Getenv(EnvAPIKeyFile); v != "" {
		l.keyFile = v
	}
	for _, opt := range opts {
		opt(l)
	}

	cfg := &Config{}

	key, err := l.resolveAPIKey()
	if err != nil {
		return nil, err
	}
	cfg.APIKey = key

	for i := 0; i < 2; i++ {
		route, err := l.resolveRoute(i + 1)
		if err != nil {
			return nil, err
		}
		cfg.Routes[i] = route
	}

	// Refresh interval: invalid values silently fall back to the default
	cfg.RefreshInterval = DefaultRefreshInterval
	if v := os.Getenv(EnvRefreshSeconds); v != "" {
		if sec, err := strconv.Atoi(v); err == nil && sec > 0 {
			cfg.RefreshInterval = time.Duration(sec) * time.Second
		}
	}

	if v := strings.TrimSpace(os.Getenv(EnvTrafficModel)); v != "" {
		if !api.ValidTrafficModel(v) {
			return nil, NewConfigError(EnvTrafficModel, fmt.Sprintf("unknown traffic model %q (expected one of %s)", v, strings.Join(api.TrafficModels, ", ")))
		}
		cfg.TrafficModel = v
	}

	return cfg, nil
}

// resolveAPIKey tries the environment first, then the fallback key file.
func (l *loader) resolveAPIKey() (string, error) {
	if v := strings.TrimSpace(os.Getenv(EnvAPIKey)); v != "" {
		return v, nil
	}

	data, err := os.ReadFile(l.keyFile)
	if err == nil {
		if key := strings.TrimSpace(string(data)); key != "" {
			return key, nil
		}
	}

	return "", NewConfigError(EnvAPIKey, fmt.Sprintf("not set and key file %q is missing or empty", l.keyFile))
}

// resolveRoute builds route definition n (1-based) from ROUTE<n>_* variables.
func (l *loader) resolveRoute(n int) (models.RouteDef, error) {
	prefix := fmt.Sprintf("ROUTE%d", n)
	def := defaultRoutes[n-1]

	if v := strings.TrimSpace(os.Getenv(prefix + "_NAME")); v != "" {
		def.Name = v
	} else if l.strict {
		return models.RouteDef{}, NewConfigError(prefix+"_NAME", "required in strict mode")
	}

	origin, ok, err := resolveCoordinate(prefix + "_ORIGIN")
	if err != nil {
		return models.RouteDef{}, err
	}
	if ok {
		def.Origin = origin
	} else if l.strict {
		return models.RouteDef{}, NewConfigError(prefix+"_ORIGIN", "required in strict mode")
	}

	dest, ok, err := resolveCoordinate(prefix + "_DEST")
	if err != nil {
		return models.RouteDef{}, err
	}
	if ok {
		def.Dest = dest
	} else if l.strict {
		return models.RouteDef{}, NewConfigError(prefix+"_DEST", "required in strict mode")
	}

	return def, nil
}

// resolveCoordinate reads a coordinate from either a combined "lat,lng"
// variable or a pair of _LAT/_LNG variables. The second return value reports
// whether any of the variables were set.
func resolveCoordinate(envVar string) (models.Coordinate, bool, error) {
	if v := strings.TrimSpace(os.Getenv(envVar)); v != "" {
		c, err := models.ParseCoordinate(v)
		if err != nil {
			return models.Coordinate{}, false, NewConfigError(envVar, err.Error())
		}
		return c, true, nil
	}

	latVar, lngVar := envVar+"_LAT", envVar+"_LNG"
	latStr := strings.TrimSpace(os.Getenv(latVar))
	lngStr := strings.TrimSpace(os.Getenv(lngVar))
	if latStr == "" && lngStr == "" {
		return models.Coordinate{}, false, nil
	}
	if latStr == "" || lngStr == "" {
		missing := latVar
		if lngStr == "" {
			missing = lngVar
		}
		return models.Coordinate{}, false, NewConfigError(missing, "both _LAT and _LNG must be set")
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return models.Coordinate{}, false, NewConfigError(latVar, fmt.Sprintf("invalid latitude %q", latStr))
	}
	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		return models.Coordinate{}, false, NewConfigError(lngVar, fmt.Sprintf("invalid longitude %q", lngStr))
	}

	c := models.Coordinate{Lat: lat, Lng: lng}
	if !c.Valid() {
		return models.Coordinate{}, false, NewConfigError(envVar, fmt.Sprintf("coordinate %s out of range", c))
	}
	return c, true, nil
}
