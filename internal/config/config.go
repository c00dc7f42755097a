package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"skycast/internal/geo"
)

// AppConfig carries everything the service needs, with defaults matching
// the public open-meteo / BigDataCloud / ip-api endpoints.
type AppConfig struct {
	// Upstream base URLs, overridable for tests and self-hosted mirrors.
	ForecastBaseURL   string
	AirQualityBaseURL string
	GeocodingBaseURL  string
	ReverseGeoBaseURL string
	IPLocateURL       string

	// HTTPTimeout bounds every outbound call.
	HTTPTimeout time.Duration

	// SearchDebounce is the quiet window for debounced city search.
	SearchDebounce time.Duration

	// RefreshInterval controls background re-fetching of the active
	// location; 0 disables it.
	RefreshInterval time.Duration

	// GeolocationEnabled toggles the IP-based locator. When false the flow
	// goes straight to the default location.
	GeolocationEnabled bool

	// DefaultCoord/DefaultLabel are used when geolocation is unavailable,
	// denied, or its weather fetch fails.
	DefaultCoord geo.Coordinate
	DefaultLabel string

	// PrefsPath is where the unit preference is persisted.
	PrefsPath string

	Port string
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}

	cfg := &AppConfig{
		ForecastBaseURL:   getenvDefault("FORECAST_BASE_URL", "https://api.open-meteo.com"),
		AirQualityBaseURL: getenvDefault("AIR_QUALITY_BASE_URL", "https://air-quality-api.open-meteo.com"),
		GeocodingBaseURL:  getenvDefault("GEOCODING_BASE_URL", "https://geocoding-api.open-meteo.com"),
		ReverseGeoBaseURL: getenvDefault("REVERSE_GEO_BASE_URL", "https://api.bigdatacloud.net"),
		IPLocateURL:       getenvDefault("IP_LOCATE_URL", "http://ip-api.com/json"),
		PrefsPath:         getenvDefault("PREFS_PATH", "./skycast-prefs.json"),
		Port:              getenvDefault("PORT", "8080"),
	}

	var err error
	if cfg.HTTPTimeout, err = getenvDuration("HTTP_TIMEOUT", "10s"); err != nil {
		return nil, err
	}
	if cfg.SearchDebounce, err = getenvDuration("SEARCH_DEBOUNCE", "500ms"); err != nil {
		return nil, err
	}
	if cfg.RefreshInterval, err = getenvDuration("REFRESH_INTERVAL", "15m"); err != nil {
		return nil, err
	}

	cfg.GeolocationEnabled = getenvBool("GEOLOCATION_ENABLED", true)

	// Default location: Dhaka, Bangladesh.
	cfg.DefaultCoord = geo.Coordinate{
		Latitude:  getenvFloat("DEFAULT_LATITUDE", 23.8103),
		Longitude: getenvFloat("DEFAULT_LONGITUDE", 90.4125),
	}
	cfg.DefaultLabel = getenvDefault("DEFAULT_LABEL", "Dhaka, Bangladesh")

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvDuration(key, def string) (time.Duration, error) {
	v := getenvDefault(key, def)
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func getenvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getenvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err == nil {
			return f
		}
	}
	return def
}
