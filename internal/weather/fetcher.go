package weather

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"skycast/internal/httpclient"
)

// Field lists requested from the forecast endpoint. Fixed; the snapshot
// shape depends on them.
var (
	currentFields = []string{
		"temperature_2m",
		"relative_humidity_2m",
		"apparent_temperature",
		"is_day",
		"precipitation",
		"rain",
		"showers",
		"snowfall",
		"weather_code",
		"cloud_cover",
		"pressure_msl",
		"surface_pressure",
		"wind_speed_10m",
		"wind_direction_10m",
		"wind_gusts_10m",
	}
	hourlyFields = []string{"temperature_2m", "weather_code", "visibility", "relative_humidity_2m"}
	dailyFields  = []string{
		"weather_code",
		"temperature_2m_max",
		"temperature_2m_min",
		"sunrise",
		"sunset",
		"uv_index_max",
		"precipitation_probability_max",
	}
)

// Fetcher abstracts the weather acquisition path for the dashboard.
type Fetcher interface {
	Fetch(ctx context.Context, lat, lon float64) (*Snapshot, error)
}

// Client fetches snapshots from a forecast endpoint and merges in the
// current US AQI from a separate air-quality endpoint.
type Client struct {
	forecastURL   string
	airQualityURL string
	client        *httpclient.Client
	airQuality    *httpclient.Guarded
}

// NewClient creates a fetcher against the given base URLs, e.g.
// "https://api.open-meteo.com" and "https://air-quality-api.open-meteo.com".
func NewClient(client *httpclient.Client, airQuality *httpclient.Guarded, forecastURL, airQualityURL string) *Client {
	return &Client{
		forecastURL:   forecastURL,
		airQualityURL: airQualityURL,
		client:        client,
		airQuality:    airQuality,
	}
}

// Fetch retrieves a full snapshot for the coordinate. The forecast call is
// fatal on failure; the air-quality call runs strictly after it and its
// failure only leaves the AQI unset. Nothing is cached; every call
// re-fetches both endpoints.
func (c *Client) Fetch(ctx context.Context, lat, lon float64) (*Snapshot, error) {
	fetchID := uuid.NewString()
	log.Printf("DEBUG: fetch %s started for (%f, %f)", fetchID, lat, lon)

	values := url.Values{}
	values.Set("latitude", fmt.Sprintf("%f", lat))
	values.Set("longitude", fmt.Sprintf("%f", lon))
	values.Set("current", strings.Join(currentFields, ","))
	values.Set("hourly", strings.Join(hourlyFields, ","))
	values.Set("daily", strings.Join(dailyFields, ","))
	values.Set("timezone", "auto")

	var snap Snapshot
	u := fmt.Sprintf("%s/v1/forecast?%s", c.forecastURL, values.Encode())
	if err := c.client.GetJSON(ctx, u, &snap); err != nil {
		return nil, fmt.Errorf("forecast fetch %s (%f, %f): %w", fetchID, lat, lon, err)
	}
	if err := snap.Validate(); err != nil {
		return nil, fmt.Errorf("forecast fetch %s (%f, %f): %w", fetchID, lat, lon, err)
	}

	c.mergeAirQuality(ctx, fetchID, lat, lon, &snap)
	return &snap, nil
}

func (c *Client) mergeAirQuality(ctx context.Context, fetchID string, lat, lon float64, snap *Snapshot) {
	values := url.Values{}
	values.Set("latitude", fmt.Sprintf("%f", lat))
	values.Set("longitude", fmt.Sprintf("%f", lon))
	values.Set("current", "us_aqi")

	var payload struct {
		Current struct {
			USAQI *float64 `json:"us_aqi"`
		} `json:"current"`
	}
	u := fmt.Sprintf("%s/v1/air-quality?%s", c.airQualityURL, values.Encode())
	if err := c.airQuality.GetJSON(ctx, u, &payload); err != nil {
		// Best-effort; the snapshot simply ships without an AQI.
		log.Printf("air quality fetch %s failed for (%f, %f): %v", fetchID, lat, lon, err)
		return
	}
	snap.Current.USAQI = payload.Current.USAQI
}
