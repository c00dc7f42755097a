package weather

import "fmt"

// Current holds the point-in-time conditions of a snapshot. USAQI is only
// set when the air-quality lookup succeeded.
type Current struct {
	Time                string   `json:"time"`
	Interval            int      `json:"interval"`
	Temperature2m       float64  `json:"temperature_2m"`
	RelativeHumidity2m  int      `json:"relative_humidity_2m"`
	ApparentTemperature float64  `json:"apparent_temperature"`
	IsDay               int      `json:"is_day"`
	Precipitation       float64  `json:"precipitation"`
	Rain                float64  `json:"rain"`
	Showers             float64  `json:"showers"`
	Snowfall            float64  `json:"snowfall"`
	WeatherCode         int      `json:"weather_code"`
	CloudCover          int      `json:"cloud_cover"`
	PressureMSL         float64  `json:"pressure_msl"`
	SurfacePressure     float64  `json:"surface_pressure"`
	WindSpeed10m        float64  `json:"wind_speed_10m"`
	WindDirection10m    int      `json:"wind_direction_10m"`
	WindGusts10m        float64  `json:"wind_gusts_10m"`
	USAQI               *float64 `json:"us_aqi,omitempty"`
}

// Hourly holds parallel time series indexed by the same hour offset.
type Hourly struct {
	Time               []string  `json:"time"`
	Temperature2m      []float64 `json:"temperature_2m"`
	WeatherCode        []int     `json:"weather_code"`
	Visibility         []float64 `json:"visibility"`
	RelativeHumidity2m []int     `json:"relative_humidity_2m"`
}

// Daily holds parallel per-day series indexed by the same day offset.
type Daily struct {
	Time                        []string  `json:"time"`
	WeatherCode                 []int     `json:"weather_code"`
	Temperature2mMax            []float64 `json:"temperature_2m_max"`
	Temperature2mMin            []float64 `json:"temperature_2m_min"`
	Sunrise                     []string  `json:"sunrise"`
	Sunset                      []string  `json:"sunset"`
	UVIndexMax                  []float64 `json:"uv_index_max"`
	PrecipitationProbabilityMax []int     `json:"precipitation_probability_max"`
}

// Snapshot is the normalized weather view for one location at one fetch.
// A new snapshot replaces the previous one wholesale; there is no
// incremental merging.
type Snapshot struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timezone  string  `json:"timezone"`
	Current   Current `json:"current"`
	Hourly    Hourly  `json:"hourly"`
	Daily     Daily   `json:"daily"`
}

// Validate checks that the hourly and daily parallel arrays are internally
// consistent. A malformed upstream response must surface as a fetch failure,
// never as a ragged snapshot.
func (s *Snapshot) Validate() error {
	n := len(s.Hourly.Time)
	if len(s.Hourly.Temperature2m) != n ||
		len(s.Hourly.WeatherCode) != n ||
		len(s.Hourly.Visibility) != n ||
		len(s.Hourly.RelativeHumidity2m) != n {
		return fmt.Errorf("ragged hourly series: time has %d entries", n)
	}

	d := len(s.Daily.Time)
	if len(s.Daily.WeatherCode) != d ||
		len(s.Daily.Temperature2mMax) != d ||
		len(s.Daily.Temperature2mMin) != d ||
		len(s.Daily.Sunrise) != d ||
		len(s.Daily.Sunset) != d ||
		len(s.Daily.UVIndexMax) != d ||
		len(s.Daily.PrecipitationProbabilityMax) != d {
		return fmt.Errorf("ragged daily series: time has %d entries", d)
	}
	return nil
}
