package geo

import (
	"context"
	"fmt"
	"net/url"
	"unicode/utf8"

	"skycast/internal/httpclient"
)

// Candidate is a single geocoding match, carrying the provider's payload so
// callers can build display labels from the admin fields.
type Candidate struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	CountryCode string  `json:"country_code,omitempty"`
	Country     string  `json:"country,omitempty"`
	Admin1      string  `json:"admin1,omitempty"`
	Admin2      string  `json:"admin2,omitempty"`
	Admin3      string  `json:"admin3,omitempty"`
	Admin4      string  `json:"admin4,omitempty"`
	Timezone    string  `json:"timezone,omitempty"`
	Population  int     `json:"population,omitempty"`
}

// Coordinate returns the candidate's position.
func (c Candidate) Coordinate() Coordinate {
	return Coordinate{Latitude: c.Latitude, Longitude: c.Longitude}
}

// SearchClient queries a geocoding service for city candidates.
type SearchClient struct {
	baseURL string
	client  *httpclient.Client
}

// NewSearchClient creates a search client for the given geocoding base URL,
// e.g. "https://geocoding-api.open-meteo.com".
func NewSearchClient(client *httpclient.Client, baseURL string) *SearchClient {
	return &SearchClient{baseURL: baseURL, client: client}
}

// Search returns up to 5 candidates for a partial city name, in provider
// relevance order. Queries shorter than 2 characters return an empty slice
// without touching the network. Results are never cached; identical queries
// re-fetch.
func (s *SearchClient) Search(ctx context.Context, query string) ([]Candidate, error) {
	if utf8.RuneCountInString(query) < 2 {
		return []Candidate{}, nil
	}

	values := url.Values{}
	values.Set("name", query)
	values.Set("count", "5")
	values.Set("language", "en")
	values.Set("format", "json")

	var payload struct {
		Results []Candidate `json:"results"`
	}
	u := fmt.Sprintf("%s/v1/search?%s", s.baseURL, values.Encode())
	if err := s.client.GetJSON(ctx, u, &payload); err != nil {
		return nil, fmt.Errorf("geocoding search %q: %w", query, err)
	}

	// A missing results array decodes to nil and is treated as no matches.
	if payload.Results == nil {
		return []Candidate{}, nil
	}
	return payload.Results, nil
}
