package geo

import (
	"context"
	"fmt"
	"log"
	"net/url"

	"skycast/internal/httpclient"
)

// UnknownLocation is the label used when no place name can be resolved.
const UnknownLocation = "Unknown Location"

// NameResolver turns a coordinate into a human-readable place label.
type NameResolver interface {
	ResolveName(ctx context.Context, lat, lon float64) (string, error)
}

// ReverseClient resolves coordinates to "city, country" labels via a
// reverse-geocoding service. Lookups are cosmetic: every failure resolves to
// UnknownLocation instead of propagating.
type ReverseClient struct {
	baseURL string
	client  *httpclient.Guarded
}

func NewReverseClient(client *httpclient.Guarded, baseURL string) *ReverseClient {
	return &ReverseClient{baseURL: baseURL, client: client}
}

// ResolveName never returns a non-nil error; the error is part of the
// interface so tests can inject resolvers that do fail.
func (r *ReverseClient) ResolveName(ctx context.Context, lat, lon float64) (string, error) {
	values := url.Values{}
	values.Set("latitude", fmt.Sprintf("%f", lat))
	values.Set("longitude", fmt.Sprintf("%f", lon))
	values.Set("localityLanguage", "en")

	var payload struct {
		City                 string `json:"city"`
		Locality             string `json:"locality"`
		PrincipalSubdivision string `json:"principalSubdivision"`
		CountryName          string `json:"countryName"`
	}
	u := fmt.Sprintf("%s/data/reverse-geocode-client?%s", r.baseURL, values.Encode())
	if err := r.client.GetJSON(ctx, u, &payload); err != nil {
		log.Printf("reverse geocoding failed for (%f, %f): %v", lat, lon, err)
		return UnknownLocation, nil
	}

	city := payload.City
	if city == "" {
		city = payload.Locality
	}
	if city == "" {
		city = payload.PrincipalSubdivision
	}
	country := payload.CountryName

	switch {
	case city != "" && country != "":
		return city + ", " + country, nil
	case city != "":
		return city, nil
	case country != "":
		return country, nil
	}
	return UnknownLocation, nil
}
