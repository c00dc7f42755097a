package geo

import (
	"context"
	"fmt"

	"skycast/internal/httpclient"
)

// IPLocator approximates the browser geolocation API for a hosted
// deployment by asking an IP geolocation service for the host's position.
type IPLocator struct {
	endpoint string
	client   *httpclient.Guarded
}

func NewIPLocator(client *httpclient.Guarded, endpoint string) *IPLocator {
	return &IPLocator{endpoint: endpoint, client: client}
}

func (l *IPLocator) CurrentPosition(ctx context.Context) (Coordinate, error) {
	var payload struct {
		Status  string  `json:"status"`
		Lat     float64 `json:"lat"`
		Lon     float64 `json:"lon"`
		Message string  `json:"message"`
	}
	if err := l.client.GetJSON(ctx, l.endpoint, &payload); err != nil {
		return Coordinate{}, fmt.Errorf("%w: %v", ErrLocationDenied, err)
	}
	if payload.Status != "success" {
		return Coordinate{}, fmt.Errorf("%w: %s", ErrLocationDenied, payload.Message)
	}
	return Coordinate{Latitude: payload.Lat, Longitude: payload.Lon}, nil
}
