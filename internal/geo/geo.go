package geo

import (
	"context"
	"errors"
)

// Coordinate is a WGS84 point. Immutable once obtained.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

var (
	// ErrLocatorUnavailable means no geolocation capability exists in this
	// deployment. Treated as a normal branch, not a failure.
	ErrLocatorUnavailable = errors.New("geolocation unavailable")

	// ErrLocationDenied means the locator exists but could not produce a
	// position (denied or upstream failure). Also a normal branch.
	ErrLocationDenied = errors.New("geolocation denied")
)

// Locator produces the current position of the dashboard's user, the way a
// browser's geolocation API would. Single-shot, no continuous tracking.
type Locator interface {
	CurrentPosition(ctx context.Context) (Coordinate, error)
}
