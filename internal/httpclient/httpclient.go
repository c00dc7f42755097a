package httpclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
)

var (
	// ErrBadStatus is returned when an upstream answers with a non-2xx status.
	ErrBadStatus = errors.New("unexpected status code")

	ErrNoHTTPClient = errors.New("http client not configured")
	ErrCircuitOpen  = errors.New("circuit breaker open")
)

// Client is a thin JSON GET helper shared by all upstream API clients.
type Client struct {
	client *http.Client
}

func New(client *http.Client) *Client {
	return &Client{client: client}
}

// GetJSON issues a GET request and decodes the JSON response body into out.
// A non-2xx status is reported as an error wrapping ErrBadStatus. There are
// no retries; each call either succeeds or fails once.
func (c *Client) GetJSON(ctx context.Context, url string, out any) error {
	if c.client == nil {
		return ErrNoHTTPClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: %d", ErrBadStatus, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// Guarded wraps a Client with a circuit breaker. It is used for the
// best-effort upstreams (air quality, reverse geocoding, IP geolocation)
// whose failures are swallowed by the caller anyway; the breaker only stops
// us from hammering an upstream that keeps failing.
type Guarded struct {
	client  *Client
	circuit *gobreaker.CircuitBreaker
}

func NewGuarded(client *Client, name string) *Guarded {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})
	return &Guarded{client: client, circuit: cb}
}

func (g *Guarded) GetJSON(ctx context.Context, url string, out any) error {
	_, err := g.circuit.Execute(func() (interface{}, error) {
		return nil, g.client.GetJSON(ctx, url, out)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("%w: %v", ErrCircuitOpen, err)
	}
	return err
}
