package dashboard

import (
	"context"
	"fmt"
	"log"
	"sync"

	"skycast/internal/geo"
	"skycast/internal/weather"
)

// State names the phases of the location resolution flow.
type State string

const (
	StateInit                State = "init"
	StateAwaitingGeolocation State = "awaiting_geolocation"
	StateResolvingName       State = "resolving_name"
	StateFallingBack         State = "falling_back"
	StateReady               State = "ready"
	StateError               State = "error"
)

// User-visible error messages.
const (
	msgFetchFailed = "Failed to fetch weather data. Please try again."
	msgLoadFailed  = "Failed to load weather data"
)

// Options wires a Controller's dependencies. Locator may be nil when the
// deployment has no geolocation capability.
type Options struct {
	Fetcher      weather.Fetcher
	Resolver     geo.NameResolver
	Locator      geo.Locator
	DefaultCoord geo.Coordinate
	DefaultLabel string
}

// Controller owns the dashboard's location and snapshot state. All fetch
// operations are tagged with a generation; an operation whose generation has
// been superseded by a newer user action never commits, so stale data cannot
// overwrite fresher data and the loading flag is cleared exactly once per
// flow, by its owner.
type Controller struct {
	fetcher      weather.Fetcher
	resolver     geo.NameResolver
	locator      geo.Locator
	defaultCoord geo.Coordinate
	defaultLabel string

	mu       sync.RWMutex
	gen      uint64
	state    State
	loading  bool
	coord    geo.Coordinate
	city     string
	errMsg   string
	snapshot *weather.Snapshot
}

func NewController(opts Options) *Controller {
	return &Controller{
		fetcher:      opts.Fetcher,
		resolver:     opts.Resolver,
		locator:      opts.Locator,
		defaultCoord: opts.DefaultCoord,
		defaultLabel: opts.DefaultLabel,
		state:        StateInit,
	}
}

// Resolve runs the initial location decision: geolocate when possible,
// reverse-geocode the position for a label, and fall back to the default
// location when geolocation or its weather fetch fails. Previous data is
// retained while loading.
func (c *Controller) Resolve(ctx context.Context) {
	g := c.begin(StateInit)

	if c.locator == nil {
		log.Printf("INFO: no geolocation capability; using default location")
		c.fallBack(ctx, g)
		return
	}

	c.transition(g, StateAwaitingGeolocation)
	pos, err := c.locator.CurrentPosition(ctx)
	if err != nil {
		// Denied or failed geolocation is a normal branch, not an error.
		log.Printf("INFO: geolocation failed: %v", err)
		c.fallBack(ctx, g)
		return
	}

	snap, err := c.fetcher.Fetch(ctx, pos.Latitude, pos.Longitude)
	if err != nil {
		log.Printf("weather fetch for located position failed: %v", err)
		c.fallBack(ctx, g)
		return
	}

	c.transition(g, StateResolvingName)
	label, err := c.resolver.ResolveName(ctx, pos.Latitude, pos.Longitude)
	if err != nil || label == "" {
		// Cosmetic lookup only; show the raw coordinate instead.
		label = fmt.Sprintf("%.2f°, %.2f°", pos.Latitude, pos.Longitude)
	}
	c.commit(g, pos, snap, label)
}

// fallBack fetches the default location. Its failure is the only path into
// the terminal error state.
func (c *Controller) fallBack(ctx context.Context, g uint64) {
	c.transition(g, StateFallingBack)

	snap, err := c.fetcher.Fetch(ctx, c.defaultCoord.Latitude, c.defaultCoord.Longitude)
	if err != nil {
		log.Printf("default location fetch failed: %v", err)
		c.fail(g, msgLoadFailed)
		return
	}
	c.commit(g, c.defaultCoord, snap, c.defaultLabel)
}

// SelectCity short-circuits any in-flight resolution with a direct fetch for
// a search candidate. Safe to call at any time.
func (c *Controller) SelectCity(ctx context.Context, cand geo.Candidate) {
	c.SelectLocation(ctx, cand.Coordinate(), cand.Name)
}

// SelectLocation fetches and displays a specific coordinate.
func (c *Controller) SelectLocation(ctx context.Context, coord geo.Coordinate, label string) {
	g := c.begin(StateInit)

	snap, err := c.fetcher.Fetch(ctx, coord.Latitude, coord.Longitude)
	if err != nil {
		log.Printf("weather fetch failed for %q: %v", label, err)
		c.fail(g, msgFetchFailed)
		return
	}
	c.commit(g, coord, snap, label)
}

// Refresh re-fetches the active location in place. It runs in the
// background, never touches the loading flag, and gives way to any user
// action that started after it.
func (c *Controller) Refresh(ctx context.Context) error {
	c.mu.RLock()
	if c.state != StateReady {
		c.mu.RUnlock()
		return nil
	}
	g := c.gen
	coord := c.coord
	c.mu.RUnlock()

	snap, err := c.fetcher.Fetch(ctx, coord.Latitude, coord.Longitude)
	if err != nil {
		return fmt.Errorf("refresh fetch: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gen != g {
		return nil
	}
	c.snapshot = snap
	return nil
}

// begin starts a new generation: newer operations own the loading flag and
// the final state from here on.
func (c *Controller) begin(s State) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	c.state = s
	c.loading = true
	c.errMsg = ""
	return c.gen
}

func (c *Controller) transition(g uint64, s State) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gen != g {
		return
	}
	c.state = s
}

func (c *Controller) commit(g uint64, coord geo.Coordinate, snap *weather.Snapshot, label string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gen != g {
		return
	}
	c.state = StateReady
	c.coord = coord
	c.snapshot = snap
	c.city = label
	c.errMsg = ""
	c.loading = false
}

func (c *Controller) fail(g uint64, msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gen != g {
		return
	}
	c.state = StateError
	c.errMsg = msg
	c.loading = false
}

// View is the dashboard's presentation-ready state.
type View struct {
	State    State             `json:"state"`
	Loading  bool              `json:"loading"`
	City     string            `json:"city,omitempty"`
	Error    string            `json:"error,omitempty"`
	Snapshot *weather.Snapshot `json:"snapshot,omitempty"`
}

// View returns a consistent copy of the current dashboard state.
func (c *Controller) View() View {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return View{
		State:    c.state,
		Loading:  c.loading,
		City:     c.city,
		Error:    c.errMsg,
		Snapshot: c.snapshot,
	}
}
