package search

import (
	"context"
	"log"
	"sync"
	"sync/atomic"
	"time"
	"unicode/utf8"

	"skycast/internal/geo"
)

// SearchFunc is the underlying geocoding lookup a session debounces.
type SearchFunc func(ctx context.Context, query string) ([]geo.Candidate, error)

// Results is the outcome of the most recent completed search.
type Results struct {
	Query      string          `json:"query"`
	Candidates []geo.Candidate `json:"candidates"`
	Failed     bool            `json:"failed"`
}

// Session feeds free-text input through a debouncer into a search function.
// Each SetQuery bumps a generation counter; a search response that arrives
// after a newer query has superseded it is discarded, so a slow response can
// never overwrite the results of a fresher one.
type Session struct {
	search   SearchFunc
	debounce *Debouncer
	timeout  time.Duration
	gen      atomic.Uint64

	mu      sync.RWMutex
	results Results
}

func NewSession(search SearchFunc, delay time.Duration) *Session {
	return &Session{
		search:   search,
		debounce: NewDebouncer(delay),
		timeout:  10 * time.Second,
	}
}

// SetQuery registers the latest input. Queries shorter than 2 characters
// cancel any pending search and clear the results immediately, without a
// network call.
func (s *Session) SetQuery(query string) {
	g := s.gen.Add(1)

	if utf8.RuneCountInString(query) < 2 {
		s.debounce.Cancel()
		s.publish(g, Results{Query: query, Candidates: []geo.Candidate{}})
		return
	}

	s.debounce.Trigger(func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()

		candidates, err := s.search(ctx, query)
		if err != nil {
			log.Printf("city search failed for %q: %v", query, err)
			s.publish(g, Results{Query: query, Candidates: []geo.Candidate{}, Failed: true})
			return
		}
		s.publish(g, Results{Query: query, Candidates: candidates})
	})
}

// publish stores results only if no newer query has superseded generation
// g. The check runs under the lock so a stale response can never slip in
// between a newer generation's check and its write.
func (s *Session) publish(g uint64, r Results) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen.Load() != g {
		return
	}
	s.results = r
}

// Results returns the latest completed search outcome.
func (s *Session) Results() Results {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.results
}

// Close cancels any pending search.
func (s *Session) Close() {
	s.gen.Add(1)
	s.debounce.Cancel()
}
