package geo

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"skycast/internal/httpclient"
)

func newSearchServer(t *testing.T, handler http.HandlerFunc) (*SearchClient, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewSearchClient(httpclient.New(srv.Client()), srv.URL), srv
}

func TestSearchShortQuerySkipsNetwork(t *testing.T) {
	var calls atomic.Int32
	client, _ := newSearchServer(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	})

	// "東" is one character but three bytes; the guard counts characters.
	for _, q := range []string{"", "L", "x", "東", "é"} {
		got, err := client.Search(context.Background(), q)
		if err != nil {
			t.Fatalf("Search(%q) returned error: %v", q, err)
		}
		if got == nil || len(got) != 0 {
			t.Fatalf("Search(%q) = %v, want empty non-nil slice", q, got)
		}
	}
	if n := calls.Load(); n != 0 {
		t.Fatalf("expected no network calls for short queries, got %d", n)
	}
}

func TestSearchReturnsCandidatesInOrder(t *testing.T) {
	client, _ := newSearchServer(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("name") != "London" || q.Get("count") != "5" ||
			q.Get("language") != "en" || q.Get("format") != "json" {
			t.Errorf("unexpected query parameters: %v", q)
		}
		w.Write([]byte(`{"results":[
			{"id":2643743,"name":"London","latitude":51.50853,"longitude":-0.12574,"country":"United Kingdom","country_code":"GB","admin1":"England","timezone":"Europe/London","population":7556900},
			{"id":6058560,"name":"London","latitude":42.98339,"longitude":-81.23304,"country":"Canada","country_code":"CA","admin1":"Ontario","timezone":"America/Toronto"}
		]}`))
	})

	got, err := client.Search(context.Background(), "London")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(got))
	}
	if got[0].Country != "United Kingdom" || got[1].Country != "Canada" {
		t.Fatalf("provider order not preserved: %+v", got)
	}
	if c := got[0].Coordinate(); c.Latitude != 51.50853 || c.Longitude != -0.12574 {
		t.Fatalf("unexpected coordinate: %+v", c)
	}
}

func TestSearchMissingResultsArray(t *testing.T) {
	client, _ := newSearchServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"generationtime_ms":0.5}`))
	})

	got, err := client.Search(context.Background(), "Nowhereville")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v", got)
	}
}

func TestSearchTwoByteCharactersHitNetwork(t *testing.T) {
	var calls atomic.Int32
	client, _ := newSearchServer(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if got := r.URL.Query().Get("name"); got != "東京" {
			t.Errorf("name = %q, want 東京", got)
		}
		w.Write([]byte(`{"results":[{"id":1850144,"name":"Tokyo","latitude":35.6895,"longitude":139.69171,"country":"Japan"}]}`))
	})

	got, err := client.Search(context.Background(), "東京")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if calls.Load() != 1 || len(got) != 1 {
		t.Fatalf("expected one call and one candidate, got %d calls, %d candidates", calls.Load(), len(got))
	}
}

func TestSearchBadStatus(t *testing.T) {
	client, _ := newSearchServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.Search(context.Background(), "London")
	if !errors.Is(err, httpclient.ErrBadStatus) {
		t.Fatalf("expected ErrBadStatus, got %v", err)
	}
}
