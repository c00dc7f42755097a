package geo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"skycast/internal/httpclient"
)

func newReverseServer(t *testing.T, handler http.HandlerFunc) *ReverseClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	guarded := httpclient.NewGuarded(httpclient.New(srv.Client()), "reverse-test")
	return NewReverseClient(guarded, srv.URL)
}

func TestResolveNameLabels(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"city and country", `{"city":"London","countryName":"United Kingdom"}`, "London, United Kingdom"},
		{"locality fallback", `{"locality":"Camden","countryName":"United Kingdom"}`, "Camden, United Kingdom"},
		{"subdivision fallback", `{"principalSubdivision":"England","countryName":"United Kingdom"}`, "England, United Kingdom"},
		{"city only", `{"city":"London"}`, "London"},
		{"country only", `{"countryName":"United Kingdom"}`, "United Kingdom"},
		{"neither", `{}`, UnknownLocation},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client := newReverseServer(t, func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Query().Get("localityLanguage") != "en" {
					t.Errorf("missing localityLanguage parameter")
				}
				w.Write([]byte(tc.body))
			})

			got, err := client.ResolveName(context.Background(), 51.5, -0.12)
			if err != nil {
				t.Fatalf("ResolveName returned error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("ResolveName = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestResolveNameSwallowsBadStatus(t *testing.T) {
	client := newReverseServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	got, err := client.ResolveName(context.Background(), 51.5, -0.12)
	if err != nil {
		t.Fatalf("ResolveName returned error: %v", err)
	}
	if got != UnknownLocation {
		t.Fatalf("ResolveName = %q, want %q", got, UnknownLocation)
	}
}

func TestResolveNameSwallowsTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	guarded := httpclient.NewGuarded(httpclient.New(&http.Client{}), "reverse-down")
	client := NewReverseClient(guarded, url)

	got, err := client.ResolveName(context.Background(), 51.5, -0.12)
	if err != nil {
		t.Fatalf("ResolveName returned error: %v", err)
	}
	if got != UnknownLocation {
		t.Fatalf("ResolveName = %q, want %q", got, UnknownLocation)
	}
}
