package registry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestTagExists(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		want       bool
	}{
		{"200 means present", http.StatusOK, true},
		{"204 is still success", http.StatusNoContent, true},
		{"404 means absent", http.StatusNotFound, false},
		{"500 means absent", http.StatusInternalServerError, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotPath string
			hub := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				w.WriteHeader(tt.statusCode)
			}))
			defer hub.Close()

			client := NewClientWithEndpoints(hub.URL, hub.URL, hub.URL)
			exists, err := client.TagExists(context.Background(), "library/ubuntu", "20.04")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if exists != tt.want {
				t.Errorf("expected %v, got %v", tt.want, exists)
			}
			if gotPath != "/v2/repositories/library/ubuntu/tags/20.04/" {
				t.Errorf("unexpected request path: %s", gotPath)
			}
		})
	}
}

func TestTagExists_TransportError(t *testing.T) {
	hub := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	hub.Close()

	client := NewClientWithEndpoints(hub.URL, hub.URL, hub.URL)
	if _, err := client.TagExists(context.Background(), "library/ubuntu", "20.04"); err == nil {
		t.Error("expected an error when the registry is unreachable")
	}
}

func TestManifestDigest(t *testing.T) {
	auth := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/token" {
			t.Errorf("unexpected auth path: %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("scope"); got != "repository:library/ubuntu:pull" {
			t.Errorf("unexpected scope: %s", got)
		}
		if got := r.URL.Query().Get("service"); got != "registry.docker.io" {
			t.Errorf("unexpected service: %s", got)
		}
		w.Header().Set("Content-Type", "application/json")
		if _, err := w.Write([]byte(`{"token":"sometoken"}`)); err != nil {
			t.Errorf("failed to write token response: %v", err)
		}
	}))
	defer auth.Close()

	reg := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v2/library/ubuntu/manifests/20.04" {
			t.Errorf("unexpected manifest path: %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer sometoken" {
			t.Errorf("unexpected authorization header: %s", got)
		}
		if got := r.Header.Get("Accept"); got != "application/vnd.docker.distribution.manifest.v2+json" {
			t.Errorf("unexpected accept header: %s", got)
		}
		w.Header().Set("Content-Type", "application/json")
		if _, err := w.Write([]byte(`{"config":{"digest":"sha256:abc123"}}`)); err != nil {
			t.Errorf("failed to write manifest response: %v", err)
		}
	}))
	defer reg.Close()

	client := NewClientWithEndpoints("http://unused.invalid", auth.URL, reg.URL)
	digest, err := client.ManifestDigest(context.Background(), "library/ubuntu", "20.04")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if digest != "sha256:abc123" {
		t.Errorf("unexpected digest: %s", digest)
	}
}

func TestManifestDigest_TokenFailure(t *testing.T) {
	auth := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer auth.Close()

	client := NewClientWithEndpoints("http://unused.invalid", auth.URL, "http://unused.invalid")
	if _, err := client.ManifestDigest(context.Background(), "library/ubuntu", "20.04"); err == nil {
		t.Error("expected an error when the token exchange fails")
	}
}

func TestManifestDigest_ManifestFailure(t *testing.T) {
	auth := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := w.Write([]byte(`{"token":"sometoken"}`)); err != nil {
			t.Errorf("failed to write token response: %v", err)
		}
	}))
	defer auth.Close()

	reg := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer reg.Close()

	client := NewClientWithEndpoints("http://unused.invalid", auth.URL, reg.URL)
	if _, err := client.ManifestDigest(context.Background(), "library/ubuntu", "20.04"); err == nil {
		t.Error("expected an error when the manifest fetch fails")
	}
}
