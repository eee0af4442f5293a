package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/soundprediction/triplo/pkg/config"
	"github.com/soundprediction/triplo/pkg/factstore"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host: "localhost",
			Port: 8080,
			Mode: "test",
		},
	}
}

func TestNew(t *testing.T) {
	cfg := testConfig()
	store := factstore.NewStore()

	server := New(cfg, store, nil)
	if server == nil {
		t.Fatal("expected non-nil server")
	}
	if server.config != cfg {
		t.Error("expected config to be set")
	}
	if server.store != store {
		t.Error("expected store to be set")
	}
}

func TestSetup(t *testing.T) {
	server := New(testConfig(), factstore.NewStore(), nil)
	server.Setup()

	if server.router == nil {
		t.Error("expected router to be initialized")
	}
	if server.server == nil {
		t.Error("expected http.Server to be initialized")
	}

	expectedAddr := "localhost:8080"
	if server.server.Addr != expectedAddr {
		t.Errorf("expected addr %s, got %s", expectedAddr, server.server.Addr)
	}
}

func TestRoutes(t *testing.T) {
	store := factstore.NewStore()
	store.AddFact("A", "knows", "B")

	server := New(testConfig(), store, nil)
	server.Setup()

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/health", http.StatusOK},
		{http.MethodGet, "/live", http.StatusOK},
		{http.MethodGet, "/api/v1/facts", http.StatusOK},
		{http.MethodGet, "/api/v1/stats", http.StatusOK},
		{http.MethodGet, "/nope", http.StatusNotFound},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(tt.method, tt.path, nil)
		w := httptest.NewRecorder()
		server.router.ServeHTTP(w, req)
		if w.Code != tt.want {
			t.Errorf("%s %s: expected %d, got %d", tt.method, tt.path, tt.want, w.Code)
		}
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	server := New(testConfig(), factstore.NewStore(), nil)
	server.Setup()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	server.router.ServeHTTP(w, req)

	if w.Header().Get("X-Request-ID") == "" {
		t.Error("expected generated X-Request-ID header")
	}

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "caller-id")
	w = httptest.NewRecorder()
	server.router.ServeHTTP(w, req)

	if got := w.Header().Get("X-Request-ID"); got != "caller-id" {
		t.Errorf("expected caller-provided request id, got %q", got)
	}
}

func TestCORSPreflights(t *testing.T) {
	server := New(testConfig(), factstore.NewStore(), nil)
	server.Setup()

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/query", nil)
	w := httptest.NewRecorder()
	server.router.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("expected 204 for preflight, got %d", w.Code)
	}
	if w.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("expected CORS allow-origin header")
	}
}
