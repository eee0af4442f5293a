package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/soundprediction/triplo/pkg/factstore"
	"github.com/soundprediction/triplo/pkg/query"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	store := factstore.NewStore()
	store.AddFact("Hypertension", "treated_by", "ACE Inhibitor")
	store.AddFact("Hypertension", "treated_by", "Diuretic")

	r := gin.New()
	queryHandler := NewQueryHandler(store)
	factsHandler := NewFactsHandler(store)
	healthHandler := NewHealthHandler(store)
	r.POST("/api/v1/query", queryHandler.Query)
	r.GET("/api/v1/facts", factsHandler.ListFacts)
	r.GET("/api/v1/stats", factsHandler.Stats)
	r.GET("/health", healthHandler.HealthCheck)
	return r
}

func postQuery(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/query", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestQueryForward(t *testing.T) {
	r := newTestRouter()

	w := postQuery(t, r, `{"queryType":"retrieve_fact","subject":"Hypertension","relation":"treated_by"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp query.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Response) != 2 {
		t.Fatalf("expected 2 objects, got %d", len(resp.Response))
	}
	if resp.Response[0] != "ACE Inhibitor" || resp.Response[1] != "Diuretic" {
		t.Errorf("unexpected objects: %v", resp.Response)
	}
}

func TestQueryReverse(t *testing.T) {
	r := newTestRouter()

	w := postQuery(t, r, `{"queryType":"retrieve_fact_reverse","object":"Diuretic","relation":"treated_by"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var resp query.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Response) != 1 || resp.Response[0] != "Hypertension" {
		t.Errorf("unexpected subjects: %v", resp.Response)
	}
}

func TestQueryErrors(t *testing.T) {
	r := newTestRouter()

	tests := []struct {
		name        string
		body        string
		wantError   string
		wantDetails bool
	}{
		{
			name:        "malformed JSON",
			body:        `{"queryType":`,
			wantError:   query.ErrInvalidJSON,
			wantDetails: true,
		},
		{
			name:      "missing relation",
			body:      `{"queryType":"retrieve_fact","subject":"Hypertension"}`,
			wantError: query.ErrForwardFieldsReqd,
		},
		{
			name:      "missing object",
			body:      `{"queryType":"retrieve_fact_reverse","relation":"treated_by"}`,
			wantError: query.ErrReverseFieldsReqd,
		},
		{
			name:      "unsupported query type",
			body:      `{"queryType":"drop_everything"}`,
			wantError: query.ErrUnsupportedType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postQuery(t, r, tt.body)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected status 400, got %d", w.Code)
			}

			var errResp query.ErrorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &errResp); err != nil {
				t.Fatalf("failed to decode error response: %v", err)
			}
			if errResp.Error != tt.wantError {
				t.Errorf("expected error %q, got %q", tt.wantError, errResp.Error)
			}
			if tt.wantDetails && errResp.Details == "" {
				t.Error("expected decoder details in error response")
			}
		})
	}
}

func TestQueryNoMatchIsOK(t *testing.T) {
	r := newTestRouter()

	w := postQuery(t, r, `{"queryType":"retrieve_fact","subject":"Unknown","relation":"treated_by"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200 for no-match query, got %d", w.Code)
	}

	var resp query.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Response) != 0 {
		t.Errorf("expected empty response, got %v", resp.Response)
	}
}
