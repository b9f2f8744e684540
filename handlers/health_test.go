package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/vote-api/db"
	"github.com/danielhkuo/vote-api/models"
	"github.com/danielhkuo/vote-api/testutil"
)

func TestHealthHealthy(t *testing.T) {
	store := testutil.SetupTestDB(t)
	handler := NewHealthHandler(store)

	w := httptest.NewRecorder()
	handler.Check(w, httptest.NewRequest("GET", "/health", nil))

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.HealthResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Status != "healthy" || resp.Database != "connected" {
		t.Errorf("Expected healthy/connected, got %+v", resp)
	}
	if resp.Error != "" {
		t.Errorf("Expected no error field, got %q", resp.Error)
	}
}

func TestHealthUnreachable(t *testing.T) {
	store, err := db.Open(testutil.GetUnreachableConfig(5), nil)
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	handler := NewHealthHandler(store)

	w := httptest.NewRecorder()
	handler.Check(w, httptest.NewRequest("GET", "/health", nil))

	testutil.AssertStatus(t, w, http.StatusInternalServerError)

	var resp models.HealthResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Status != "unhealthy" {
		t.Errorf("Expected unhealthy, got %q", resp.Status)
	}
	if resp.Error == "" {
		t.Error("Expected error message")
	}
	if resp.Database != "" {
		t.Errorf("Expected no database field, got %q", resp.Database)
	}
}

func TestHealthReportsErrorText(t *testing.T) {
	handler := NewHealthHandler(&fakeStore{pingErr: errors.New("too many clients")})

	w := httptest.NewRecorder()
	handler.Check(w, httptest.NewRequest("GET", "/health", nil))

	var resp models.HealthResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Error != "too many clients" {
		t.Errorf("Expected error text passed through, got %q", resp.Error)
	}
}

func TestHello(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		headers map[string]string
	}{
		{"plain", "/api", nil},
		{"query parameters", "/api?vote=a&debug=1", nil},
		{"headers", "/api", map[string]string{"Accept": "text/html", "X-Custom": "1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.path, nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			w := httptest.NewRecorder()
			Hello(w, req)

			testutil.AssertStatus(t, w, http.StatusOK)
			var resp models.MessageResponse
			testutil.AssertJSON(t, w, &resp)
			if resp.Message != "Hello, I am the api service" {
				t.Errorf("Unexpected message %q", resp.Message)
			}
		})
	}
}
