package telemetry

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPSender_Send(t *testing.T) {
	var (
		gotPath        string
		gotAPIKey      string
		gotContentType string
		gotBody        []byte
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAPIKey = r.Header.Get("X-API-Key")
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	s := newHTTPSender(srv.URL, "k-123")
	err := s.Send(context.Background(), &Report{
		Message:     "boom",
		Level:       LevelError,
		Timestamp:   1735689600000,
		Environment: "production",
		Tags:        map[string]string{"service": "checkout"},
		Breadcrumbs: []Breadcrumb{},
	})
	require.NoError(t, err)

	assert.Equal(t, "/api/errors", gotPath)
	assert.Equal(t, "k-123", gotAPIKey)
	assert.Equal(t, "application/json", gotContentType)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(gotBody, &decoded))
	assert.Equal(t, "boom", decoded["message"])
	assert.Equal(t, "error", decoded["level"])
	assert.Equal(t, float64(1735689600000), decoded["timestamp"])
	assert.Equal(t, "production", decoded["environment"])
}

func TestHTTPSender_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad key", http.StatusUnauthorized)
	}))
	defer srv.Close()

	s := newHTTPSender(srv.URL, "wrong")
	err := s.Send(context.Background(), &Report{Message: "boom", Level: LevelError})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestHTTPSender_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	s := newHTTPSender(srv.URL, "k-123")
	err := s.Send(context.Background(), &Report{Message: "boom", Level: LevelError})
	assert.Error(t, err)
}

func TestClient_SendFailureIsSilent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := New(Config{APIKey: "k-123", Endpoint: srv.URL})

	// Capture must not panic or surface the failure in any way.
	assert.NotPanics(t, func() {
		c.CaptureMessage("lost", LevelInfo)
	})
}
