package httpserver

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/QuantumPodLabs/quantumpod/internal/logstore"
)

func TestUnknownPathReturnsJSON404(t *testing.T) {
	s := NewServer(NewAPI(logstore.NewMemory(8), nil, false))

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
	assert.JSONEq(t, `{"error":"not found"}`, rec.Body.String())
}

func TestLivenessBanner(t *testing.T) {
	s := NewServer(NewAPI(logstore.NewMemory(8), nil, false))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "QuantumPod")
}

func TestParseListLimit(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"", defaultListLimit},
		{"abc", defaultListLimit},
		{"12.5", defaultListLimit},
		{"0", minListLimit},
		{"-7", minListLimit},
		{"1", 1},
		{"200", 200},
		{"201", maxListLimit},
		{"9999", maxListLimit},
		{"75", 75},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseListLimit(tt.raw), "limit=%q", tt.raw)
	}
}
