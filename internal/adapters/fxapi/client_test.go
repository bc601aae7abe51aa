package fxapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchRate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/2025-06-15", r.URL.Path)
		assert.Equal(t, "USD", r.URL.Query().Get("base"))
		assert.Equal(t, "THB", r.URL.Query().Get("symbols"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"base":"USD","rates":{"THB":36.45}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	date := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	fetched, err := client.FetchRate(context.Background(), "USD", date)
	require.NoError(t, err)
	assert.Equal(t, "36.45", fetched.Rate.String())
	assert.Equal(t, "fxapi", fetched.Source)
}

func TestFetchRate_MissingSymbol(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"base":"USD","rates":{}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	_, err := client.FetchRate(context.Background(), "USD", time.Now())
	assert.ErrorContains(t, err, "missing THB")
}

func TestFetchRate_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	_, err := client.FetchRate(context.Background(), "EUR", time.Now())
	assert.ErrorContains(t, err, "status 502")
}
