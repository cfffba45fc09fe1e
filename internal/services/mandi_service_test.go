package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"krishi-nirnay/internal/httpclient"
	"krishi-nirnay/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func newMandiService(baseURL, apiKey string) *MandiService {
	cfg := &stubConfig{upstream: types.UpstreamConfig{
		MandiBaseURL:        baseURL,
		MandiTimeoutSeconds: 5,
		MandiAPIKey:         apiKey,
		MandiResourceID:     "resource-1",
	}}
	return NewMandiService(cfg, httpclient.NewManager())
}

func TestMandiService_NoAPIKeyServesFallback(t *testing.T) {
	t.Parallel()

	svc := newMandiService("http://unused.invalid", "")

	result, err := svc.Fetch(context.Background(), 3)
	require.NoError(t, err)

	assert.Equal(t, SourceFallback, result.Source)
	// The fallback table is served whole regardless of limit.
	assert.Len(t, result.Prices, 8)
	assert.Equal(t, "Rice", gjson.GetBytes(result.Prices[0], "commodity").String())
	assert.Equal(t, int64(3200), gjson.GetBytes(result.Prices[0], "modal_price").Int())
}

func TestMandiService_ExternalRecords(t *testing.T) {
	t.Parallel()

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/resource-1", r.URL.Path)
		assert.Equal(t, "secret", r.URL.Query().Get("api-key"))
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.Equal(t, "2", r.URL.Query().Get("limit"))
		w.Write([]byte(`{"records":[
			{"commodity":"Wheat","market":"Indore","modal_price":"2450"},
			{"commodity":"Rice","market":"Delhi","modal_price":"3300"},
			{"commodity":"Maize","market":"Hubli","modal_price":"2150"}
		]}`))
	}))
	defer upstream.Close()

	svc := newMandiService(upstream.URL, "secret")

	result, err := svc.Fetch(context.Background(), 2)
	require.NoError(t, err)

	assert.Equal(t, SourceExternal, result.Source)
	require.Len(t, result.Prices, 2)

	// Records keep their upstream shape, including string-typed prices.
	assert.Equal(t, "Wheat", gjson.GetBytes(result.Prices[0], "commodity").String())
	assert.Equal(t, "2450", gjson.GetBytes(result.Prices[0], "modal_price").String())
}

func TestMandiService_AlternateRecordKeys(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{name: "capitalized Records", body: `{"Records":[{"commodity":"Wheat"}]}`},
		{name: "data array", body: `{"data":[{"commodity":"Wheat"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			}))
			defer upstream.Close()

			svc := newMandiService(upstream.URL, "secret")

			result, err := svc.Fetch(context.Background(), 5)
			require.NoError(t, err)
			assert.Equal(t, SourceExternal, result.Source)
			require.Len(t, result.Prices, 1)
		})
	}
}

func TestMandiService_UpstreamFailureServesFallback(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			},
		},
		{
			name: "invalid json",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"records":`))
			},
		},
		{
			name: "no records array",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"message":"rate limited"}`))
			},
		},
		{
			name: "empty records",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"records":[]}`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			upstream := httptest.NewServer(tt.handler)
			defer upstream.Close()

			svc := newMandiService(upstream.URL, "secret")

			result, err := svc.Fetch(context.Background(), 5)
			require.NoError(t, err)
			assert.Equal(t, SourceFallback, result.Source)
			assert.Len(t, result.Prices, 8)
		})
	}
}
