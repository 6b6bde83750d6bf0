package exchange

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Graphi-api/pkg/config"
)

func TestProvider_Latest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/latest", r.URL.Path)
		assert.Equal(t, "USD", r.URL.Query().Get("base"))
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"base":"USD","timestamp":1700000000,"rates":{"NGN":1500.25,"EUR":"0.9"}}`))
	}))
	defer srv.Close()

	p := NewProvider(config.RatesConfig{ProviderURL: srv.URL + "/", APIKey: "secret"})
	rates, asOf, err := p.Latest(context.Background(), "USD")
	require.NoError(t, err)

	assert.Len(t, rates, 2)
	assert.Equal(t, "1500.25", rates["NGN"].String())
	assert.Equal(t, "0.9", rates["EUR"].String())
	assert.Equal(t, time.Unix(1700000000, 0).UTC(), asOf)
}

func TestProvider_Latest_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"invalid key"}`))
	}))
	defer srv.Close()

	p := NewProvider(config.RatesConfig{ProviderURL: srv.URL})
	_, _, err := p.Latest(context.Background(), "USD")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status=401")
	assert.Contains(t, err.Error(), "invalid key")
}

func TestProvider_Latest_BaseMismatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"base":"EUR","rates":{"NGN":1600}}`))
	}))
	defer srv.Close()

	p := NewProvider(config.RatesConfig{ProviderURL: srv.URL})
	_, _, err := p.Latest(context.Background(), "USD")
	assert.Error(t, err)
}
