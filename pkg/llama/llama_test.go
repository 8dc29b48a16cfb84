package llama

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProtocolsDecodesLenient(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/protocols", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"name": "Usual Protocol", "symbol": "USUALX", "tvl": 250000000, "audits": "2",
			 "audit_links": ["https://audits.example/usual"], "twitter": "usualmoney",
			 "chain": "Ethereum", "category": "RWA"},
			{"name": "Mystery", "symbol": "MST", "tvl": null},
			{"name": "Weird", "symbol": "WRD", "tvl": "not-a-number", "audits": 3}
		]`))
	}))
	defer server.Close()

	client := NewClient(Config{BaseUrl: server.URL})
	protocols, err := client.Protocols(context.Background())
	require.NoError(t, err)
	require.Len(t, protocols, 3)

	assert.Equal(t, "Usual Protocol", protocols[0].Name)
	assert.Equal(t, float64(250000000), protocols[0].TVL)
	assert.Equal(t, []string{"https://audits.example/usual"}, protocols[0].AuditLinks)
	assert.Equal(t, "usualmoney", protocols[0].Twitter)

	// missing and null fields default, never fail
	assert.Nil(t, protocols[1].TVL)
	assert.Empty(t, protocols[1].Twitter)
	assert.Equal(t, "not-a-number", protocols[2].TVL)
	assert.Equal(t, float64(3), protocols[2].Audits)
}

func TestProtocolsNonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(Config{BaseUrl: server.URL})
	_, err := client.Protocols(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestProtocolsTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(Config{BaseUrl: server.URL})
	_, err := client.Protocols(context.Background())
	require.Error(t, err)
}

func TestProtocolsMalformedPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not": "an array"}`))
	}))
	defer server.Close()

	client := NewClient(Config{BaseUrl: server.URL})
	_, err := client.Protocols(context.Background())
	require.Error(t, err)
}
