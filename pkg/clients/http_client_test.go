package clients

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "PortOne test-secret", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"PAID"}`))
	}))
	defer srv.Close()

	headers := http.Header{}
	headers.Set("Authorization", "PortOne test-secret")

	client := NewHTTPClient()
	statusCode, body, respHeaders, err := client.Get(srv.URL, headers)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, statusCode)
	assert.JSONEq(t, `{"status":"PAID"}`, string(body))
	assert.Equal(t, "application/json", respHeaders.Get("Content-Type"))
}

func TestGetInvalidURL(t *testing.T) {
	client := NewHTTPClient()

	_, _, _, err := client.Get("http://\x00invalid", nil)
	assert.Error(t, err)
}

func TestGetConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := NewHTTPClient()
	_, _, _, err := client.Get(srv.URL, nil)
	assert.Error(t, err)
}
