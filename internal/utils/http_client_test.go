package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/bitable-schema/internal/logger"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_NotNil(t *testing.T) {
	client := NewHTTPClient("http://example.com", logger.Nop())

	require.NotNil(t, client)
	require.NotNil(t, client.Client)
}

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient("http://example.com", logger.Nop())
	client2 := NewHTTPClient("http://example.com", logger.Nop())

	assert.NotSame(t, client1.Client, client2.Client)
}

func TestNewHTTPClient_TrimsTrailingSlash(t *testing.T) {
	client := NewHTTPClient("http://example.com/open-apis/", logger.Nop())
	assert.Equal(t, "http://example.com/open-apis", client.BaseURL)
}

func TestNewHTTPClient_JoinsBaseURLAndStampsRequestID(t *testing.T) {
	var gotPath, gotRequestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotRequestID = r.Header.Get(HeaderRequestID)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL+"/open-apis", logger.Nop())
	resp, err := client.R().Get("/ping")

	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode())
	assert.Equal(t, "/open-apis/ping", gotPath)
	_, err = uuid.Parse(gotRequestID)
	assert.NoError(t, err)
}

func TestNewHTTPClient_KeepsCallerRequestID(t *testing.T) {
	var gotRequestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRequestID = r.Header.Get(HeaderRequestID)
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, logger.Nop())
	_, err := client.R().SetHeader(HeaderRequestID, "fixed").Get("/")

	require.NoError(t, err)
	assert.Equal(t, "fixed", gotRequestID)
}

func TestNewRequestID_Unique(t *testing.T) {
	a, b := NewRequestID(), NewRequestID()
	assert.NotEqual(t, a, b)

	parsed, err := uuid.Parse(a)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
}
