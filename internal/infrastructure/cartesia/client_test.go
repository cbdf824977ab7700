package cartesia

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/janhq/avatar-cockpit/internal/domain/avatar"
	"github.com/janhq/avatar-cockpit/internal/utils/platformerrors"
)

func TestFetchSuccess(t *testing.T) {
	payload := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0xff}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/faces/face-1/render", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		assert.Equal(t, "image/*", r.Header.Get("Accept"))

		w.Header().Set("Content-Type", "image/webp")
		w.Write(payload)
	}))
	defer server.Close()

	asset, err := NewClient(server.Client()).Fetch(context.Background(), server.URL+"/v1/faces/face-1/render", "sk-test")
	require.NoError(t, err)

	assert.True(t, bytes.Equal(payload, asset.Payload))
	assert.Equal(t, "image/webp", asset.ContentType)
}

func TestFetchDefaultsContentType(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Suppress Go's content sniffing so the header really is absent.
		w.Header()["Content-Type"] = nil
		w.Write([]byte("img"))
	}))
	defer server.Close()

	asset, err := NewClient(nil).Fetch(context.Background(), server.URL, "sk-test")
	require.NoError(t, err)

	assert.Equal(t, avatar.DefaultContentType, asset.ContentType)
	assert.Equal(t, []byte("img"), asset.Payload)
}

func TestFetchNotFoundIsConfigurationError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no such face", http.StatusNotFound)
	}))
	defer server.Close()

	_, err := NewClient(nil).Fetch(context.Background(), server.URL, "sk-test")

	cfgErr := platformerrors.AsConfigurationError(err)
	require.NotNil(t, cfgErr)
	assert.Equal(t, http.StatusNotFound, cfgErr.StatusCode)
	assert.Nil(t, platformerrors.AsUpstreamError(err))
}

func TestFetchServerErrorIsUpstreamError(t *testing.T) {
	tests := []int{http.StatusInternalServerError, http.StatusUnauthorized, http.StatusTooManyRequests}

	for _, status := range tests {
		t.Run(http.StatusText(status), func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(status)
				w.Write([]byte(" render failed \n"))
			}))
			defer server.Close()

			_, err := NewClient(nil).Fetch(context.Background(), server.URL, "sk-test")

			upErr := platformerrors.AsUpstreamError(err)
			require.NotNil(t, upErr)
			assert.Equal(t, status, upErr.StatusCode)
			assert.Equal(t, "render failed", upErr.Body)
			assert.Nil(t, platformerrors.AsConfigurationError(err))
		})
	}
}

func TestFetchUnreachableIsUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := NewClient(nil).Fetch(context.Background(), url, "sk-test")

	upErr := platformerrors.AsUpstreamError(err)
	require.NotNil(t, upErr)
	assert.Zero(t, upErr.StatusCode)
	assert.Error(t, upErr.Err)
}

func TestFetchHonoursContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewClient(nil).Fetch(ctx, server.URL, "sk-test")
	require.ErrorIs(t, err, context.Canceled)
}
