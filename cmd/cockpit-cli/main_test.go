package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/janhq/avatar-cockpit/internal/domain/grant"
	"github.com/janhq/avatar-cockpit/internal/infrastructure/livekit"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func signedToken(t *testing.T, identity, room string) string {
	t.Helper()
	now := time.Now().Truncate(time.Second)
	token, err := livekit.NewTokenSigner().Sign(&grant.Grant{
		Identity:     identity,
		Room:         room,
		Capabilities: grant.AllCapabilities(),
		Issuer:       "APIkey",
		IssuedAt:     now,
		ExpiresAt:    now.Add(time.Hour),
		TokenID:      identity,
	}, "secret")
	require.NoError(t, err)
	return token
}

func tokenServer(t *testing.T, status int, body any) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/token", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestTokenCheckSucceeds(t *testing.T) {
	server := tokenServer(t, http.StatusOK, map[string]string{
		"token": signedToken(t, "test-user", "test-room"),
		"url":   "ws://localhost:7880/",
		"room":  "test-room",
	})

	out, err := execute(t, "token", "check", "--server", server.URL)

	require.NoError(t, err)
	assert.Contains(t, out, "Status Code: 200")
	assert.Contains(t, out, "Token endpoint is working")
	assert.Contains(t, out, "- Subject: test-user")
}

func TestTokenCheckFailures(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    any
		wantErr string
	}{
		{"server error", http.StatusInternalServerError, map[string]any{"error": map[string]string{"message": "boom"}}, "returned 500"},
		{"missing token", http.StatusOK, map[string]string{"room": "test-room"}, "no token"},
		{"wrong room", http.StatusOK, map[string]string{"token": signedToken(t, "test-user", "other"), "room": "other"}, "requested room"},
		{"wrong subject", http.StatusOK, map[string]string{"token": signedToken(t, "someone", "test-room"), "room": "test-room"}, "token subject"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := tokenServer(t, tt.status, tt.body)

			_, err := execute(t, "token", "check", "--server", server.URL)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfigSchemaToFile(t *testing.T) {
	path := t.TempDir() + "/schema.json"

	out, err := execute(t, "config", "schema", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Generated")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "LIVEKIT_TOKEN_TTL")
}

func TestConfigShowMasksSecrets(t *testing.T) {
	t.Setenv("LIVEKIT_API_SECRET", "supersecretvalue")
	t.Setenv("LIVEKIT_ROOM_NAME", "studio")
	t.Setenv("AUTH_ENABLED", "false")

	out, err := execute(t, "config", "show", "--format", "json")
	require.NoError(t, err)

	var values map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &values))
	assert.Equal(t, "studio", values["LIVEKIT_ROOM_NAME"])
	assert.Equal(t, "su************ue", values["LIVEKIT_API_SECRET"])
	assert.NotContains(t, out, "supersecretvalue")
}

func TestMask(t *testing.T) {
	assert.Equal(t, "", mask(""))
	assert.Equal(t, "****", mask("abc"))
	assert.Equal(t, "ab**ef", mask("abcdef"))
}
