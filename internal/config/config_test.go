package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	unsetEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "avatar-cockpit", cfg.ServiceName)
	assert.Equal(t, 3000, cfg.HTTPPort)
	assert.Equal(t, ":3000", cfg.Addr())
	assert.Equal(t, "default-room", cfg.LiveKitRoomName)
	assert.Equal(t, 6*time.Hour, cfg.LiveKitTokenTTL)
	assert.Empty(t, cfg.LiveKitURL)
	assert.Empty(t, cfg.LiveKitAPIKey)
	assert.Empty(t, cfg.CartesiaFaceID)
	assert.False(t, cfg.AuthEnabled)
}

func TestLoadMissingSecretsDoNotFailStartup(t *testing.T) {
	unsetEnv(t)
	t.Setenv("CARTESIA_FACE_ID", "face-1")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "face-1", cfg.CartesiaFaceID)
	assert.Empty(t, cfg.CartesiaAPIKey)
}

func TestLoadExplicitValues(t *testing.T) {
	unsetEnv(t)
	t.Setenv("PORT", "8080")
	t.Setenv("LIVEKIT_URL", "https://livekit.example.com")
	t.Setenv("LIVEKIT_API_KEY", "devkey")
	t.Setenv("LIVEKIT_API_SECRET", "secret")
	t.Setenv("LIVEKIT_ROOM_NAME", "cockpit")
	t.Setenv("LIVEKIT_TOKEN_TTL", "30m")
	t.Setenv("CARTESIA_FACE_RENDER_URL", "https://cdn.example.com/{faceId}.png")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "https://livekit.example.com", cfg.LiveKitURL)
	assert.Equal(t, "devkey", cfg.LiveKitAPIKey)
	assert.Equal(t, "secret", cfg.LiveKitAPISecret)
	assert.Equal(t, "cockpit", cfg.LiveKitRoomName)
	assert.Equal(t, 30*time.Minute, cfg.LiveKitTokenTTL)
	assert.Equal(t, "https://cdn.example.com/{faceId}.png", cfg.CartesiaFaceRenderURL)
}

func TestLoadAuthRequiresIssuerAudienceAndJWKS(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{
			name:    "missing issuer",
			env:     map[string]string{"AUTH_ENABLED": "true"},
			wantErr: "ISSUER is required",
		},
		{
			name:    "missing audience",
			env:     map[string]string{"AUTH_ENABLED": "true", "ISSUER": "https://kc/realms/jan"},
			wantErr: "AUDIENCE is required",
		},
		{
			name: "missing jwks",
			env: map[string]string{
				"AUTH_ENABLED": "true",
				"ISSUER":       "https://kc/realms/jan",
				"AUDIENCE":     "account",
			},
			wantErr: "JWKS_URL is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unsetEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadRejectsNonPositiveTTL(t *testing.T) {
	unsetEnv(t)
	t.Setenv("LIVEKIT_TOKEN_TTL", "0s")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadRejectsSampleRatioOutOfRange(t *testing.T) {
	unsetEnv(t)
	t.Setenv("OTEL_TRACES_SAMPLE_RATIO", "1.5")

	_, err := Load()
	require.Error(t, err)
}

func unsetEnv(t *testing.T) {
	t.Helper()
	keys := []string{
		"SERVICE_NAME",
		"ENVIRONMENT",
		"PORT",
		"LOG_LEVEL",
		"LOG_FORMAT",
		"SHUTDOWN_TIMEOUT",
		"STATIC_DIR",
		"CONFIG_FILE",
		"OTEL_ENABLED",
		"OTEL_EXPORTER_OTLP_ENDPOINT",
		"OTEL_TRACES_SAMPLE_RATIO",
		"OTEL_METRIC_EXPORT_INTERVAL",
		"AUTH_ENABLED",
		"ISSUER",
		"AUDIENCE",
		"JWKS_URL",
		"LIVEKIT_URL",
		"LIVEKIT_API_KEY",
		"LIVEKIT_API_SECRET",
		"LIVEKIT_ROOM_NAME",
		"LIVEKIT_TOKEN_TTL",
		"CARTESIA_API_KEY",
		"CARTESIA_VOICE_ID",
		"CARTESIA_FACE_ID",
		"CARTESIA_API_URL",
		"CARTESIA_FACE_RENDER_PATH",
		"CARTESIA_FACE_RENDER_URL",
	}
	for _, key := range keys {
		// Setenv registers the restore; Unsetenv makes the variable truly absent.
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}
