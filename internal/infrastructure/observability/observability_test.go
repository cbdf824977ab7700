package observability

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/janhq/avatar-cockpit/internal/config"
)

func TestSplitEndpoint(t *testing.T) {
	tests := []struct {
		raw          string
		wantEndpoint string
		wantInsecure bool
	}{
		{"http://otel:4318", "otel:4318", true},
		{"https://otel.example.com", "otel.example.com", false},
		{"otel:4318", "otel:4318", true},
		{" http://otel:4318/ ", "otel:4318", true},
	}

	for _, tt := range tests {
		endpoint, insecure := splitEndpoint(tt.raw)
		assert.Equal(t, tt.wantEndpoint, endpoint, tt.raw)
		assert.Equal(t, tt.wantInsecure, insecure, tt.raw)
	}
}

func TestSetupWithTracingDisabled(t *testing.T) {
	cfg := &config.Config{ServiceName: "avatar-cockpit", Environment: "test", TraceSampleRatio: 1}

	shutdown, err := Setup(context.Background(), cfg, zerolog.Nop())
	require.NoError(t, err)
	require.NotNil(t, shutdown)
	assert.NoError(t, shutdown(context.Background()))
}

func TestSetupIgnoresEndpointWhenTracingDisabled(t *testing.T) {
	cfg := &config.Config{
		ServiceName:   "avatar-cockpit",
		EnableTracing: false,
		OTLPEndpoint:  "http://127.0.0.1:1",
	}

	shutdown, err := Setup(context.Background(), cfg, zerolog.Nop())
	require.NoError(t, err)

	// Nothing was exported, so shutdown does not try to reach the endpoint.
	assert.NoError(t, shutdown(context.Background()))
}
