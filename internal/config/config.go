package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds all configuration for the avatar cockpit gateway.
type Config struct {
	// Service settings
	ServiceName     string        `env:"SERVICE_NAME" envDefault:"avatar-cockpit"`
	Environment     string        `env:"ENVIRONMENT" envDefault:"development"`
	HTTPPort        int           `env:"PORT" envDefault:"3000"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat       string        `env:"LOG_FORMAT" envDefault:"console"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	StaticDir       string        `env:"STATIC_DIR"`
	ConfigFile      string        `env:"CONFIG_FILE"`

	// OpenTelemetry
	EnableTracing bool   `env:"OTEL_ENABLED" envDefault:"false"`
	OTLPEndpoint  string `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:""`
	// TraceSampleRatio is the fraction of root traces kept, 0 to 1.
	TraceSampleRatio     float64       `env:"OTEL_TRACES_SAMPLE_RATIO" envDefault:"1"`
	MetricExportInterval time.Duration `env:"OTEL_METRIC_EXPORT_INTERVAL" envDefault:"30s"`

	// Auth (Keycloak) - uses global auth vars
	AuthEnabled  bool   `env:"AUTH_ENABLED" envDefault:"false"`
	AuthIssuer   string `env:"ISSUER"`
	AuthAudience string `env:"AUDIENCE"`
	AuthJWKSURL  string `env:"JWKS_URL"`

	// LiveKit. Key and secret are checked per request, not at startup.
	LiveKitURL       string        `env:"LIVEKIT_URL"`
	LiveKitAPIKey    string        `env:"LIVEKIT_API_KEY"`
	LiveKitAPISecret string        `env:"LIVEKIT_API_SECRET"`
	LiveKitRoomName  string        `env:"LIVEKIT_ROOM_NAME" envDefault:"default-room"`
	LiveKitTokenTTL  time.Duration `env:"LIVEKIT_TOKEN_TTL" envDefault:"6h"`

	// Cartesia avatar provider
	CartesiaAPIKey         string `env:"CARTESIA_API_KEY"`
	CartesiaVoiceID        string `env:"CARTESIA_VOICE_ID"`
	CartesiaFaceID         string `env:"CARTESIA_FACE_ID"`
	CartesiaAPIURL         string `env:"CARTESIA_API_URL"`
	CartesiaFaceRenderPath string `env:"CARTESIA_FACE_RENDER_PATH"`
	CartesiaFaceRenderURL  string `env:"CARTESIA_FACE_RENDER_URL"`
}

// Load parses environment variables into Config. When CONFIG_FILE is set,
// its values fill in variables the environment leaves unset.
func Load() (*Config, error) {
	if path := strings.TrimSpace(os.Getenv(ConfigFileEnv)); path != "" {
		if _, err := ApplyFile(path); err != nil {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env config: %w", err)
	}

	// Validate auth configuration
	if cfg.AuthEnabled {
		if strings.TrimSpace(cfg.AuthIssuer) == "" {
			return nil, fmt.Errorf("ISSUER is required when AUTH_ENABLED is true")
		}
		if strings.TrimSpace(cfg.AuthAudience) == "" {
			return nil, fmt.Errorf("AUDIENCE is required when AUTH_ENABLED is true")
		}
		if strings.TrimSpace(cfg.AuthJWKSURL) == "" {
			return nil, fmt.Errorf("JWKS_URL is required when AUTH_ENABLED is true")
		}
	}

	if cfg.TraceSampleRatio < 0 || cfg.TraceSampleRatio > 1 {
		return nil, fmt.Errorf("OTEL_TRACES_SAMPLE_RATIO must be between 0 and 1, got %v", cfg.TraceSampleRatio)
	}

	if cfg.LiveKitTokenTTL <= 0 {
		return nil, fmt.Errorf("LIVEKIT_TOKEN_TTL must be positive, got %s", cfg.LiveKitTokenTTL)
	}

	return cfg, nil
}

// Addr returns the HTTP server address.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}
