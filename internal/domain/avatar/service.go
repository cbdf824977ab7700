package avatar

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/janhq/avatar-cockpit/internal/infrastructure/metrics"
	"github.com/janhq/avatar-cockpit/internal/utils/platformerrors"
)

// Fetcher retrieves an image from the avatar provider.
//
// Implementations return a ConfigurationError with status 404 when the
// remote reports the asset missing, and an UpstreamError for any other
// failure.
type Fetcher interface {
	Fetch(ctx context.Context, url, apiKey string) (*Asset, error)
}

// Service defines the avatar proxy operations.
type Service interface {
	PublicConfig() PublicConfig
	FetchAvatar(ctx context.Context) (*Asset, error)
}

type service struct {
	settings Settings
	fetcher  Fetcher
	log      zerolog.Logger
}

// NewService creates a new avatar proxy service.
func NewService(settings Settings, fetcher Fetcher, log zerolog.Logger) Service {
	return &service{
		settings: settings,
		fetcher:  fetcher,
		log:      log.With().Str("component", "avatar-service").Logger(),
	}
}

func (s *service) PublicConfig() PublicConfig {
	return ResolvePublicConfig(s.settings)
}

// FetchAvatar fetches the configured face. A missing face id or API key is
// reported as 503: the deployment is not set up yet, which is not the
// caller's fault.
func (s *service) FetchAvatar(ctx context.Context) (*Asset, error) {
	if s.settings.FaceID == "" {
		metrics.RecordAvatarFetch(metrics.OutcomeNotConfigured)
		return nil, platformerrors.NewConfigurationError("CARTESIA_FACE_ID is not configured", http.StatusServiceUnavailable)
	}
	if s.settings.APIKey == "" {
		metrics.RecordAvatarFetch(metrics.OutcomeNotConfigured)
		return nil, platformerrors.NewConfigurationError("CARTESIA_API_KEY is not configured", http.StatusServiceUnavailable)
	}

	url := ResolveAvatarURL(s.settings, s.settings.FaceID)

	start := time.Now()
	asset, err := s.fetcher.Fetch(ctx, url, s.settings.APIKey)
	metrics.AvatarFetchDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		if platformerrors.AsConfigurationError(err) != nil {
			metrics.RecordAvatarFetch(metrics.OutcomeNotFound)
		} else {
			metrics.RecordAvatarFetch(metrics.OutcomeUpstreamError)
		}
		return nil, err
	}

	metrics.RecordAvatarFetch(metrics.OutcomeSuccess)
	s.log.Debug().
		Str("face_id", s.settings.FaceID).
		Str("content_type", asset.ContentType).
		Int("bytes", len(asset.Payload)).
		Msg("avatar fetched")

	return asset, nil
}
