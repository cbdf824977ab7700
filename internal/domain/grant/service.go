package grant

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/janhq/avatar-cockpit/internal/domain/transport"
)

// Service defines the business operations for realtime session credentials.
type Service interface {
	CreateSession(ctx context.Context, req *SessionRequest) (*Session, error)
}

type service struct {
	issuer   *Issuer
	settings Settings
	log      zerolog.Logger
}

// NewService creates a new session credential service.
func NewService(issuer *Issuer, settings Settings, log zerolog.Logger) Service {
	return &service{
		issuer:   issuer,
		settings: settings,
		log:      log.With().Str("component", "grant-service").Logger(),
	}
}

func (s *service) CreateSession(ctx context.Context, req *SessionRequest) (*Session, error) {
	if req == nil {
		req = &SessionRequest{}
	}

	g, err := s.issuer.Issue(ctx, s.settings.Credentials, req.Identity, req.Room, s.settings.TokenTTL)
	if err != nil {
		return nil, err
	}

	return &Session{
		Token:     g.Token,
		URL:       transport.Normalize(s.settings.RawURL, s.log),
		Room:      g.Room,
		Identity:  g.Identity,
		ExpiresAt: g.ExpiresAt,
	}, nil
}
