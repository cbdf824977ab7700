package grant

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/janhq/avatar-cockpit/internal/infrastructure/metrics"
	"github.com/janhq/avatar-cockpit/internal/utils/idgen"
	"github.com/janhq/avatar-cockpit/internal/utils/platformerrors"
)

// DefaultRoom is used when neither the caller nor the operator names a room.
const DefaultRoom = "default-room"

// TokenSigner encodes a grant into a token signed with secret.
type TokenSigner interface {
	Sign(g *Grant, secret string) (string, error)
}

// Issuer builds and signs grants.
type Issuer struct {
	signer      TokenSigner
	defaultRoom string
	now         func() time.Time
	log         zerolog.Logger
}

// NewIssuer creates an Issuer. An empty defaultRoom falls back to DefaultRoom.
func NewIssuer(signer TokenSigner, defaultRoom string, log zerolog.Logger) *Issuer {
	if strings.TrimSpace(defaultRoom) == "" {
		defaultRoom = DefaultRoom
	}
	return &Issuer{
		signer:      signer,
		defaultRoom: strings.TrimSpace(defaultRoom),
		now:         time.Now,
		log:         log.With().Str("component", "grant-issuer").Logger(),
	}
}

// Issue builds a grant for identity in room valid for ttl and signs it.
//
// Missing credentials yield a ConfigurationError. An identity that is present
// but blank after trimming is a validation error; an empty identity is
// replaced with a generated one. A non-positive ttl means DefaultTTL.
func (i *Issuer) Issue(ctx context.Context, creds Credentials, identity, room string, ttl time.Duration) (*Grant, error) {
	if creds.APIKey == "" || creds.APISecret == "" {
		metrics.RecordGrantFailure("missing_credentials")
		return nil, platformerrors.NewConfigurationError(
			"LIVEKIT_API_KEY and LIVEKIT_API_SECRET must be configured",
			http.StatusInternalServerError,
		)
	}

	now := i.now().UTC().Truncate(time.Second)

	if identity == "" {
		generated, err := idgen.ParticipantIdentity(IdentityPrefix, now)
		if err != nil {
			metrics.RecordGrantFailure("identity_generation")
			return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to generate participant identity")
		}
		identity = generated
	} else {
		identity = strings.TrimSpace(identity)
		if identity == "" {
			metrics.RecordGrantFailure("invalid_identity")
			return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation, "identity must not be blank", nil)
		}
	}

	room = strings.TrimSpace(room)
	if room == "" {
		room = i.defaultRoom
	}

	if ttl <= 0 {
		ttl = DefaultTTL
	}

	g := &Grant{
		Identity:     identity,
		Room:         room,
		Capabilities: AllCapabilities(),
		Issuer:       creds.APIKey,
		IssuedAt:     now,
		ExpiresAt:    now.Add(ttl),
		TokenID:      identity,
	}

	start := time.Now()
	token, err := i.signer.Sign(g, creds.APISecret)
	metrics.TokenGenerationDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.RecordGrantFailure("signing")
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, fmt.Sprintf("failed to sign grant for room %q", room))
	}
	g.Token = token

	metrics.RecordGrantIssued()
	i.log.Info().
		Str("room", room).
		Str("identity", identity).
		Time("expires_at", g.ExpiresAt).
		Msg("grant issued")

	return g, nil
}
