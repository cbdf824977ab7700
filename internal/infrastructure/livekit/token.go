package livekit

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/livekit/protocol/auth"

	"github.com/janhq/avatar-cockpit/internal/domain/grant"
)

// accessTokenClaims is the LiveKit access token layout: registered claims
// plus the video grant under "video".
type accessTokenClaims struct {
	jwt.RegisteredClaims
	Video *auth.VideoGrant `json:"video,omitempty"`
}

// TokenSigner signs grants as LiveKit access tokens (HS256 JWT).
type TokenSigner struct{}

// NewTokenSigner creates a new token signer.
func NewTokenSigner() *TokenSigner {
	return &TokenSigner{}
}

// Sign encodes g as a LiveKit access token signed with secret.
func (s *TokenSigner) Sign(g *grant.Grant, secret string) (string, error) {
	canPublish := g.Has(grant.CapabilityPublish)
	canSubscribe := g.Has(grant.CapabilitySubscribe)

	claims := accessTokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    g.Issuer,
			Subject:   g.Identity,
			ID:        g.TokenID,
			IssuedAt:  jwt.NewNumericDate(g.IssuedAt),
			NotBefore: jwt.NewNumericDate(g.IssuedAt),
			ExpiresAt: jwt.NewNumericDate(g.ExpiresAt),
		},
		Video: &auth.VideoGrant{
			RoomJoin:     g.Has(grant.CapabilityJoin),
			Room:         g.Room,
			CanPublish:   &canPublish,
			CanSubscribe: &canSubscribe,
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
