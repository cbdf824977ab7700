package handlers

import (
	"github.com/google/wire"

	"github.com/janhq/avatar-cockpit/internal/domain/avatar"
	"github.com/janhq/avatar-cockpit/internal/domain/grant"
)

// Provider holds all HTTP handlers.
type Provider struct {
	Token   *TokenHandler
	Avatar  *AvatarHandler
	LiveKit *LiveKitHandler
}

// NewProvider creates a new handler provider.
func NewProvider(grantService grant.Service, avatarService avatar.Service, prober RoomProber) *Provider {
	return &Provider{
		Token:   NewTokenHandler(grantService),
		Avatar:  NewAvatarHandler(avatarService),
		LiveKit: NewLiveKitHandler(prober),
	}
}

// HandlerProvider provides all handlers for wire.
var HandlerProvider = wire.NewSet(
	NewProvider,
)
