package infrastructure

import (
	"context"

	"github.com/google/wire"
	"github.com/rs/zerolog"

	"github.com/janhq/avatar-cockpit/internal/config"
	"github.com/janhq/avatar-cockpit/internal/domain/avatar"
	"github.com/janhq/avatar-cockpit/internal/domain/grant"
	"github.com/janhq/avatar-cockpit/internal/infrastructure/auth"
	"github.com/janhq/avatar-cockpit/internal/infrastructure/cartesia"
	"github.com/janhq/avatar-cockpit/internal/infrastructure/livekit"
)

// InfrastructureProvider provides all infrastructure dependencies.
var InfrastructureProvider = wire.NewSet(
	ProvideTokenSigner,
	ProvideRoomClient,
	ProvideAvatarFetcher,
	ProvideAuthValidator,
)

// ProvideTokenSigner provides the LiveKit token signer.
func ProvideTokenSigner() grant.TokenSigner {
	return livekit.NewTokenSigner()
}

// ProvideRoomClient provides a LiveKit room client.
func ProvideRoomClient(settings grant.Settings, log zerolog.Logger) *livekit.RoomClient {
	return livekit.NewRoomClient(settings, log)
}

// ProvideAvatarFetcher provides the Cartesia HTTP fetcher.
func ProvideAvatarFetcher() avatar.Fetcher {
	return cartesia.NewClient(nil)
}

// ProvideAuthValidator provides an auth validator.
func ProvideAuthValidator(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*auth.Validator, error) {
	return auth.NewValidator(ctx, cfg, log)
}
