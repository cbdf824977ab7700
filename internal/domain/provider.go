package domain

import (
	"github.com/google/wire"
	"github.com/rs/zerolog"

	"github.com/janhq/avatar-cockpit/internal/config"
	"github.com/janhq/avatar-cockpit/internal/domain/avatar"
	"github.com/janhq/avatar-cockpit/internal/domain/grant"
)

// ProvideGrantSettings takes the immutable LiveKit view of the config.
func ProvideGrantSettings(cfg *config.Config) grant.Settings {
	return grant.Settings{
		Credentials: grant.Credentials{
			APIKey:    cfg.LiveKitAPIKey,
			APISecret: cfg.LiveKitAPISecret,
		},
		RawURL:      cfg.LiveKitURL,
		DefaultRoom: cfg.LiveKitRoomName,
		TokenTTL:    cfg.LiveKitTokenTTL,
	}
}

// ProvideAvatarSettings takes the immutable Cartesia view of the config.
func ProvideAvatarSettings(cfg *config.Config) avatar.Settings {
	return avatar.Settings{
		APIKey:            cfg.CartesiaAPIKey,
		VoiceID:           cfg.CartesiaVoiceID,
		FaceID:            cfg.CartesiaFaceID,
		BaseURL:           cfg.CartesiaAPIURL,
		PathTemplate:      cfg.CartesiaFaceRenderPath,
		RenderURLTemplate: cfg.CartesiaFaceRenderURL,
	}
}

// ProvideIssuer provides the grant issuer.
func ProvideIssuer(signer grant.TokenSigner, settings grant.Settings, log zerolog.Logger) *grant.Issuer {
	return grant.NewIssuer(signer, settings.DefaultRoom, log)
}

// ProvideGrantService provides the session credential service.
func ProvideGrantService(issuer *grant.Issuer, settings grant.Settings, log zerolog.Logger) grant.Service {
	return grant.NewService(issuer, settings, log)
}

// ProvideAvatarService provides the avatar proxy service.
func ProvideAvatarService(settings avatar.Settings, fetcher avatar.Fetcher, log zerolog.Logger) avatar.Service {
	return avatar.NewService(settings, fetcher, log)
}

// ServiceProvider provides all domain services.
var ServiceProvider = wire.NewSet(
	ProvideGrantSettings,
	ProvideAvatarSettings,
	ProvideIssuer,
	ProvideGrantService,
	ProvideAvatarService,
)
