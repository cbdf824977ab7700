package handlers

import (
	"context"

	"github.com/janhq/avatar-cockpit/internal/domain/avatar"
)

// AvatarHandler handles avatar proxy requests.
type AvatarHandler struct {
	service avatar.Service
}

// NewAvatarHandler creates a new avatar handler.
func NewAvatarHandler(service avatar.Service) *AvatarHandler {
	return &AvatarHandler{service: service}
}

// PublicConfig returns the browser-safe provider configuration.
func (h *AvatarHandler) PublicConfig() avatar.PublicConfig {
	return h.service.PublicConfig()
}

// FetchImage fetches the configured avatar render.
func (h *AvatarHandler) FetchImage(ctx context.Context) (*avatar.Asset, error) {
	return h.service.FetchAvatar(ctx)
}
