package handlers

import (
	"context"

	"github.com/janhq/avatar-cockpit/internal/domain/grant"
)

// TokenHandler handles room token requests.
type TokenHandler struct {
	service grant.Service
}

// NewTokenHandler creates a new token handler.
func NewTokenHandler(service grant.Service) *TokenHandler {
	return &TokenHandler{service: service}
}

// CreateToken issues a room token. Empty room or identity fall back to defaults.
func (h *TokenHandler) CreateToken(ctx context.Context, room, identity string) (*grant.Session, error) {
	return h.service.CreateSession(ctx, &grant.SessionRequest{Room: room, Identity: identity})
}
