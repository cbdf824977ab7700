// Package tokenres contains HTTP response DTOs for the token endpoint.
package tokenres

import "github.com/janhq/avatar-cockpit/internal/domain/grant"

// TokenResponse is what a client needs to join a room.
type TokenResponse struct {
	Token string `json:"token"`
	URL   string `json:"url"`
	Room  string `json:"room"`
}

// NewTokenResponse creates a TokenResponse from a domain Session.
func NewTokenResponse(sess *grant.Session) *TokenResponse {
	return &TokenResponse{
		Token: sess.Token,
		URL:   sess.URL,
		Room:  sess.Room,
	}
}
