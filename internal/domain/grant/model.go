package grant

import "time"

// Capability is a permission encoded in a grant.
type Capability string

const (
	CapabilityJoin      Capability = "join"
	CapabilityPublish   Capability = "publish"
	CapabilitySubscribe Capability = "subscribe"
)

// DefaultTTL is the lifetime of a grant when none is configured.
const DefaultTTL = 6 * time.Hour

// IdentityPrefix prefixes generated participant identities.
const IdentityPrefix = "participant"

// AllCapabilities returns the capability set every grant carries.
func AllCapabilities() []Capability {
	return []Capability{CapabilityJoin, CapabilityPublish, CapabilitySubscribe}
}

// Credentials is the LiveKit API key pair used to sign grants.
type Credentials struct {
	APIKey    string
	APISecret string
}

// Grant authorizes one identity to join one room. It is built per request
// and never mutated after signing.
type Grant struct {
	Identity     string
	Room         string
	Capabilities []Capability
	Issuer       string
	IssuedAt     time.Time
	ExpiresAt    time.Time
	TokenID      string

	// Token is the signed, encoded form handed to the client.
	Token string
}

// Has reports whether the grant carries capability c.
func (g *Grant) Has(c Capability) bool {
	for _, have := range g.Capabilities {
		if have == c {
			return true
		}
	}
	return false
}

// Settings is the immutable configuration the session service runs with.
type Settings struct {
	Credentials Credentials
	// RawURL is the operator supplied signaling URL; empty means unset.
	RawURL      string
	DefaultRoom string
	TokenTTL    time.Duration
}

// SessionRequest carries the optional room and identity from the caller.
// Empty fields fall back to defaults.
type SessionRequest struct {
	Room     string
	Identity string
}

// Session is what a client needs to connect: a token, the signaling URL and
// the room the token is valid for.
type Session struct {
	Token     string
	URL       string
	Room      string
	Identity  string
	ExpiresAt time.Time
}
