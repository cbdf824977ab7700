// Package transport resolves the signaling endpoint handed to realtime clients.
package transport

import (
	"net/url"
	"strings"

	"github.com/rs/zerolog"
)

// DefaultURL is returned whenever no usable endpoint is configured.
const DefaultURL = "ws://localhost:7880"

var schemeUpgrades = map[string]string{
	"http":  "ws",
	"https": "wss",
	"ws":    "ws",
	"wss":   "wss",
}

// Normalize converts raw into a websocket URL for the signaling client.
// http and https are upgraded to ws and wss and the host is lowercased.
// An empty value yields DefaultURL.
// Unparseable values, values without a host and any other scheme are logged
// and also yield DefaultURL; Normalize never fails.
func Normalize(raw string, log zerolog.Logger) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultURL
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		log.Warn().Err(err).Str("url", raw).Str("fallback", DefaultURL).Msg("invalid LiveKit URL, using default")
		return DefaultURL
	}

	scheme, ok := schemeUpgrades[parsed.Scheme]
	if !ok || parsed.Host == "" {
		log.Warn().Str("url", raw).Str("scheme", parsed.Scheme).Str("fallback", DefaultURL).Msg("unsupported LiveKit URL, using default")
		return DefaultURL
	}

	parsed.Scheme = scheme
	parsed.Host = strings.ToLower(parsed.Host)
	if parsed.Path == "" {
		parsed.Path = "/"
	}
	return parsed.String()
}
