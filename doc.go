// Package avatarcockpit implements the backend of the avatar cockpit, a
// browser client for talking-avatar sessions.
//
// The service provides:
//   - LiveKit room tokens scoped to one participant and one room
//   - Normalization of the configured LiveKit signaling URL
//   - A proxy for Cartesia face renders that keeps the API key server-side
//   - A browser-safe view of the avatar configuration
//   - A LiveKit reachability probe
//   - Optional JWT authentication via Keycloak
//
// For more information, see the README.md file.
package avatarcockpit
