package avatar

// Provider is the avatar provider advertised to clients.
const Provider = "cartesia"

// DefaultContentType is used when the remote omits a Content-Type header.
const DefaultContentType = "image/png"

// Settings is the immutable avatar provider configuration. Empty strings
// mean "not configured".
type Settings struct {
	APIKey  string
	VoiceID string
	FaceID  string
	// BaseURL is the API root; DefaultBaseURL when empty.
	BaseURL string
	// PathTemplate is appended to BaseURL; DefaultPathTemplate when empty.
	PathTemplate string
	// RenderURLTemplate, when set, is the complete render URL and wins over
	// BaseURL and PathTemplate.
	RenderURLTemplate string
}

// Asset is a fetched avatar image. The payload is owned by the caller.
type Asset struct {
	Payload     []byte
	ContentType string
}

// PublicConfig is the client-safe view of Settings.
type PublicConfig struct {
	Provider        string  `json:"provider"`
	VoiceID         *string `json:"voiceId"`
	FaceID          *string `json:"faceId"`
	VoiceConfigured bool    `json:"voiceConfigured"`
	FaceConfigured  bool    `json:"faceConfigured"`
}
