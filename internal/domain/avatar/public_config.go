package avatar

// ResolvePublicConfig derives what the browser may know about the avatar
// provider. The face is only reported as configured when the API key is
// present too, since the image cannot be fetched without it.
func ResolvePublicConfig(settings Settings) PublicConfig {
	cfg := PublicConfig{
		Provider:        Provider,
		VoiceConfigured: settings.VoiceID != "",
		FaceConfigured:  settings.FaceID != "" && settings.APIKey != "",
	}
	if settings.VoiceID != "" {
		voiceID := settings.VoiceID
		cfg.VoiceID = &voiceID
	}
	if settings.FaceID != "" {
		faceID := settings.FaceID
		cfg.FaceID = &faceID
	}
	return cfg
}
