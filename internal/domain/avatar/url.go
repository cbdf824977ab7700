package avatar

import (
	"net/url"
	"strings"
)

const (
	// DefaultBaseURL is the Cartesia API root.
	DefaultBaseURL = "https://api.cartesia.ai/v1"
	// DefaultPathTemplate locates the render endpoint for a face.
	DefaultPathTemplate = "/faces/{faceId}/render"
	// FaceIDPlaceholder is substituted with the encoded face id.
	FaceIDPlaceholder = "{faceId}"
)

// EncodeFaceID percent-encodes id as a single URL component, so "/", "?",
// "#", "&" and "=" can never change the shape of the resolved URL.
func EncodeFaceID(id string) string {
	return strings.ReplaceAll(url.QueryEscape(id), "+", "%20")
}

// ResolveAvatarURL returns the render URL for faceID:
//  1. RenderURLTemplate with the placeholder substituted, if set;
//  2. otherwise BaseURL (trailing "/" stripped) joined with PathTemplate;
//  3. with DefaultBaseURL and DefaultPathTemplate filling whatever is unset.
//
// The face id is always encoded before substitution.
func ResolveAvatarURL(settings Settings, faceID string) string {
	encoded := EncodeFaceID(faceID)

	if settings.RenderURLTemplate != "" {
		return strings.ReplaceAll(settings.RenderURLTemplate, FaceIDPlaceholder, encoded)
	}

	base := settings.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	base = strings.TrimSuffix(base, "/")

	template := settings.PathTemplate
	if template == "" {
		template = DefaultPathTemplate
	}
	path := strings.ReplaceAll(template, FaceIDPlaceholder, encoded)
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	return base + path
}
