package avatar

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveAvatarURL(t *testing.T) {
	tests := []struct {
		name     string
		settings Settings
		faceID   string
		want     string
	}{
		{
			name:   "defaults",
			faceID: "face-1",
			want:   "https://api.cartesia.ai/v1/faces/face-1/render",
		},
		{
			name:     "custom base strips trailing slash",
			settings: Settings{BaseURL: "https://staging.cartesia.ai/v2/"},
			faceID:   "face-1",
			want:     "https://staging.cartesia.ai/v2/faces/face-1/render",
		},
		{
			name:     "custom path template",
			settings: Settings{PathTemplate: "/avatars/{faceId}.png"},
			faceID:   "face-1",
			want:     "https://api.cartesia.ai/v1/avatars/face-1.png",
		},
		{
			name:     "path template without leading slash",
			settings: Settings{BaseURL: "https://cdn.example.com", PathTemplate: "img/{faceId}"},
			faceID:   "face-1",
			want:     "https://cdn.example.com/img/face-1",
		},
		{
			name: "override wins over base and path",
			settings: Settings{
				BaseURL:           "https://ignored.example.com",
				PathTemplate:      "/ignored/{faceId}",
				RenderURLTemplate: "https://render.example.com/v1/{faceId}?format=png",
			},
			faceID: "face-1",
			want:   "https://render.example.com/v1/face-1?format=png",
		},
		{
			name:     "override encodes slash",
			settings: Settings{RenderURLTemplate: "https://render.example.com/faces/{faceId}"},
			faceID:   "../admin/face",
			want:     "https://render.example.com/faces/..%2Fadmin%2Fface",
		},
		{
			name:     "path encodes query characters",
			settings: Settings{},
			faceID:   "a?b=c&d#e",
			want:     "https://api.cartesia.ai/v1/faces/a%3Fb%3Dc%26d%23e/render",
		},
		{
			name:     "every placeholder is substituted",
			settings: Settings{RenderURLTemplate: "https://render.example.com/{faceId}/{faceId}.png"},
			faceID:   "a/b",
			want:     "https://render.example.com/a%2Fb/a%2Fb.png",
		},
		{
			name:     "space is percent encoded",
			settings: Settings{},
			faceID:   "my face",
			want:     "https://api.cartesia.ai/v1/faces/my%20face/render",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveAvatarURL(tt.settings, tt.faceID))
		})
	}
}

func TestResolveAvatarURLNeverContainsRawSlashFromFaceID(t *testing.T) {
	settingsSet := []Settings{
		{},
		{BaseURL: "https://base.example.com/"},
		{RenderURLTemplate: "https://render.example.com/{faceId}/image"},
	}

	for _, settings := range settingsSet {
		got := ResolveAvatarURL(settings, "x/y")
		assert.Contains(t, got, "x%2Fy")
		assert.False(t, strings.Contains(got, "x/y"), got)
	}
}

func TestEncodeFaceID(t *testing.T) {
	assert.Equal(t, "abc-123_XYZ.~", EncodeFaceID("abc-123_XYZ.~"))
	assert.Equal(t, "%2F", EncodeFaceID("/"))
	assert.Equal(t, "%20", EncodeFaceID(" "))
	assert.Equal(t, "%2B", EncodeFaceID("+"))
}
