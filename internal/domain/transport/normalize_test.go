package transport

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"absent", "", DefaultURL},
		{"whitespace only", "   ", DefaultURL},
		{"http upgraded to ws", "http://x:1234", "ws://x:1234/"},
		{"https upgraded to wss", "https://x", "wss://x/"},
		{"ws kept", "ws://livekit.local:7880", "ws://livekit.local:7880/"},
		{"wss kept with path", "wss://lk.example.com/rtc", "wss://lk.example.com/rtc"},
		{"uppercase scheme", "HTTPS://lk.example.com", "wss://lk.example.com/"},
		{"uppercase host lowercased", "HTTP://X", "ws://x/"},
		{"mixed case host with port", "wss://LK.Example.com:7880/RTC", "wss://lk.example.com:7880/RTC"},
		{"query preserved", "https://lk.example.com/?region=eu", "wss://lk.example.com/?region=eu"},
		{"ftp rejected", "ftp://x", DefaultURL},
		{"no scheme rejected", "livekit.example.com", DefaultURL},
		{"missing host rejected", "http://", DefaultURL},
		{"unparseable rejected", "http://[::1", DefaultURL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.raw, zerolog.Nop()))
		})
	}
}

func TestNormalizeLogsWarningOnFallback(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	got := Normalize("ftp://x", log)

	assert.Equal(t, DefaultURL, got)
	assert.Contains(t, buf.String(), `"level":"warn"`)
	assert.Contains(t, buf.String(), "ftp://x")
}

func TestNormalizeDoesNotLogForValidURL(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	Normalize("https://x", log)
	Normalize("", log)

	assert.Empty(t, buf.String())
}
