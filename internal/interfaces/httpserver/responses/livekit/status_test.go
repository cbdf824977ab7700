package livekitres

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/janhq/avatar-cockpit/internal/infrastructure/livekit"
)

func TestNewStatusResponse(t *testing.T) {
	resp := NewStatusResponse(&livekit.RoomStatus{
		Reachable: true,
		URL:       "wss://lk.example.com/",
		Rooms:     []livekit.RoomInfo{{Name: "studio", NumParticipants: 3}},
	}, nil)

	assert.True(t, resp.Reachable)
	assert.Equal(t, "wss://lk.example.com/", resp.URL)
	assert.Equal(t, []RoomSummary{{Name: "studio", NumParticipants: 3}}, resp.Rooms)
	assert.Empty(t, resp.Error)
}

func TestNewStatusResponseWithError(t *testing.T) {
	resp := NewStatusResponse(&livekit.RoomStatus{Reachable: true, URL: "ws://localhost:7880/"}, errors.New("unauthorized"))

	assert.False(t, resp.Reachable)
	assert.Equal(t, "unauthorized", resp.Error)
	assert.NotNil(t, resp.Rooms)
	assert.Empty(t, resp.Rooms)
}

func TestNewStatusResponseNilStatus(t *testing.T) {
	resp := NewStatusResponse(nil, errors.New("boom"))

	assert.False(t, resp.Reachable)
	assert.Empty(t, resp.URL)
	assert.NotNil(t, resp.Rooms)
}
