// Package livekitres contains HTTP response DTOs for the LiveKit status endpoint.
package livekitres

import "github.com/janhq/avatar-cockpit/internal/infrastructure/livekit"

// StatusResponse reports whether the configured LiveKit server answers.
type StatusResponse struct {
	Reachable bool          `json:"reachable"`
	URL       string        `json:"url"`
	Rooms     []RoomSummary `json:"rooms"`
	Error     string        `json:"error,omitempty"`
}

// RoomSummary is one active room.
type RoomSummary struct {
	Name            string `json:"name"`
	NumParticipants int    `json:"num_participants"`
}

// NewStatusResponse creates a StatusResponse from a probe result. probeErr
// is the error the probe returned, if any.
func NewStatusResponse(status *livekit.RoomStatus, probeErr error) *StatusResponse {
	resp := &StatusResponse{Rooms: []RoomSummary{}}
	if status != nil {
		resp.Reachable = status.Reachable
		resp.URL = status.URL
		for _, room := range status.Rooms {
			resp.Rooms = append(resp.Rooms, RoomSummary{Name: room.Name, NumParticipants: room.NumParticipants})
		}
	}
	if probeErr != nil {
		resp.Reachable = false
		resp.Error = probeErr.Error()
	}
	return resp
}
