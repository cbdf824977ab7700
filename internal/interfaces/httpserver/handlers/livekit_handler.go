package handlers

import (
	"context"

	"github.com/janhq/avatar-cockpit/internal/infrastructure/livekit"
)

// RoomProber checks connectivity to the LiveKit server.
type RoomProber interface {
	Probe(ctx context.Context) (*livekit.RoomStatus, error)
}

// LiveKitHandler handles LiveKit diagnostics.
type LiveKitHandler struct {
	prober RoomProber
}

// NewLiveKitHandler creates a new LiveKit handler.
func NewLiveKitHandler(prober RoomProber) *LiveKitHandler {
	return &LiveKitHandler{prober: prober}
}

// Status probes the LiveKit server.
func (h *LiveKitHandler) Status(ctx context.Context) (*livekit.RoomStatus, error) {
	return h.prober.Probe(ctx)
}
