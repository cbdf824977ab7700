package livekit

import (
	"context"
	"net/http"
	"strings"

	"github.com/livekit/protocol/livekit"
	lksdk "github.com/livekit/server-sdk-go/v2"
	"github.com/rs/zerolog"

	"github.com/janhq/avatar-cockpit/internal/domain/grant"
	"github.com/janhq/avatar-cockpit/internal/domain/transport"
	"github.com/janhq/avatar-cockpit/internal/utils/platformerrors"
)

// roomLister is the slice of the LiveKit RoomService the probe uses.
type roomLister interface {
	ListRooms(ctx context.Context, req *livekit.ListRoomsRequest) (*livekit.ListRoomsResponse, error)
}

// RoomClient provides access to LiveKit room management APIs.
type RoomClient struct {
	client roomLister
	url    string
	log    zerolog.Logger
}

// NewRoomClient creates a LiveKit room client for the configured server.
// The client is nil when credentials are missing; Probe reports that case.
func NewRoomClient(settings grant.Settings, log zerolog.Logger) *RoomClient {
	log = log.With().Str("component", "livekit-room-client").Logger()
	url := transport.Normalize(settings.RawURL, log)

	c := &RoomClient{url: url, log: log}
	if settings.Credentials.APIKey != "" && settings.Credentials.APISecret != "" {
		// The SDK appends its own /twirp prefix.
		c.client = lksdk.NewRoomServiceClient(strings.TrimSuffix(url, "/"), settings.Credentials.APIKey, settings.Credentials.APISecret)
	}
	return c
}

// RoomInfo contains basic room information.
type RoomInfo struct {
	Name            string `json:"name"`
	NumParticipants int    `json:"num_participants"`
}

// RoomStatus is the result of a connectivity probe.
type RoomStatus struct {
	Reachable bool       `json:"reachable"`
	URL       string     `json:"url"`
	Rooms     []RoomInfo `json:"rooms"`
}

// ListActiveRooms returns all active rooms with participant counts.
func (c *RoomClient) ListActiveRooms(ctx context.Context) ([]RoomInfo, error) {
	if c.client == nil {
		return nil, platformerrors.NewConfigurationError(
			"LIVEKIT_API_KEY and LIVEKIT_API_SECRET must be configured",
			http.StatusServiceUnavailable,
		)
	}

	resp, err := c.client.ListRooms(ctx, &livekit.ListRoomsRequest{})
	if err != nil {
		return nil, &platformerrors.UpstreamError{Service: "livekit", Err: err}
	}

	rooms := make([]RoomInfo, 0, len(resp.Rooms))
	for _, room := range resp.Rooms {
		rooms = append(rooms, RoomInfo{
			Name:            room.Name,
			NumParticipants: int(room.NumParticipants),
		})
	}
	return rooms, nil
}

// Probe checks that the LiveKit server answers API calls with the
// configured credentials.
func (c *RoomClient) Probe(ctx context.Context) (*RoomStatus, error) {
	rooms, err := c.ListActiveRooms(ctx)
	if err != nil {
		c.log.Warn().Err(err).Str("url", c.url).Msg("LiveKit probe failed")
		return &RoomStatus{URL: c.url, Rooms: []RoomInfo{}}, err
	}

	c.log.Debug().Str("url", c.url).Int("rooms", len(rooms)).Msg("LiveKit probe succeeded")
	return &RoomStatus{Reachable: true, URL: c.url, Rooms: rooms}, nil
}
