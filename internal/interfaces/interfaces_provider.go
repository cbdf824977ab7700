package interfaces

import (
	"github.com/google/wire"

	"github.com/janhq/avatar-cockpit/internal/infrastructure/livekit"
	"github.com/janhq/avatar-cockpit/internal/interfaces/httpserver"
	"github.com/janhq/avatar-cockpit/internal/interfaces/httpserver/handlers"
	"github.com/janhq/avatar-cockpit/internal/interfaces/httpserver/routes"
)

// InterfacesProvider provides all interface dependencies.
var InterfacesProvider = wire.NewSet(
	wire.Bind(new(handlers.RoomProber), new(*livekit.RoomClient)),
	handlers.HandlerProvider,
	routes.RouteProvider,
	httpserver.New,
)
