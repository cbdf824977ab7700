package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/janhq/avatar-cockpit/internal/interfaces/httpserver/handlers"
)

// Routes holds the v1 route configuration.
type Routes struct {
	handlers *handlers.Provider
}

// NewRoutes creates a new v1 routes instance.
func NewRoutes(handlerProvider *handlers.Provider) *Routes {
	return &Routes{
		handlers: handlerProvider,
	}
}

// Register registers all v1 routes on the engine, plus the unversioned paths
// the browser cockpit has always used. If authMiddleware is provided, it is
// applied to the v1 group and to /token.
func (r *Routes) Register(engine *gin.Engine, authMiddleware gin.HandlerFunc) {
	v1 := engine.Group("/v1")
	if authMiddleware != nil {
		v1.Use(authMiddleware)
	}
	RegisterTokenRoutes(v1, r.handlers.Token)
	RegisterAvatarRoutes(v1, r.handlers.Avatar)
	RegisterLiveKitRoutes(v1, r.handlers.LiveKit)

	legacyToken := engine.Group("/")
	if authMiddleware != nil {
		legacyToken.Use(authMiddleware)
	}
	RegisterTokenRoutes(legacyToken, r.handlers.Token)

	legacyCartesia := engine.Group("/api/cartesia")
	legacyCartesia.GET("/config", getAvatarConfig(r.handlers.Avatar))
	legacyCartesia.GET("/avatar", getAvatarImage(r.handlers.Avatar))
}
