package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/janhq/avatar-cockpit/internal/interfaces/httpserver/handlers"
	livekitres "github.com/janhq/avatar-cockpit/internal/interfaces/httpserver/responses/livekit"
)

// RegisterLiveKitRoutes registers the LiveKit diagnostics route.
func RegisterLiveKitRoutes(router gin.IRoutes, handler *handlers.LiveKitHandler) {
	router.GET("/livekit/status", getLiveKitStatus(handler))
}

// getLiveKitStatus godoc
// @Summary      Probe LiveKit
// @Description  Lists active rooms to check that the LiveKit server is reachable with the configured credentials.
// @Tags         LiveKit API
// @Produce      json
// @Success      200 {object} livekitres.StatusResponse
// @Failure      503 {object} livekitres.StatusResponse
// @Security     BearerAuth
// @Router       /livekit/status [get]
func getLiveKitStatus(handler *handlers.LiveKitHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		status, err := handler.Status(c.Request.Context())
		if err != nil {
			_ = c.Error(err)
			c.JSON(http.StatusServiceUnavailable, livekitres.NewStatusResponse(status, err))
			return
		}

		c.JSON(http.StatusOK, livekitres.NewStatusResponse(status, nil))
	}
}
