package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/janhq/avatar-cockpit/internal/interfaces/httpserver/handlers"
	"github.com/janhq/avatar-cockpit/internal/interfaces/httpserver/responses"
	tokenres "github.com/janhq/avatar-cockpit/internal/interfaces/httpserver/responses/token"
)

// RegisterTokenRoutes registers the room token route.
func RegisterTokenRoutes(router gin.IRoutes, handler *handlers.TokenHandler) {
	router.GET("/token", createToken(handler))
}

// createToken godoc
// @Summary      Issue a room token
// @Description  Issues a LiveKit access token that lets one participant join, publish and subscribe in one room.
// @Tags         Token API
// @Produce      json
// @Param        room      query string false "Room name, defaults to the configured room"
// @Param        identity  query string false "Participant identity, generated when absent"
// @Success      200 {object} tokenres.TokenResponse
// @Failure      400 {object} responses.ErrorResponse
// @Failure      401 {object} responses.ErrorResponse
// @Failure      500 {object} responses.ErrorResponse
// @Security     BearerAuth
// @Router       /token [get]
func createToken(handler *handlers.TokenHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, err := handler.CreateToken(c.Request.Context(), c.Query("room"), c.Query("identity"))
		if err != nil {
			responses.HandleError(c, err, "failed to create token")
			return
		}

		c.JSON(http.StatusOK, tokenres.NewTokenResponse(sess))
	}
}
