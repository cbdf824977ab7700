package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/janhq/avatar-cockpit/internal/interfaces/httpserver/handlers"
	"github.com/janhq/avatar-cockpit/internal/interfaces/httpserver/responses"
)

// RegisterAvatarRoutes registers the avatar proxy routes.
func RegisterAvatarRoutes(router gin.IRoutes, handler *handlers.AvatarHandler) {
	router.GET("/avatar/config", getAvatarConfig(handler))
	router.GET("/avatar/image", getAvatarImage(handler))
}

// getAvatarConfig godoc
// @Summary      Get avatar configuration
// @Description  Returns which avatar settings are configured. Never exposes the API key.
// @Tags         Avatar API
// @Produce      json
// @Success      200 {object} avatar.PublicConfig
// @Router       /avatar/config [get]
func getAvatarConfig(handler *handlers.AvatarHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, handler.PublicConfig())
	}
}

// getAvatarImage godoc
// @Summary      Get avatar image
// @Description  Proxies the configured face render from Cartesia.
// @Tags         Avatar API
// @Produce      image/png
// @Success      200 {file} binary
// @Failure      404 {object} responses.ErrorResponse
// @Failure      502 {object} responses.ErrorResponse
// @Failure      503 {object} responses.ErrorResponse
// @Router       /avatar/image [get]
func getAvatarImage(handler *handlers.AvatarHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		asset, err := handler.FetchImage(c.Request.Context())
		if err != nil {
			responses.HandleError(c, err, "failed to fetch avatar")
			return
		}

		c.Header("Cache-Control", "no-store")
		c.Data(http.StatusOK, asset.ContentType, asset.Payload)
	}
}
