package responses

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/janhq/avatar-cockpit/internal/utils/platformerrors"
)

// HandleError writes err as a JSON error response. message is logged
// alongside it to say what the route was doing.
func HandleError(c *gin.Context, err error, message string) {
	logger := log.With().
		Str("path", c.Request.URL.Path).
		Str("request_id", c.GetString("request_id")).
		Str("action", message).
		Logger()

	_ = c.Error(err)
	platformerrors.WriteError(c, err, logger)
}
