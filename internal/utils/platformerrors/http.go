package platformerrors

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// requestIDGinKey mirrors middlewares.RequestIDKey without importing it.
const requestIDGinKey = "request_id"

// HTTPErrorResponse represents the standard error response format.
type HTTPErrorResponse struct {
	Error *HTTPErrorDetail `json:"error"`
}

// HTTPErrorDetail contains error details for HTTP responses.
type HTTPErrorDetail struct {
	Message   string `json:"message"`
	Type      string `json:"type"`
	Code      string `json:"code,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// WriteHTTPError writes a PlatformError as an HTTP response.
// It maps the error type to an appropriate HTTP status code and formats the response.
func WriteHTTPError(c *gin.Context, err *PlatformError, log zerolog.Logger) {
	if err == nil {
		WriteInternalError(c, "unknown error")
		return
	}

	LogError(log, err)

	requestID := err.RequestID
	if requestID == "" {
		requestID = c.GetString(requestIDGinKey)
	}

	c.AbortWithStatusJSON(ErrorTypeToHTTPStatus(err.Type), HTTPErrorResponse{
		Error: &HTTPErrorDetail{
			Message:   err.Message,
			Type:      ErrorTypeToString(err.Type),
			Code:      err.UUID,
			RequestID: requestID,
		},
	})
}

// WriteError writes a generic error as an HTTP response.
// Configuration errors keep their own status, upstream failures become 502,
// platform errors are mapped by type and anything else is treated as internal.
func WriteError(c *gin.Context, err error, log zerolog.Logger) {
	if err == nil {
		WriteInternalError(c, "unknown error")
		return
	}

	if cfgErr := AsConfigurationError(err); cfgErr != nil {
		log.Warn().Int("status", cfgErr.StatusCode).Msg(cfgErr.Message)
		writeJSON(c, cfgErr.StatusCode, cfgErr.Message, "configuration_error")
		return
	}

	if upErr := AsUpstreamError(err); upErr != nil {
		log.Error().
			Str("upstream", upErr.Service).
			Int("upstream_status", upErr.StatusCode).
			Str("upstream_body", upErr.Body).
			Err(upErr.Err).
			Msg("upstream request failed")
		writeJSON(c, http.StatusBadGateway, upErr.Service+" request failed", "external_error")
		return
	}

	if platformErr := GetPlatformError(err); platformErr != nil {
		WriteHTTPError(c, platformErr, log)
		return
	}

	log.Error().Err(err).Msg("unhandled error")
	writeJSON(c, http.StatusInternalServerError, err.Error(), "internal_error")
}

// WriteNotFound writes a 404 Not Found response.
func WriteNotFound(c *gin.Context, message string) {
	writeJSON(c, http.StatusNotFound, message, "not_found_error")
}

// WriteUnauthorized writes a 401 Unauthorized response.
func WriteUnauthorized(c *gin.Context, message string) {
	writeJSON(c, http.StatusUnauthorized, message, "unauthorized_error")
}

// WriteInternalError writes a 500 Internal Server Error response.
func WriteInternalError(c *gin.Context, message string) {
	writeJSON(c, http.StatusInternalServerError, message, "internal_error")
}

func writeJSON(c *gin.Context, status int, message, errorType string) {
	c.AbortWithStatusJSON(status, HTTPErrorResponse{
		Error: &HTTPErrorDetail{
			Message:   message,
			Type:      errorType,
			RequestID: c.GetString(requestIDGinKey),
		},
	})
}

// ErrorTypeToString converts an ErrorType to a snake_case string for API responses.
func ErrorTypeToString(t ErrorType) string {
	switch t {
	case ErrorTypeNotFound:
		return "not_found_error"
	case ErrorTypeValidation:
		return "validation_error"
	case ErrorTypeUnauthorized:
		return "unauthorized_error"
	case ErrorTypeForbidden:
		return "forbidden_error"
	case ErrorTypeNotImplemented:
		return "not_implemented_error"
	case ErrorTypeExternal:
		return "external_error"
	case ErrorTypeInternal:
		fallthrough
	default:
		return "internal_error"
	}
}
