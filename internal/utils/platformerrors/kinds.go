package platformerrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ConfigurationError reports a missing or invalid operator setting, or a
// remote "not found" that means the setting points at nothing. StatusCode is
// chosen by the component that raised it and is returned to the client as-is.
type ConfigurationError struct {
	Message    string
	StatusCode int
}

// NewConfigurationError creates a ConfigurationError. A zero status becomes 500.
func NewConfigurationError(message string, statusCode int) *ConfigurationError {
	if statusCode == 0 {
		statusCode = http.StatusInternalServerError
	}
	return &ConfigurationError{Message: message, StatusCode: statusCode}
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error (%d): %s", e.StatusCode, e.Message)
}

// UpstreamError reports that a remote service answered with an unexpected
// status or could not be reached. StatusCode is zero when no response arrived.
type UpstreamError struct {
	Service    string
	StatusCode int
	Body       string
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%s request failed: %v", e.Service, e.Err)
	}
	return fmt.Sprintf("%s request failed with status %d: %s", e.Service, e.StatusCode, e.Body)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// AsConfigurationError returns the ConfigurationError in err's chain, or nil.
func AsConfigurationError(err error) *ConfigurationError {
	var cfgErr *ConfigurationError
	if errors.As(err, &cfgErr) {
		return cfgErr
	}
	return nil
}

// AsUpstreamError returns the UpstreamError in err's chain, or nil.
func AsUpstreamError(err error) *UpstreamError {
	var upErr *UpstreamError
	if errors.As(err, &upErr) {
		return upErr
	}
	return nil
}
