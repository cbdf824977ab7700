package platformerrors

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeErrorFor(t *testing.T, err error) (*httptest.ResponseRecorder, HTTPErrorResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Set(requestIDGinKey, "req-123")

	WriteError(c, err, zerolog.Nop())

	var body HTTPErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	return rec, body
}

func TestWriteErrorConfigurationErrorKeepsStatus(t *testing.T) {
	wrapped := fmt.Errorf("fetch avatar: %w", NewConfigurationError("CARTESIA_FACE_ID is not configured", http.StatusServiceUnavailable))

	rec, body := writeErrorFor(t, wrapped)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "configuration_error", body.Error.Type)
	assert.Equal(t, "CARTESIA_FACE_ID is not configured", body.Error.Message)
	assert.Equal(t, "req-123", body.Error.RequestID)
}

func TestWriteErrorUpstreamBecomesBadGateway(t *testing.T) {
	rec, body := writeErrorFor(t, &UpstreamError{Service: "cartesia", StatusCode: 500, Body: "boom"})

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, "external_error", body.Error.Type)
	assert.NotContains(t, body.Error.Message, "boom")
}

func TestWriteErrorPlatformErrorMappedByType(t *testing.T) {
	err := NewError(context.Background(), LayerDomain, ErrorTypeValidation, "identity must not be blank", nil)

	rec, body := writeErrorFor(t, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "validation_error", body.Error.Type)
	assert.Equal(t, err.UUID, body.Error.Code)
}

func TestWriteErrorGenericIsInternal(t *testing.T) {
	rec, body := writeErrorFor(t, errors.New("unexpected"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internal_error", body.Error.Type)
}

func TestNewConfigurationErrorDefaultsStatus(t *testing.T) {
	err := NewConfigurationError("missing", 0)
	assert.Equal(t, http.StatusInternalServerError, err.StatusCode)
}

func TestNewErrorCarriesRequestIDFromContext(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-abc")
	err := NewError(ctx, LayerHandler, ErrorTypeInternal, "boom", nil)
	assert.Equal(t, "req-abc", err.RequestID)
	assert.NotEmpty(t, err.UUID)
}

func TestUpstreamErrorUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := &UpstreamError{Service: "cartesia", Err: cause}

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection refused")
	assert.Nil(t, AsConfigurationError(err))
}
