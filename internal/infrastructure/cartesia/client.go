// Package cartesia fetches avatar renders from the Cartesia API.
package cartesia

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/janhq/avatar-cockpit/internal/domain/avatar"
	"github.com/janhq/avatar-cockpit/internal/utils/platformerrors"
)

const (
	serviceName = "cartesia"
	// maxErrorBody bounds how much of a failed response is kept for logs.
	maxErrorBody = 64 << 10
)

// Client implements avatar.Fetcher over HTTP.
type Client struct {
	httpClient *resty.Client
	tracer     trace.Tracer
}

// NewClient creates a Cartesia client. A nil httpClient uses resty's default
// transport; no extra timeout is applied, the request context governs.
func NewClient(httpClient *http.Client) *Client {
	var client *resty.Client
	if httpClient == nil {
		client = resty.New()
	} else {
		client = resty.NewWithClient(httpClient)
	}
	client.SetHeader("User-Agent", "Jan-Avatar-Cockpit/1.0")

	return &Client{
		httpClient: client,
		tracer:     otel.Tracer("cartesia-client"),
	}
}

// Fetch downloads the image at url using apiKey as a bearer credential.
func (c *Client) Fetch(ctx context.Context, url, apiKey string) (*avatar.Asset, error) {
	ctx, span := c.tracer.Start(ctx, "cartesia.fetch_avatar",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("http.url", url)),
	)
	defer span.End()

	res, err := c.httpClient.R().
		SetContext(ctx).
		SetAuthToken(apiKey).
		SetHeader("Accept", "image/*").
		Get(url)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "request failed")
		return nil, &platformerrors.UpstreamError{Service: serviceName, Err: fmt.Errorf("fetch avatar: %w", err)}
	}

	span.SetAttributes(attribute.Int("http.status_code", res.StatusCode()))

	if res.StatusCode() == http.StatusNotFound {
		span.SetStatus(codes.Error, "asset not found")
		return nil, platformerrors.NewConfigurationError("Cartesia avatar asset not found", http.StatusNotFound)
	}

	if !res.IsSuccess() {
		body := res.Body()
		if len(body) > maxErrorBody {
			body = body[:maxErrorBody]
		}
		span.SetStatus(codes.Error, res.Status())
		return nil, &platformerrors.UpstreamError{
			Service:    serviceName,
			StatusCode: res.StatusCode(),
			Body:       strings.TrimSpace(string(body)),
		}
	}

	contentType := res.Header().Get("Content-Type")
	if contentType == "" {
		contentType = avatar.DefaultContentType
	}

	payload := res.Body()
	span.SetAttributes(attribute.Int("avatar.bytes", len(payload)))
	return &avatar.Asset{Payload: payload, ContentType: contentType}, nil
}
