package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/MKhiriev/bitable-schema/internal/config"
	"github.com/MKhiriev/bitable-schema/internal/logger"
	"github.com/MKhiriev/bitable-schema/internal/utils"
)

type larkAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewLarkAdapter constructs the HTTP implementation of [LarkAdapter] rooted
// at cfg.BaseURL. Only the base URL is configured on the underlying client;
// there is no timeout override and no retry policy.
func NewLarkAdapter(cfg config.Lark, log *logger.Logger) LarkAdapter {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = config.DefaultBaseURL
	}
	log = log.Named("lark")

	return &larkAdapter{
		client: utils.NewHTTPClient(baseURL, log),
		logger: log,
	}
}

// apiRequest describes a single call to the Lark Open API.
type apiRequest struct {
	method     string
	path       string
	headers    map[string]string
	pathParams map[string]string
	query      url.Values
	// body is sent as JSON when non-nil.
	body any
}

// doJSON performs exactly one round trip and decodes a 2xx body into out.
// The raw body is returned as well so API errors can carry the full
// response.
func (l *larkAdapter) doJSON(ctx context.Context, req apiRequest, out any) ([]byte, error) {
	r := l.client.R().
		SetContext(ctx).
		SetHeaders(req.headers).
		SetPathParams(req.pathParams).
		SetQueryParamsFromValues(req.query)
	if req.body != nil {
		r.SetHeader("Content-Type", "application/json").SetBody(req.body)
	}

	resp, err := r.Execute(req.method, req.path)
	if err != nil {
		return nil, fmt.Errorf("%s %s request: %w", req.method, req.path, err)
	}

	l.logger.Debug().
		Str("method", req.method).
		Str("url", requestURL(resp)).
		Int("status", resp.StatusCode()).
		Str("request_id", resp.Request.Header.Get(utils.HeaderRequestID)).
		Dur("elapsed", resp.Time()).
		Msg("lark api call")

	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	body := resp.Body()
	if err = json.Unmarshal(body, out); err != nil {
		return nil, fmt.Errorf("decode %s response: %w", req.path, err)
	}

	return body, nil
}
