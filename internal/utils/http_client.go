package utils

import (
	"strings"

	"github.com/MKhiriev/bitable-schema/internal/logger"
	"github.com/go-resty/resty/v2"
)

// HeaderRequestID is the header carrying the per-request correlation ID.
const HeaderRequestID = "X-Request-Id"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient("https://open.larksuite.com/open-apis", log)
//	resp, err := client.R().Get("/some/endpoint")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient instance rooted at
// baseURL. Relative request paths are joined to it.
//
// Every outgoing request is stamped with an [HeaderRequestID] header unless
// the caller already set one. No timeout and no retries are configured: each
// request is exactly one round trip bounded only by the caller's context.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient(baseURL string, log *logger.Logger) *HTTPClient {
	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetHeader("Accept", "application/json").
		SetLogger(restyLogger{log}).
		OnBeforeRequest(stampRequestID)

	return &HTTPClient{Client: client}
}

func stampRequestID(_ *resty.Client, r *resty.Request) error {
	if r.Header.Get(HeaderRequestID) == "" {
		r.SetHeader(HeaderRequestID, NewRequestID())
	}
	return nil
}

// restyLogger routes resty's internal diagnostics into zerolog.
type restyLogger struct {
	log *logger.Logger
}

func (l restyLogger) Errorf(format string, v ...any) {
	l.log.Error().Msgf(strings.TrimSpace(format), v...)
}

func (l restyLogger) Warnf(format string, v ...any) {
	l.log.Warn().Msgf(strings.TrimSpace(format), v...)
}

func (l restyLogger) Debugf(format string, v ...any) {
	l.log.Debug().Msgf(strings.TrimSpace(format), v...)
}
