package adapter

import (
	"errors"
	"fmt"
)

var (
	// ErrHTTP is wrapped by every [HTTPError].
	ErrHTTP = errors.New("lark http error")
	// ErrAPI is wrapped by every [APIError].
	ErrAPI = errors.New("lark api error")
)

// HTTPError is returned when the server answers with a non-2xx status.
// Body holds the full response text.
type HTTPError struct {
	StatusCode int
	URL        string
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d for %s: %s", e.StatusCode, e.URL, e.Body)
}

func (e *HTTPError) Unwrap() error {
	return ErrHTTP
}

// APIError is returned when HTTP succeeded but the response envelope
// reports a failure (non-zero Code) or lacks a required key (Reason set).
// Body holds the full response as received.
type APIError struct {
	Endpoint string
	Code     int
	Msg      string
	Reason   string
	Body     string
}

func (e *APIError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s error: %s: %s", e.Endpoint, e.Reason, e.Body)
	}
	return fmt.Sprintf("%s error: code %d (%s): %s", e.Endpoint, e.Code, e.Msg, e.Body)
}

func (e *APIError) Unwrap() error {
	return ErrAPI
}
