package adapter

import (
	"github.com/MKhiriev/bitable-schema/models"
	"github.com/go-resty/resty/v2"
)

// mapHTTPError returns nil for 2xx responses and an *HTTPError carrying the
// status, final URL and untouched body text otherwise.
func mapHTTPError(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}

	return &HTTPError{
		StatusCode: resp.StatusCode(),
		URL:        requestURL(resp),
		Body:       string(resp.Body()),
	}
}

// mapAPIStatus returns an *APIError when the envelope code is missing or
// non-zero.
func mapAPIStatus(endpoint string, status models.APIStatus, body []byte) error {
	if status.Code == nil {
		return &APIError{
			Endpoint: endpoint,
			Msg:      status.Msg,
			Reason:   "code missing from response",
			Body:     string(body),
		}
	}
	if *status.Code == 0 {
		return nil
	}

	return &APIError{
		Endpoint: endpoint,
		Code:     *status.Code,
		Msg:      status.Msg,
		Body:     string(body),
	}
}

func requestURL(resp *resty.Response) string {
	if resp.Request == nil {
		return ""
	}
	if raw := resp.Request.RawRequest; raw != nil && raw.URL != nil {
		return raw.URL.String()
	}
	return resp.Request.URL
}
