package helpers

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/isometry/fitbit-webhook-app/internal/models"
)

// RespondHTTP writes the response headers, status code and raw body. A zero status code is sent as 200.
func RespondHTTP(response models.Response, rw http.ResponseWriter) {
	for k, v := range response.Headers {
		rw.Header().Set(k, v)
	}
	statusCode := response.StatusCode
	if statusCode == 0 {
		statusCode = http.StatusOK
	}
	rw.WriteHeader(statusCode)
	if response.Body != "" && bodyAllowed(statusCode) {
		_, _ = rw.Write([]byte(response.Body))
	}
}

func bodyAllowed(statusCode int) bool {
	return statusCode != http.StatusNoContent && statusCode != http.StatusNotModified && statusCode >= 200
}

// QueryParameters flattens a query string to its first values. It returns nil when the query string is empty so
// that callers can tell "no query string" apart from "no such parameter".
func QueryParameters(rawQuery string) map[string]string {
	if rawQuery == "" {
		return nil
	}
	values, _ := url.ParseQuery(rawQuery)
	params := make(map[string]string, len(values))
	for k, v := range values {
		if len(v) > 0 {
			params[k] = v[0]
		}
	}
	return params
}

// NormaliseHeaders lower-cases header names and keeps the first value of each.
func NormaliseHeaders(header http.Header) map[string]string {
	headers := make(map[string]string, len(header))
	for k, v := range header {
		if len(v) > 0 {
			headers[strings.ToLower(k)] = v[0]
		}
	}
	return headers
}
