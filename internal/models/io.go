// Package models provides the core data structures for handling webhook requests and responses.
package models

// Request represents a single invocation as delivered by the host runtime.
type Request struct {
	// Method is the HTTP method of the request, as received.
	Method string
	// QueryParameters holds the first value of each query-string parameter. A nil map means the host delivered no
	// query string at all, which is distinct from an empty one.
	QueryParameters map[string]string
	// Body is the raw request body. It is never interpreted.
	Body string
	// Headers are lower-cased and only logged alongside notifications.
	Headers map[string]string
}

// Response defines the structure for an HTTP response containing a body, headers, and a status code.
type Response struct {
	Body       string
	Headers    map[string]string
	StatusCode int
}
