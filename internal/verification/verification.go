// Package verification implements the Fitbit subscriber verification handshake.
package verification

import (
	"crypto/subtle"
	"fmt"
)

// QueryParameter is the name of the query-string parameter carrying the verification code.
const QueryParameter = "verify"

// Secret represents the subscriber verification code configured for the Fitbit subscription.
type Secret string

// NewSecret creates a new Secret from the provided verification code and returns its address. An empty code
// yields a nil Secret, which never verifies.
func NewSecret(code string) *Secret {
	if code == "" {
		return nil
	}
	s := Secret(code)
	return &s
}

// Configured reports whether a verification code is available.
func (s *Secret) Configured() bool {
	return s != nil && *s != ""
}

// Verify checks the verification code carried by the query parameters against the configured secret.
// The comparison is exact. A nil query map means the request carried no query string.
func (s *Secret) Verify(query map[string]string) error {
	if query == nil {
		return &FailedError{Reason: "missing query parameters"}
	}
	code, found := query[QueryParameter]
	if !found {
		return &FailedError{Reason: fmt.Sprintf("missing %q query parameter", QueryParameter)}
	}
	if !s.Configured() {
		return &FailedError{Reason: "verification code is not configured"}
	}
	if subtle.ConstantTimeCompare([]byte(code), []byte(*s)) != 1 {
		return &FailedError{Reason: "verification code mismatch"}
	}
	return nil
}

// FailedError is returned when a verification request cannot be satisfied.
type FailedError struct {
	Reason string
}

func (e *FailedError) Error() string {
	return "verification failed: " + e.Reason
}
