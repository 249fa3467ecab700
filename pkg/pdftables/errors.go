package pdftables

import (
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrInvalidFormat indicates an unrecognized output-format token. It is
// reported before any network I/O takes place.
var ErrInvalidFormat = errors.New("invalid output format")

// ErrInvalidConfiguration indicates a bad extractor/extract combination
// at client construction time.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// APIError is a failure reported by the conversion service, classified
// from the response status code, or a precondition failure such as an
// empty API key.
type APIError struct {
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// StatusError is an unsuccessful HTTP response that does not map to a
// known service failure. It carries the status code and body so the
// caller can diagnose it.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Body)
}

// apiErrorMessages maps service status codes to their fixed error
// messages. These codes never fall through to a generic StatusError.
var apiErrorMessages = map[int]string{
	http.StatusBadRequest:      "Unknown file format",
	http.StatusUnauthorized:    "Unauthorized API key",
	http.StatusPaymentRequired: "Usage limit exceeded",
	http.StatusForbidden:       "Unknown format requested",
}

// classifyStatus translates a response status code into an error. A 2xx
// status returns nil. The explicit service codes are consulted before the
// generic check; for anything else unsuccessful the body is drained into
// a StatusError.
func classifyStatus(resp *http.Response) error {
	if msg, ok := apiErrorMessages[resp.StatusCode]; ok {
		return &APIError{Message: msg}
	}
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	return &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
}
