package httpclient

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrMalformedResponse is returned when a response body is not JSON.
var ErrMalformedResponse = errors.New("malformed response from server")

// NetworkError means no response was obtained at all.
type NetworkError struct {
	Origin string
	Err    error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("cannot reach the server, make sure the backend is running at %s", e.Origin)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// HTTPError is a transport-level failure status.
type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("http error: status %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("http error: status %d", e.Status)
}

// ApplicationError is a business failure signaled through the envelope code.
type ApplicationError struct {
	Code    int
	Message string
}

func (e *ApplicationError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("request failed (code %d)", e.Code)
	}
	return e.Message
}

// CodeFailed is the single envelope convention: any code >= 400 is a failure.
// Zero (absent) and 2xx/3xx codes are success.
func CodeFailed(code int) bool {
	return code >= 400
}

// IsUnauthorized reports whether err carries a 401 at either level.
func IsUnauthorized(err error) bool {
	var he *HTTPError
	if errors.As(err, &he) && he.Status == http.StatusUnauthorized {
		return true
	}
	var ae *ApplicationError
	return errors.As(err, &ae) && ae.Code == http.StatusUnauthorized
}

// Message returns the user-facing text for err.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var ae *ApplicationError
	if errors.As(err, &ae) {
		return ae.Error()
	}
	var he *HTTPError
	if errors.As(err, &he) {
		return he.Error()
	}
	return err.Error()
}
