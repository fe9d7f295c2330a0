package consoleclient

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/giantswarm/microerror"
)

var invalidConfigError = &microerror.Error{
	Kind: "invalidConfigError",
}

// IsInvalidConfig asserts invalidConfigError.
func IsInvalidConfig(err error) bool {
	return microerror.Cause(err) == invalidConfigError
}

var authenticationError = &microerror.Error{
	Kind: "authenticationError",
}

// IsAuthentication asserts authenticationError.
func IsAuthentication(err error) bool {
	return microerror.Cause(err) == authenticationError
}

var transportError = &microerror.Error{
	Kind: "transportError",
}

// IsTransport asserts transportError.
func IsTransport(err error) bool {
	return microerror.Cause(err) == transportError
}

var decodeError = &microerror.Error{
	Kind: "decodeError",
}

// IsDecode asserts decodeError.
func IsDecode(err error) bool {
	return microerror.Cause(err) == decodeError
}

// APIError is returned for every response with a non-2xx status code.
type APIError struct {
	Method     string
	URL        string
	StatusCode int
	Status     string
	// Body is the raw response body as sent by the server.
	Body []byte
}

func (e *APIError) Error() string {
	if len(e.Body) == 0 {
		return fmt.Sprintf("%s %s: %s", e.Method, e.URL, e.Status)
	}
	return fmt.Sprintf("%s %s: %s: %s", e.Method, e.URL, e.Status, e.Body)
}

// IsAPIError asserts *APIError.
func IsAPIError(err error) bool {
	_, ok := asAPIError(err)
	return ok
}

// StatusCode returns the HTTP status of an *APIError, or 0 for any other
// error.
func StatusCode(err error) int {
	apiErr, ok := asAPIError(err)
	if !ok {
		return 0
	}
	return apiErr.StatusCode
}

func IsUnauthorized(err error) bool {
	return StatusCode(err) == http.StatusUnauthorized
}

func IsForbidden(err error) bool {
	return StatusCode(err) == http.StatusForbidden
}

func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}

func IsServerError(err error) bool {
	code := StatusCode(err)
	return code >= 500 && code < 600
}

func asAPIError(err error) (*APIError, bool) {
	if err == nil {
		return nil, false
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	if apiErr, ok := microerror.Cause(err).(*APIError); ok {
		return apiErr, true
	}

	return nil, false
}
