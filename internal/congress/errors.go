package congress

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrMissingAPIKey = errors.New("congress API key not found")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrNotFound      = errors.New("not found")
	ErrRateLimited   = errors.New("rate limited")
)

// MapResponseToError folds well-known upstream status codes into sentinel
// errors while preserving the transport error, if any.
func MapResponseToError(response *http.Response, err error) error {
	if response == nil {
		return errors.Join(errors.New("no response received"), err)
	}

	var mappedErr error
	switch {
	case response.StatusCode == http.StatusUnauthorized || response.StatusCode == http.StatusForbidden:
		mappedErr = ErrUnauthorized
	case response.StatusCode == http.StatusNotFound:
		mappedErr = ErrNotFound
	case response.StatusCode == http.StatusTooManyRequests:
		mappedErr = ErrRateLimited
	case response.StatusCode >= 400 && err == nil:
		mappedErr = fmt.Errorf("unexpected status %d", response.StatusCode)
	}

	return errors.Join(mappedErr, err)
}
