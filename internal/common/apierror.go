package common

import (
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/api/googleapi"
)

// WrapAPIError maps Google API HTTP failures onto the shared error
// taxonomy. Anything that isn't an auth or not-found condition passes
// through with context.
func WrapAPIError(op string, err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusNotFound:
			return fmt.Errorf("%w: %s: %v", ErrNotFound, op, err)
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("%w: %s: %v", ErrAuth, op, err)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}
