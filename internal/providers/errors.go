package providers

import (
	"errors"
	"fmt"
)

type authError struct {
	message string
}

func (e *authError) Error() string {
	return "authentication error: " + e.message
}

// IsAuthError checks if an error is an authentication error, unwrapping
// as needed.
func IsAuthError(err error) bool {
	var ae *authError
	return errors.As(err, &ae)
}

type serverError struct {
	statusCode int
	body       string
}

func (e *serverError) Error() string {
	return fmt.Sprintf("server error (status %d): %s", e.statusCode, e.body)
}
