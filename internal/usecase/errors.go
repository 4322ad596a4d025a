package usecase

import (
	"errors"
)

// ErrInvalidCredentials is returned for both an unknown identifier and a
// wrong password, so callers cannot probe which accounts exist.
var ErrInvalidCredentials = errors.New("invalid username/email or password")

// ValidationError rejects a request whose input shape or content is wrong.
type ValidationError struct {
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string {
	return e.Message
}
