package password

import (
	"errors"

	"github.com/dmitrymomot/helper/pkg/message"
)

// ErrInvalidArgument is the category of every error returned for bad input.
var ErrInvalidArgument = errors.New("invalid argument")

// LengthError reports a requested length below MinLength.
type LengthError struct {
	Min    int
	Length int
}

func (e *LengthError) Error() string {
	return message.PasswordLengthTooShort.Format(e.Min)
}

// Unwrap allows errors.Is(err, ErrInvalidArgument).
func (e *LengthError) Unwrap() error {
	return ErrInvalidArgument
}
