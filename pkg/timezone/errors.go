package timezone

import (
	"errors"

	"github.com/dmitrymomot/helper/pkg/message"
)

var (
	// ErrUnknownZone is returned when an identifier cannot be loaded.
	ErrUnknownZone = errors.New("unknown time zone")

	// ErrDatabaseNotFound is returned when no zoneinfo directory can be found.
	ErrDatabaseNotFound = errors.New("time zone database not found")
)

// ZoneError reports an identifier that time.LoadLocation rejected.
type ZoneError struct {
	ID  string
	Err error
}

func (e *ZoneError) Error() string {
	return message.UnknownTimeZone.Format(e.ID)
}

// Unwrap exposes both ErrUnknownZone and the loader error.
func (e *ZoneError) Unwrap() []error {
	return []error{ErrUnknownZone, e.Err}
}
