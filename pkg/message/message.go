package message

import "fmt"

// Message is a fmt template for a user-facing error text.
type Message string

const (
	// PasswordLengthTooShort is rendered with the minimum password length.
	PasswordLengthTooShort Message = "Password length must be at least '%d' characters."

	// UnknownTimeZone is rendered with the offending time zone identifier.
	UnknownTimeZone Message = "Unknown time zone '%s'."
)

// Format renders the template with the provided arguments.
func (m Message) Format(args ...any) string {
	if len(args) == 0 {
		return string(m)
	}
	return fmt.Sprintf(string(m), args...)
}

// String returns the raw template.
func (m Message) String() string {
	return string(m)
}
