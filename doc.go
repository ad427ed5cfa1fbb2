// Package helper is the root of a small collection of text helpers for
// services that need strong passwords, time zone pickers and identifier case
// conversion.
//
// The importable packages live under pkg/:
//
//   - password: random passwords that always contain a lowercase letter, an
//     uppercase letter, a digit and a special character
//   - timezone: the time zone database as display entries sorted by UTC offset
//   - wordcase: camelCase, snake_case and title word conversion
//   - message: the human-readable templates behind every error
//
// Supporting packages (config, environment, logger) provide environment based
// configuration and structured logging for the helper command in cmd/helper.
//
// Basic usage:
//
//	pw, err := password.Generate(16)
//	if errors.Is(err, password.ErrInvalidArgument) {
//		// length below password.MinLength
//	}
//
//	zones, err := timezone.All()
//	for _, z := range zones {
//		fmt.Println(z.Name) // "Pacific/Midway (UTC -11:00)"
//	}
//
//	wordcase.CamelToSnake("dateOfMessage") // "date_of_message"
package helper
