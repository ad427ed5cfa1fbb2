package password

import "strings"

// Class is a bit set of character classes.
type Class uint8

const (
	Lower Class = 1 << iota
	Upper
	Digit
	Special

	// AllClasses is the coverage every generated password has.
	AllClasses = Lower | Upper | Digit | Special
)

// Has reports whether every class in other is set in c.
func (c Class) Has(other Class) bool {
	return c&other == other
}

// Classes returns the classes present in s. Characters outside the alphabet are ignored.
func Classes(s string) Class {
	var c Class
	for i := 0; i < len(s); i++ {
		c |= classOf(s[i])
	}
	return c
}

// Valid reports whether s only uses alphabet characters, covers every class and
// is at least MinLength long.
func Valid(s string) bool {
	if len(s) < MinLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		if classOf(s[i]) == 0 {
			return false
		}
	}
	return Classes(s).Has(AllClasses)
}

func classOf(b byte) Class {
	switch {
	case b >= 'a' && b <= 'z':
		return Lower
	case b >= 'A' && b <= 'Z':
		return Upper
	case b >= '0' && b <= '9':
		return Digit
	case strings.IndexByte(special, b) >= 0:
		return Special
	}
	return 0
}
