package password

const (
	lowercase = "abcdefghijklmnopqrstuvwxyz"
	uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits    = "0123456789"
	special   = "!@#$%^&*()_-=+;:,.?"

	// Alphabet is the full pool used for filler characters.
	// The order lowercase, uppercase, digits, special is part of the contract.
	Alphabet = lowercase + uppercase + digits + special
)

// classes lists the pools a password must cover, in draw order.
var classes = [...]string{lowercase, uppercase, digits, special}

// MinLength is the shortest password that can hold one character of every class.
const MinLength = len(classes)
