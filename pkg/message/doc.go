// Package message holds the human-readable error templates shared by the helper
// packages.
//
// Every error in the module has two halves: a sentinel error that callers match
// with errors.Is (the machine-checkable category) and a Message that renders the
// text shown to users. Keeping the templates in one place lets applications
// translate or override them without digging through each package.
//
// # Usage
//
//	msg := message.PasswordLengthTooShort.Format(4)
//	// Password length must be at least '4' characters.
//
// Messages are plain fmt templates, so the argument order is the order of the
// verbs in the template.
package message
