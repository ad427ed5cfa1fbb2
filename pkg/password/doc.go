// Package password generates random passwords with guaranteed character-class
// coverage.
//
// Every password is built from four ordered character pools: lowercase
// letters, uppercase letters, digits and a fixed set of 19 special symbols
// (!@#$%^&*()_-=+;:,.?). A generated password always contains at least one
// character of each pool, only contains characters from the combined 81 symbol
// alphabet and has exactly the requested length.
//
// # Algorithm
//
//  1. One required character is drawn from each pool, in the order lowercase,
//     uppercase, digit, special.
//  2. The remaining length-4 characters are drawn from the full alphabet.
//  3. The candidate sequence (required characters followed by filler
//     characters) is shuffled with Fisher-Yates by index removal: for every
//     output position a uniform index into the shrinking working set is drawn
//     and the selected character is moved to the output.
//
// A call with length n therefore consumes exactly 2n draws from the random
// source, and the shuffle draws have inclusive upper bounds n-1, n-2, ..., 0.
// Removing a character shifts the rest of the working set, so the shuffle costs
// O(n²) byte moves. That is negligible for password lengths; callers accepting
// untrusted lengths should cap them.
//
// # Randomness
//
// The default source is CryptoSource, backed by crypto/rand. The source is an
// explicit dependency of Generator, so tests inject a deterministic RandomFunc
// instead of patching globals:
//
//	gen := password.New(password.WithSource(password.RandomFunc(func(min, max int) int {
//		return min
//	})))
//	pw, _ := gen.Generate(4) // "aA0!"
//
// CryptoSource treats a failing crypto/rand reader as unrecoverable and panics.
// Since Go 1.24 the standard library reader does not return errors on any
// supported platform, so Generate has no failure mode other than a too short
// length.
//
// # Usage
//
//	pw, err := password.Generate(16)
//	if err != nil {
//		var lenErr *password.LengthError
//		if errors.As(err, &lenErr) {
//			// lenErr.Min is the minimum accepted length
//		}
//		return err
//	}
//
// # Concurrency
//
// Generator holds no mutable state. It is safe for concurrent use as long as
// the injected RandomSource is; CryptoSource is.
package password
