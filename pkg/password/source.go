package password

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// RandomSource returns uniformly distributed integers in the inclusive range [min, max].
type RandomSource interface {
	Intn(min, max int) int
}

// RandomFunc adapts a plain function to RandomSource.
type RandomFunc func(min, max int) int

// Intn calls f(min, max).
func (f RandomFunc) Intn(min, max int) int {
	return f(min, max)
}

// CryptoSource draws from crypto/rand. The zero value is ready to use.
type CryptoSource struct{}

// Intn returns a uniform value in [min, max].
// It panics if max < min or if the system random reader fails.
func (CryptoSource) Intn(min, max int) int {
	if max < min {
		panic(fmt.Sprintf("password: invalid range [%d, %d]", min, max))
	}
	if max == min {
		return min
	}

	n, err := rand.Int(rand.Reader, big.NewInt(int64(max-min)+1))
	if err != nil {
		panic(fmt.Errorf("password: crypto/rand failed: %w", err))
	}
	return min + int(n.Int64())
}
