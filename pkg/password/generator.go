package password

import "slices"

// Option configures a Generator.
type Option func(*Generator)

// WithSource sets the random source. Nil sources are ignored.
func WithSource(src RandomSource) Option {
	return func(g *Generator) {
		if src != nil {
			g.source = src
		}
	}
}

// Generator produces passwords from an injected random source.
type Generator struct {
	source RandomSource
}

// New creates a Generator backed by CryptoSource unless WithSource is given.
func New(opts ...Option) *Generator {
	g := &Generator{source: CryptoSource{}}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

var defaultGenerator = New()

// Generate returns a password of the given length using crypto/rand.
func Generate(length int) (string, error) {
	return defaultGenerator.Generate(length)
}

// Generate returns a password of exactly length characters containing at least
// one lowercase letter, one uppercase letter, one digit and one special character.
// It returns a *LengthError when length is below MinLength; no randomness is
// consumed in that case.
func (g *Generator) Generate(length int) (string, error) {
	if length < MinLength {
		return "", &LengthError{Min: MinLength, Length: length}
	}

	candidate := make([]byte, 0, length)
	for _, pool := range classes {
		candidate = append(candidate, g.pick(pool))
	}
	for range length - MinLength {
		candidate = append(candidate, g.pick(Alphabet))
	}

	return string(g.shuffle(candidate)), nil
}

func (g *Generator) pick(pool string) byte {
	return pool[g.source.Intn(0, len(pool)-1)]
}

// shuffle moves a random element of the working set to the output until the set
// is empty. The draw bounds are len-1, len-2, ..., 0. Removal keeps the order
// of the remaining characters, which costs O(n²) moves in total.
func (g *Generator) shuffle(chars []byte) []byte {
	out := make([]byte, 0, len(chars))
	for remaining := len(chars); remaining > 0; remaining-- {
		j := g.source.Intn(0, remaining-1)
		out = append(out, chars[j])
		chars = slices.Delete(chars, j, j+1)
	}
	return out
}
