package wordcase

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// upperSegments matches values made only of capitalized, underscore separated segments
// such as "CREATED_AT" or "Test_Case".
var upperSegments = regexp.MustCompile(`^[A-Z][^_]*(_[A-Z][^_]*)*$`)

// Converter performs case conversions using the rules of one language.
// cases.Caser is stateful, so casers are created per call and a Converter is
// safe for concurrent use.
type Converter struct {
	tag language.Tag
}

// New returns a Converter for the given language.
func New(tag language.Tag) *Converter {
	return &Converter{tag: tag}
}

var defaultConverter = New(language.Und)

// CamelToSnake converts camelCase or PascalCase to snake_case.
func CamelToSnake(s string) string { return defaultConverter.CamelToSnake(s) }

// SnakeToCamel converts snake_case to camelCase.
func SnakeToCamel(s string) string { return defaultConverter.SnakeToCamel(s) }

// TitleWords converts an identifier into capitalized words separated by spaces.
func TitleWords(s string) string { return defaultConverter.TitleWords(s) }

// CamelToSnake inserts an underscore before every uppercase ASCII letter,
// trims leading underscores and lowercases the result.
func (c *Converter) CamelToSnake(s string) string {
	var b strings.Builder
	b.Grow(len(s) + len(s)/2)

	for _, r := range s {
		if isUpper(r) {
			b.WriteByte('_')
		}
		b.WriteRune(r)
	}

	return c.lower(strings.TrimLeft(b.String(), "_"))
}

// SnakeToCamel lowercases the first segment and capitalizes the first letter of
// every following one. Values without underscores are returned unchanged.
func (c *Converter) SnakeToCamel(s string) string {
	if !strings.Contains(s, "_") {
		return s
	}

	words := strings.Split(s, "_")

	var b strings.Builder
	b.Grow(len(s))
	b.WriteString(c.lower(words[0]))
	for _, w := range words[1:] {
		b.WriteString(c.upperFirst(w))
	}

	return b.String()
}

// TitleWords splits s on underscores and camel case transitions and capitalizes
// each word. Fully capitalized segments ("CREATED_AT") are lowercased before
// capitalizing; other words keep the case of their remaining letters.
func (c *Converter) TitleWords(s string) string {
	if upperSegments.MatchString(s) {
		segments := strings.Split(s, "_")
		for i, seg := range segments {
			segments[i] = c.upperFirst(c.lower(seg))
		}
		return strings.Join(segments, " ")
	}

	words := splitWords(s)
	for i, w := range words {
		words[i] = c.upperFirst(w)
	}
	return strings.Join(words, " ")
}

func (c *Converter) lower(s string) string {
	return cases.Lower(c.tag).String(s)
}

func (c *Converter) upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return cases.Upper(c.tag).String(string(r)) + s[size:]
}

// splitWords cuts s at underscores (dropped) and between a lowercase and an
// uppercase ASCII letter.
func splitWords(s string) []string {
	var (
		words []string
		start int
		prev  rune
	)

	for i, r := range s {
		switch {
		case r == '_':
			words = append(words, s[start:i])
			start = i + 1
		case isUpper(r) && isLower(prev):
			words = append(words, s[start:i])
			start = i
		}
		prev = r
	}

	return append(words, s[start:])
}

func isUpper(r rune) bool { return r >= 'A' && r <= 'Z' }

func isLower(r rune) bool { return r >= 'a' && r <= 'z' }
