// Package passgen generates passwords from a user-supplied alphabet and rates them.
package passgen

import (
	"errors"
	"strings"
)

var (
	ErrInvalidLength = errors.New("password length must be positive")
	ErrEmptyAlphabet = errors.New("alphabet must not be empty")
)

// Generator draws passwords from an alphabet using its Source.
type Generator struct {
	src Source
}

// NewGenerator creates a Generator. A nil source falls back to DefaultSource.
func NewGenerator(src Source) *Generator {
	if src == nil {
		src = DefaultSource()
	}
	return &Generator{src: src}
}

// Generate returns length characters picked uniformly, with replacement, from alphabet.
// Repeated characters in alphabet are weighted by how often they appear.
func (g *Generator) Generate(length int, alphabet string) (string, error) {
	if length <= 0 {
		return "", ErrInvalidLength
	}
	if alphabet == "" {
		return "", ErrEmptyAlphabet
	}

	chars := []rune(alphabet)

	var sb strings.Builder
	sb.Grow(length)

	for i := 0; i < length; i++ {
		sb.WriteRune(chars[g.src.IntN(len(chars))])
	}

	return sb.String(), nil
}
