package model

import (
	"errors"
	"unicode/utf8"
)

const (
	// DefaultAlphabet is the 84-character alphabet used until the user saves their own.
	DefaultAlphabet = `abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ1234567890@#%"&*()_-+={}<>?:[].~`
	DefaultLength   = 12

	MinLength = 1
	MaxLength = 100
)

var ErrLengthOutOfRange = errors.New("password length must be between 1 and 100")

// Settings is the persisted generator configuration.
type Settings struct {
	Alphabet string
	Length   int
}

// DefaultSettings returns the built-in settings used when nothing has been saved.
func DefaultSettings() Settings {
	return Settings{
		Alphabet: DefaultAlphabet,
		Length:   DefaultLength,
	}
}

// Validate checks the length against the bounds of the length field.
// An empty alphabet is allowed here; it is stored as a single space.
func (s Settings) Validate() error {
	if s.Length < MinLength || s.Length > MaxLength {
		return ErrLengthOutOfRange
	}
	return nil
}

// AlphabetSize returns the number of characters in the alphabet, counting duplicates.
func (s Settings) AlphabetSize() int {
	return utf8.RuneCountInString(s.Alphabet)
}
