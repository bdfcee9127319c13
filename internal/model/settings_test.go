package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	assert.Equal(t, 84, s.AlphabetSize())
	assert.Equal(t, 12, s.Length)
	assert.NoError(t, s.Validate())
}

func TestSettingsValidate(t *testing.T) {
	tests := []struct {
		name     string
		settings Settings
		wantErr  error
	}{
		{name: "minimum length", settings: Settings{Alphabet: "a", Length: MinLength}},
		{name: "maximum length", settings: Settings{Alphabet: "a", Length: MaxLength}},
		{name: "single space alphabet", settings: Settings{Alphabet: " ", Length: 4}},
		{name: "empty alphabet", settings: Settings{Length: 4}},
		{name: "zero length", settings: Settings{Alphabet: "a"}, wantErr: ErrLengthOutOfRange},
		{name: "negative length", settings: Settings{Alphabet: "a", Length: -1}, wantErr: ErrLengthOutOfRange},
		{name: "above maximum", settings: Settings{Alphabet: "a", Length: MaxLength + 1}, wantErr: ErrLengthOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAlphabetSizeCountsRunes(t *testing.T) {
	assert.Equal(t, 3, Settings{Alphabet: "ä漢a"}.AlphabetSize())
	assert.Equal(t, 4, Settings{Alphabet: "aaaa"}.AlphabetSize())
}
