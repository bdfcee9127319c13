package repository

import (
	"errors"
	"os"

	"github.com/vaultpass/passgen/internal/model"
)

// DefaultSettingsPath is the settings file name, relative to the working directory.
const DefaultSettingsPath = "configure.bin"

var ErrCorruptSettings = errors.New("settings file is corrupt")

// SettingsRepository persists settings in a small binary file.
type SettingsRepository struct {
	path string
}

// NewSettingsRepository creates a SettingsRepository backed by the file at path.
func NewSettingsRepository(path string) *SettingsRepository {
	if path == "" {
		path = DefaultSettingsPath
	}
	return &SettingsRepository{path: path}
}

// Path returns the location of the settings file.
func (r *SettingsRepository) Path() string {
	return r.path
}

// Load reads the saved settings. A missing file yields the defaults.
func (r *SettingsRepository) Load() (model.Settings, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return model.DefaultSettings(), nil
		}
		return model.Settings{}, err
	}

	return decodeSettings(data)
}

// Save writes the settings, replacing any previous file.
// An empty alphabet is stored as a single space.
func (r *SettingsRepository) Save(s model.Settings) error {
	if s.Alphabet == "" {
		s.Alphabet = " "
	}
	return os.WriteFile(r.path, encodeSettings(s), 0o644)
}

// Reset removes the settings file. Removing a missing file is not an error.
func (r *SettingsRepository) Reset() error {
	err := os.Remove(r.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
