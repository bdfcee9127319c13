package service

import (
	"fmt"

	"github.com/vaultpass/passgen/internal/model"
	"github.com/vaultpass/passgen/internal/repository"
)

// SettingsService handles loading, saving and resetting generator settings.
type SettingsService struct {
	repo *repository.SettingsRepository
}

// NewSettingsService creates a new SettingsService.
func NewSettingsService(repo *repository.SettingsRepository) *SettingsService {
	return &SettingsService{repo: repo}
}

// Load returns the saved settings, or the defaults when nothing was saved.
// A stored length outside 1..MaxLength is reported as corrupt settings.
func (s *SettingsService) Load() (model.Settings, error) {
	settings, err := s.repo.Load()
	if err != nil {
		return model.Settings{}, fmt.Errorf("loading settings from %s: %w", s.repo.Path(), err)
	}
	if err := settings.Validate(); err != nil {
		return model.Settings{}, fmt.Errorf("loading settings from %s: %w: stored length %d: %w",
			s.repo.Path(), repository.ErrCorruptSettings, settings.Length, err)
	}
	return settings, nil
}

// Save validates and persists the settings.
func (s *SettingsService) Save(settings model.Settings) error {
	if err := settings.Validate(); err != nil {
		return err
	}
	if err := s.repo.Save(settings); err != nil {
		return fmt.Errorf("saving settings to %s: %w", s.repo.Path(), err)
	}
	return nil
}

// Reset deletes the saved settings and returns the defaults that now apply.
func (s *SettingsService) Reset() (model.Settings, error) {
	if err := s.repo.Reset(); err != nil {
		return model.Settings{}, fmt.Errorf("resetting settings at %s: %w", s.repo.Path(), err)
	}
	return s.Load()
}
