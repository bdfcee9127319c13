package handler

import "github.com/vaultpass/passgen/internal/model"

// Session is the state the shell edits between commands: the settings
// fields and the password currently shown.
type Session struct {
	Settings model.Settings
	Password string
}

// NewSession starts a session from the loaded settings.
func NewSession(settings model.Settings) *Session {
	return &Session{Settings: settings}
}
