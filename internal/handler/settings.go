package handler

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vaultpass/passgen/internal/model"
	"github.com/vaultpass/passgen/internal/service"
)

// SettingsHandler handles the commands that edit and persist the settings fields.
type SettingsHandler struct {
	service *service.SettingsService
	session *Session
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(svc *service.SettingsService, session *Session) *SettingsHandler {
	return &SettingsHandler{service: svc, session: session}
}

// HandleAlphabet replaces the alphabet field with args, verbatim.
func (h *SettingsHandler) HandleAlphabet(_ context.Context, w io.Writer, args string) error {
	h.session.Settings.Alphabet = args
	fmt.Fprintf(w, "Alphabet: %s (%d characters)\n", args, h.session.Settings.AlphabetSize())
	return nil
}

// HandleLength sets the length field.
func (h *SettingsHandler) HandleLength(_ context.Context, w io.Writer, args string) error {
	n, err := strconv.Atoi(strings.TrimSpace(args))
	if err != nil {
		return fmt.Errorf("length must be a whole number, got %q", strings.TrimSpace(args))
	}

	next := h.session.Settings
	next.Length = n
	if err := next.Validate(); err != nil {
		return err
	}

	h.session.Settings = next
	fmt.Fprintf(w, "Length: %d\n", n)
	return nil
}

// HandleSave persists the current fields.
func (h *SettingsHandler) HandleSave(_ context.Context, w io.Writer, _ string) error {
	if err := h.service.Save(h.session.Settings); err != nil {
		return err
	}
	notify(w, "Settings saved")
	return nil
}

// HandleReset deletes the saved settings and reloads the defaults into the fields.
func (h *SettingsHandler) HandleReset(_ context.Context, w io.Writer, _ string) error {
	settings, err := h.service.Reset()
	if err != nil {
		return err
	}

	h.session.Settings = settings
	writeSettings(w, settings)
	return nil
}

// HandleShow prints the current fields and password.
func (h *SettingsHandler) HandleShow(_ context.Context, w io.Writer, _ string) error {
	writeSettings(w, h.session.Settings)
	if h.session.Password != "" {
		fmt.Fprintf(w, "Password: %s\n", h.session.Password)
	}
	return nil
}

func writeSettings(w io.Writer, s model.Settings) {
	fmt.Fprintf(w, "Alphabet: %s (%d characters)\n", s.Alphabet, s.AlphabetSize())
	fmt.Fprintf(w, "Length: %d\n", s.Length)
}
