package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/vaultpass/passgen/internal/model"
	"github.com/vaultpass/passgen/internal/passgen"
	"github.com/vaultpass/passgen/internal/service"
)

var ErrCopyFailed = errors.New("copy failed")

// GeneratorHandler handles the commands that produce, rate and copy passwords.
type GeneratorHandler struct {
	service   *service.GeneratorService
	session   *Session
	clipboard Clipboard
}

// NewGeneratorHandler creates a new GeneratorHandler.
func NewGeneratorHandler(svc *service.GeneratorService, session *Session, cb Clipboard) *GeneratorHandler {
	if cb == nil {
		cb = SystemClipboard{}
	}
	return &GeneratorHandler{service: svc, session: session, clipboard: cb}
}

// HandleGenerate generates a password from the current fields and shows it.
func (h *GeneratorHandler) HandleGenerate(_ context.Context, w io.Writer, _ string) error {
	resp, err := h.service.Generate(model.GenerateRequest{
		Length:   h.session.Settings.Length,
		Alphabet: h.session.Settings.Alphabet,
	})
	if err != nil {
		if isValidationError(err) {
			return err
		}
		return fmt.Errorf("generating password: %w", err)
	}

	h.session.Password = resp.Password
	fmt.Fprintf(w, "Password: %s\n", resp.Password)
	writeStrength(w, resp.Strength)
	return nil
}

// HandleCheck replaces the shown password with args and rates it.
func (h *GeneratorHandler) HandleCheck(_ context.Context, w io.Writer, args string) error {
	h.session.Password = args
	writeStrength(w, h.service.Check(args))
	return nil
}

// HandleCopy copies the shown password to the clipboard.
func (h *GeneratorHandler) HandleCopy(_ context.Context, w io.Writer, _ string) error {
	if strings.TrimSpace(h.session.Password) == "" {
		return fmt.Errorf("%w: no password to copy", ErrCopyFailed)
	}
	if err := h.clipboard.WriteAll(h.session.Password); err != nil {
		return fmt.Errorf("%w: %w", ErrCopyFailed, err)
	}

	notify(w, "Password copied")
	return nil
}

func writeStrength(w io.Writer, s model.StrengthResponse) {
	fmt.Fprintf(w, "Strength: %s (%d/6)\n", s.Rating, s.Score)
	fmt.Fprintf(w, "Estimate: %d/4, %.1f bits, cracked in %s\n", s.Estimate.Score, s.Estimate.Entropy, s.Estimate.CrackTime)
}

func notify(w io.Writer, msg string) {
	fmt.Fprintf(w, "* %s\n", msg)
}

func isValidationError(err error) bool {
	return errors.Is(err, passgen.ErrInvalidLength) ||
		errors.Is(err, passgen.ErrEmptyAlphabet) ||
		errors.Is(err, model.ErrLengthOutOfRange)
}
