package handler

import (
	"errors"

	"github.com/atotto/clipboard"
)

var ErrClipboardUnavailable = errors.New("no clipboard utility available")

// Clipboard receives copied passwords.
type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard writes to the desktop clipboard.
type SystemClipboard struct{}

func (SystemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrClipboardUnavailable
	}
	return clipboard.WriteAll(text)
}
