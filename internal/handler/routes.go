package handler

import (
	"context"
	"fmt"
	"io"
)

const usage = `Commands:
  generate           generate a password from the current alphabet and length
  copy               copy the shown password to the clipboard
  check <password>   show the strength of a password you typed
  alphabet <chars>   set the alphabet (everything after the first space)
  length <n>         set the password length (1-100)
  show               show the current settings and password
  save               save the current alphabet and length
  reset              delete the saved settings and restore the defaults
  help               show this help
  quit               leave passgen
`

// Register wires the shell commands into r.
func Register(r *Router, gen *GeneratorHandler, settings *SettingsHandler) {
	r.Handle(gen.HandleGenerate, "generate", "gen", "g")
	r.Handle(gen.HandleCopy, "copy", "c")
	r.Handle(gen.HandleCheck, "check")

	r.Handle(settings.HandleAlphabet, "alphabet")
	r.Handle(settings.HandleLength, "length")
	r.Handle(settings.HandleShow, "show")
	r.Handle(settings.HandleSave, "save")
	r.Handle(settings.HandleReset, "reset")

	r.Handle(handleHelp, "help", "?")
	r.Handle(handleQuit, "quit", "exit")
}

func handleHelp(_ context.Context, w io.Writer, _ string) error {
	fmt.Fprint(w, usage)
	return nil
}

func handleQuit(context.Context, io.Writer, string) error {
	return ErrQuit
}
