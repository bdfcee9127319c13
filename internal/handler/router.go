package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrQuit           = errors.New("quit")
)

// Command handles one shell command. args is the rest of the input line after
// the command name and a single separating space, kept verbatim.
type Command func(ctx context.Context, w io.Writer, args string) error

// Middleware wraps a Command.
type Middleware func(next Command) Command

type contextKey string

const commandKey contextKey = "command"

// CommandFromContext returns the name of the command being dispatched.
func CommandFromContext(ctx context.Context) (string, bool) {
	name, ok := ctx.Value(commandKey).(string)
	return name, ok
}

// Router dispatches input lines to named commands.
type Router struct {
	routes      map[string]Command
	middlewares []Middleware
}

// NewRouter creates an empty Router.
func NewRouter() *Router {
	return &Router{routes: make(map[string]Command)}
}

// Use appends middleware applied to every command, outermost first.
func (r *Router) Use(mw ...Middleware) {
	r.middlewares = append(r.middlewares, mw...)
}

// Handle registers cmd under one or more names.
func (r *Router) Handle(cmd Command, names ...string) {
	for _, name := range names {
		r.routes[strings.ToLower(name)] = cmd
	}
}

// Commands returns the registered command names in sorted order.
func (r *Router) Commands() []string {
	names := make([]string, 0, len(r.routes))
	for name := range r.routes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Dispatch runs the command named by the first word of line. The name ends
// at the first space or tab; everything after that separator is passed as
// args. Blank lines are ignored.
func (r *Router) Dispatch(ctx context.Context, w io.Writer, line string) error {
	line = strings.TrimRight(line, "\r\n")
	trimmed := strings.TrimLeft(line, " \t")
	if strings.TrimSpace(trimmed) == "" {
		return nil
	}

	name, args := trimmed, ""
	if i := strings.IndexAny(trimmed, " \t"); i >= 0 {
		name, args = trimmed[:i], trimmed[i+1:]
	}
	name = strings.ToLower(strings.TrimSpace(name))

	cmd, ok := r.routes[name]
	if !ok {
		return fmt.Errorf("%w %q, type \"help\" for a list", ErrUnknownCommand, name)
	}

	for i := len(r.middlewares) - 1; i >= 0; i-- {
		cmd = r.middlewares[i](cmd)
	}

	ctx = context.WithValue(ctx, commandKey, name)
	return cmd(ctx, w, args)
}
