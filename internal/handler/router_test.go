package handler

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func echo(_ context.Context, w io.Writer, args string) error {
	fmt.Fprintf(w, "[%s]", args)
	return nil
}

func TestDispatch(t *testing.T) {
	r := NewRouter()
	r.Handle(echo, "echo", "e")

	tests := []struct {
		line string
		want string
	}{
		{line: "echo hello", want: "[hello]"},
		{line: "ECHO hello", want: "[hello]"},
		{line: "e  two spaces", want: "[ two spaces]"},
		{line: "echo", want: "[]"},
		{line: "   echo padded\r\n", want: "[padded]"},
		{line: "echo\thello", want: "[hello]"},
		{line: "\techo\t\ttabbed", want: "[\ttabbed]"},
		{line: "", want: ""},
		{line: "   ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			var out bytes.Buffer
			require.NoError(t, r.Dispatch(context.Background(), &out, tt.line))
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestDispatchUnknown(t *testing.T) {
	r := NewRouter()
	err := r.Dispatch(context.Background(), io.Discard, "frobnicate now")
	assert.ErrorIs(t, err, ErrUnknownCommand)
	assert.Contains(t, err.Error(), "frobnicate")
}

func TestMiddlewareOrderAndCommandName(t *testing.T) {
	r := NewRouter()
	var calls []string

	tag := func(label string) Middleware {
		return func(next Command) Command {
			return func(ctx context.Context, w io.Writer, args string) error {
				name, ok := CommandFromContext(ctx)
				require.True(t, ok)
				calls = append(calls, label+":"+name)
				return next(ctx, w, args)
			}
		}
	}

	r.Use(tag("outer"), tag("inner"))
	r.Handle(echo, "echo")

	require.NoError(t, r.Dispatch(context.Background(), io.Discard, "echo x"))
	assert.Equal(t, []string{"outer:echo", "inner:echo"}, calls)
}

func TestCommands(t *testing.T) {
	r := NewRouter()
	r.Handle(echo, "b", "a")
	assert.Equal(t, []string{"a", "b"}, r.Commands())
}

func TestRun(t *testing.T) {
	r := NewRouter()
	r.Handle(echo, "echo")
	r.Handle(handleQuit, "quit")

	in := strings.NewReader("echo one\nbogus\necho two\nquit\necho never\n")
	var out bytes.Buffer

	require.NoError(t, r.Run(context.Background(), in, &out))

	got := out.String()
	assert.Contains(t, got, "[one]")
	assert.Contains(t, got, "[two]")
	assert.Contains(t, got, "error: unknown command")
	assert.NotContains(t, got, "[never]")
}

func TestRunStopsAtEOF(t *testing.T) {
	r := NewRouter()
	r.Handle(echo, "echo")

	var out bytes.Buffer
	require.NoError(t, r.Run(context.Background(), strings.NewReader("echo last"), &out))
	assert.Contains(t, out.String(), "[last]")
}

type blockingReader struct{ done chan struct{} }

func (b blockingReader) Read([]byte) (int, error) {
	<-b.done
	return 0, io.EOF
}

func TestRunStopsOnCancel(t *testing.T) {
	r := NewRouter()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	in := blockingReader{done: make(chan struct{})}
	defer close(in.done)

	err := r.Run(ctx, in, io.Discard)
	assert.NoError(t, err)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("read failed") }

func TestRunReturnsReadError(t *testing.T) {
	r := NewRouter()
	err := r.Run(context.Background(), failingReader{}, io.Discard)
	assert.EqualError(t, err, "read failed")
}

func TestRunAcceptsLongLines(t *testing.T) {
	r := NewRouter()
	r.Handle(echo, "echo")

	long := strings.Repeat("x", 200*1024)
	in := strings.NewReader("echo " + long + "\necho after\n")
	var out bytes.Buffer

	require.NoError(t, r.Run(context.Background(), in, &out))
	assert.Contains(t, out.String(), "["+long+"]")
	assert.Contains(t, out.String(), "[after]")
}

func TestRunLineOverLimit(t *testing.T) {
	r := NewRouter()
	r.Handle(echo, "echo")

	in := strings.NewReader("echo " + strings.Repeat("x", maxLineSize) + "\n")
	err := r.Run(context.Background(), in, io.Discard)
	assert.ErrorIs(t, err, bufio.ErrTooLong)
}
