package handler

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
)

const prompt = "passgen> "

// maxLineSize bounds a single input line; longer lines end the shell with bufio.ErrTooLong.
const maxLineSize = 1 << 20

// Run reads commands from in until EOF, "quit" or ctx is cancelled.
// Command errors are printed and the loop continues.
func (r *Router) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	scanErr := make(chan error, 1)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	for {
		fmt.Fprint(out, prompt)

		select {
		case <-ctx.Done():
			fmt.Fprintln(out)
			return nil
		case line, ok := <-lines:
			if !ok {
				fmt.Fprintln(out)
				select {
				case err := <-scanErr:
					return err
				default:
					return nil
				}
			}

			err := r.Dispatch(ctx, out, line)
			if errors.Is(err, ErrQuit) {
				return nil
			}
			if err != nil {
				fmt.Fprintf(out, "error: %v\n", err)
			}
		}
	}
}
