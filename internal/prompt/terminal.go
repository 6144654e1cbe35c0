// Package prompt implements actors.Prompter for a line-oriented terminal
package prompt

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-battle/internal/actors"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
)

// Terminal reads numbered choices from an input stream
type Terminal struct {
	in  *bufio.Scanner
	out io.Writer
}

// Ensure Terminal implements actors.Prompter
var _ actors.Prompter = (*Terminal)(nil)

// NewTerminal creates a prompter reading from in and writing menus to out
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// Choose prints options numbered from 1 and re-asks until a valid number is
// entered. End of input returns a Canceled error.
func (t *Terminal) Choose(ctx context.Context, title string, options []string) (int, error) {
	if len(options) == 0 {
		return 0, errors.InvalidArgument("at least one option is required")
	}

	t.render(title, options)
	for {
		if err := ctx.Err(); err != nil {
			return 0, errors.WrapWithCode(err, errors.CodeCanceled, "prompt canceled")
		}

		fmt.Fprintf(t.out, "> ")
		if !t.in.Scan() {
			if err := t.in.Err(); err != nil {
				return 0, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to read input")
			}
			return 0, errors.Canceled("input closed")
		}

		line := strings.TrimSpace(t.in.Text())
		n, err := strconv.Atoi(line)
		if err != nil || n < 1 || n > len(options) {
			fmt.Fprintf(t.out, "Please enter a number between 1 and %d.\n", len(options))
			continue
		}
		return n - 1, nil
	}
}

func (t *Terminal) render(title string, options []string) {
	fmt.Fprintln(t.out, title)
	for i, opt := range options {
		fmt.Fprintf(t.out, "  %d) %s\n", i+1, opt)
	}
}

// Confirm asks a yes/no question; anything other than y or yes is no
func (t *Terminal) Confirm(ctx context.Context, question string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, errors.WrapWithCode(err, errors.CodeCanceled, "prompt canceled")
	}

	fmt.Fprintf(t.out, "%s [y/N] ", question)
	if !t.in.Scan() {
		if err := t.in.Err(); err != nil {
			return false, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to read input")
		}
		return false, errors.Canceled("input closed")
	}

	switch strings.ToLower(strings.TrimSpace(t.in.Text())) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
