// Package prompt provides interactive confirmation adapters.
package prompt

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/felixgeelhaar/jetup/internal/ports"
)

// TerminalConfirmer asks yes/no questions on a terminal. Anything other
// than "y" or "yes" (case-insensitive) counts as a decline.
type TerminalConfirmer struct {
	in      *bufio.Reader
	out     io.Writer
	autoYes bool
}

// Option configures a TerminalConfirmer.
type Option func(*TerminalConfirmer)

// WithInput sets the input reader (default: os.Stdin).
func WithInput(r io.Reader) Option {
	return func(c *TerminalConfirmer) {
		c.in = bufio.NewReader(r)
	}
}

// WithOutput sets the prompt writer (default: os.Stdout).
func WithOutput(w io.Writer) Option {
	return func(c *TerminalConfirmer) {
		c.out = w
	}
}

// WithAutoYes makes Confirm answer yes without prompting, for --yes runs.
func WithAutoYes(enabled bool) Option {
	return func(c *TerminalConfirmer) {
		c.autoYes = enabled
	}
}

// NewTerminalConfirmer creates a confirmer on stdin/stdout.
func NewTerminalConfirmer(opts ...Option) *TerminalConfirmer {
	c := &TerminalConfirmer{
		in:  bufio.NewReader(os.Stdin),
		out: os.Stdout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Confirm prints the prompt and blocks until the operator answers. EOF on
// input counts as a decline, so piped runs without a terminal never hang
// half-confirmed.
func (c *TerminalConfirmer) Confirm(_ context.Context, prompt string) (bool, error) {
	if c.autoYes {
		return true, nil
	}

	if _, err := fmt.Fprintf(c.out, "%s [y/N]: ", prompt); err != nil {
		return false, err
	}

	line, err := c.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}

	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}

// Ensure TerminalConfirmer implements ports.Confirmer.
var _ ports.Confirmer = (*TerminalConfirmer)(nil)
