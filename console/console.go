// Package console renders operator-facing output: coloured status lines, the
// confirmation prompt, and progress trackers.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Console writes human-readable output to out and reads answers from in.
// Colour and animation are only used when out is a terminal.
type Console struct {
	out      io.Writer
	in       *bufio.Reader
	terminal bool
	noColor  bool
}

// New returns a Console writing to out and reading prompts from in.
func New(out io.Writer, in io.Reader) *Console {
	c := &Console{
		out: out,
		in:  bufio.NewReader(in),
	}
	if f, ok := out.(*os.File); ok {
		c.terminal = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return c
}

// DisableColor forces plain text even on a terminal.
func (c *Console) DisableColor() {
	c.noColor = true
}

func (c *Console) colored() bool {
	return c.terminal && !c.noColor
}

func (c *Console) style(attrs ...color.Attribute) *color.Color {
	s := color.New(attrs...)
	if c.colored() {
		s.EnableColor()
	} else {
		s.DisableColor()
	}
	return s
}

// Title prints a bold blue heading.
func (c *Console) Title(format string, args ...any) {
	c.line(c.style(color.FgBlue, color.Bold), format, args...)
}

// Success prints a green line.
func (c *Console) Success(format string, args ...any) {
	c.line(c.style(color.FgGreen), format, args...)
}

// Warn prints a yellow line.
func (c *Console) Warn(format string, args ...any) {
	c.line(c.style(color.FgYellow), format, args...)
}

// Error prints a red line.
func (c *Console) Error(format string, args ...any) {
	c.line(c.style(color.FgRed), format, args...)
}

// Println prints an unstyled line.
func (c *Console) Println(a ...any) {
	fmt.Fprintln(c.out, a...)
}

func (c *Console) line(s *color.Color, format string, args ...any) {
	s.Fprintln(c.out, fmt.Sprintf(format, args...))
}

// Prompt prints label and reads one line of input. A final line without a
// trailing newline is still returned; EOF with nothing typed yields "".
func (c *Console) Prompt(label string) (string, error) {
	fmt.Fprint(c.out, label)
	answer, err := c.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading answer: %w", err)
	}
	return strings.TrimRight(answer, "\r\n"), nil
}
