package logging

import (
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// colorScheme maps generation channels to colours.
// Yellow: warnings
// Red: errors
// Green: completion
type colorScheme struct {
	warn *color.Color
	fail *color.Color
	done *color.Color
}

func newColorScheme(enabled bool) *colorScheme {
	s := &colorScheme{
		warn: color.New(color.FgYellow),
		fail: color.New(color.FgRed),
		done: color.New(color.FgGreen, color.Bold),
	}
	for _, c := range []*color.Color{s.warn, s.fail, s.done} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return s
}

// Console writes one line per message. Colour is applied only when out is a terminal.
type Console struct {
	mu     sync.Mutex
	out    io.Writer
	scheme *colorScheme
}

// NewConsole creates a console sink, detecting colour support from out.
func NewConsole(out io.Writer) *Console {
	return NewConsoleWithColor(out, isTerminal(out))
}

// NewConsoleWithColor creates a console sink with colour forced on or off.
func NewConsoleWithColor(out io.Writer, colored bool) *Console {
	return &Console{out: out, scheme: newColorScheme(colored)}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (c *Console) Log(msg string)   { c.write(msg) }
func (c *Console) Warn(msg string)  { c.write(c.scheme.warn.Sprint(msg)) }
func (c *Console) Error(msg string) { c.write(c.scheme.fail.Sprint(msg)) }
func (c *Console) Done(msg string)  { c.write(c.scheme.done.Sprint(msg)) }

func (c *Console) write(line string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, _ = fmt.Fprintln(c.out, line)
}
