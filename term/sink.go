// Package term holds the output side of the terminal: the Sink a frame is
// drawn into and its implementations.
package term

import (
	"io"
	"strings"

	"github.com/muesli/termenv"
)

// Sink receives a drawn frame. Rows and columns are 0-based.
type Sink interface {
	ClearAndHome()
	MoveCursor(row, col int)
	WriteString(s string) (int, error)
}

// Output draws directly to a terminal stream.
type Output struct {
	out *termenv.Output
}

func NewOutput(w io.Writer) *Output {
	return &Output{out: termenv.NewOutput(w)}
}

func (o *Output) ClearAndHome() { o.out.ClearScreen() }

func (o *Output) MoveCursor(row, col int) { o.out.MoveCursor(row+1, col+1) }

func (o *Output) WriteString(s string) (int, error) { return o.out.WriteString(s) }

// Canvas records a frame as lines of text instead of writing it out. It
// backs the bubbletea view, where the renderer owns the terminal.
type Canvas struct {
	rows []string
	line strings.Builder

	cursorRow, cursorCol int
}

func (c *Canvas) ClearAndHome() {
	c.rows = c.rows[:0]
	c.line.Reset()
	c.cursorRow, c.cursorCol = 0, 0
}

func (c *Canvas) MoveCursor(row, col int) {
	c.cursorRow, c.cursorCol = row, col
}

// WriteString appends s to the canvas. A newline, with or without a
// preceding carriage return, ends the current line.
func (c *Canvas) WriteString(s string) (int, error) {
	n := len(s)
	for {
		i := strings.IndexByte(s, '\n')
		if i < 0 {
			c.line.WriteString(strings.ReplaceAll(s, "\r", ""))
			return n, nil
		}
		c.line.WriteString(strings.ReplaceAll(s[:i], "\r", ""))
		c.rows = append(c.rows, c.line.String())
		c.line.Reset()
		s = s[i+1:]
	}
}

// Lines returns the completed lines plus any unterminated trailing text.
func (c *Canvas) Lines() []string {
	out := make([]string, len(c.rows), len(c.rows)+1)
	copy(out, c.rows)
	if c.line.Len() > 0 {
		out = append(out, c.line.String())
	}
	return out
}

func (c *Canvas) Cursor() (row, col int) { return c.cursorRow, c.cursorCol }
