package buffer

import "strings"

// EnsureLines grows the buffer with empty lines until it holds at least n+1
// lines. It never truncates.
func (b *Buffer) EnsureLines(n int) {
	if n < 0 || len(b.lines) > n {
		return
	}
	for len(b.lines) < n+1 {
		b.lines = append(b.lines, nil)
	}
	b.version++
}

// Push inserts r at the cursor and advances the cursor by one column.
// A line break rune splits the line instead (see NewLine).
func (b *Buffer) Push(r rune) {
	if r == '\n' {
		b.NewLine()
		return
	}

	b.settle()
	b.EnsureLines(b.cursor.Row)

	row, col := b.cursor.Row, b.cursor.Col
	line := b.lines[row]
	if col >= len(line) {
		b.lines[row] = append(line, r)
	} else {
		next := make([]rune, 0, len(line)+1)
		next = append(next, line[:col]...)
		next = append(next, r)
		next = append(next, line[col:]...)
		b.lines[row] = next
	}
	b.cursor.Col = col + 1
	b.version++
}

// InsertText inserts s at the cursor as if it were typed: every line break
// splits the current line and every other rune is pushed.
func (b *Buffer) InsertText(s string) {
	for _, r := range normalizeNewlines(s) {
		if r == '\n' {
			b.NewLine()
			continue
		}
		b.Push(r)
	}
}

// Backspace applies backspace semantics.
func (b *Buffer) Backspace() {
	b.settle()

	row, col := b.cursor.Row, b.cursor.Col
	if row == 0 && col == 0 {
		return
	}

	if col > 0 {
		line := b.lines[row]
		next := make([]rune, 0, len(line)-1)
		next = append(next, line[:col-1]...)
		next = append(next, line[col:]...)
		b.lines[row] = next
		b.cursor.Col = col - 1
		b.version++
		return
	}

	// Join with previous line (delete the newline).
	prev := b.lines[row-1]
	joinCol := len(prev)
	joined := make([]rune, 0, len(prev)+len(b.lines[row]))
	joined = append(joined, prev...)
	joined = append(joined, b.lines[row]...)
	b.lines[row-1] = joined
	b.lines = append(b.lines[:row], b.lines[row+1:]...)
	b.cursor = Pos{Row: row - 1, Col: joinCol}
	b.version++
}

// NewLine splits the current line at the cursor. The text after the cursor
// moves to a new line directly below, and the cursor moves to its start.
func (b *Buffer) NewLine() {
	b.settle()

	row, col := b.cursor.Row, b.cursor.Col
	line := b.lines[row]
	before := append([]rune(nil), line[:col]...)
	after := append([]rune(nil), line[col:]...)

	b.lines[row] = before
	b.lines = append(b.lines, nil)
	copy(b.lines[row+2:], b.lines[row+1:])
	b.lines[row+1] = after

	b.cursor = Pos{Row: row + 1, Col: 0}
	b.version++
}

// Normalize newlines from external sources.
func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
