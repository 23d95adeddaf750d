package buffer

import "strings"

// Buffer is the pure document state: lines of text and the cursor.
//
// The buffer always holds at least one line and no line contains '\n'.
type Buffer struct {
	lines   [][]rune
	version uint64

	// cursor.Col may run past the end of its line after a downward move;
	// Cursor() and every edit observe it clamped.
	cursor Pos
	maxCol int
}

func New(text string) *Buffer {
	return &Buffer{
		lines:   splitLines(normalizeNewlines(text)),
		version: 0,
		cursor:  Pos{Row: 0, Col: 0},
	}
}

func (b *Buffer) Text() string {
	if len(b.lines) == 0 {
		return ""
	}

	var sb strings.Builder
	for i, line := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(line))
	}
	return sb.String()
}

// Lines returns a copy of every line as a string.
func (b *Buffer) Lines() []string {
	out := make([]string, len(b.lines))
	for i, line := range b.lines {
		out[i] = string(line)
	}
	return out
}

func (b *Buffer) Line(row int) string {
	if row < 0 || row >= len(b.lines) {
		return ""
	}
	return string(b.lines[row])
}

func (b *Buffer) LineCount() int { return len(b.lines) }

func (b *Buffer) Version() uint64 { return b.version }

// Cursor returns the cursor with its column clamped to the current line.
func (b *Buffer) Cursor() Pos { return b.clampPos(b.cursor) }

// StickyCol returns the column remembered by the last upward move.
func (b *Buffer) StickyCol() int { return b.maxCol }

func (b *Buffer) SetCursor(p Pos) {
	next := b.clampPos(p)
	if next == b.cursor {
		return
	}
	b.cursor = next
	b.version++
}

func (b *Buffer) lineLen(row int) int {
	if row < 0 || row >= len(b.lines) {
		return 0
	}
	return len(b.lines[row])
}

func (b *Buffer) clampPos(p Pos) Pos {
	return ClampPos(p, len(b.lines), b.lineLen)
}

// settle folds an out-of-range column left behind by a downward move back
// into the line before a horizontal move or an edit uses it.
func (b *Buffer) settle() {
	b.cursor = b.clampPos(b.cursor)
}

func splitLines(text string) [][]rune {
	parts := strings.Split(text, "\n")
	lines := make([][]rune, 0, len(parts))
	for _, s := range parts {
		lines = append(lines, []rune(s))
	}
	if len(lines) == 0 {
		lines = append(lines, nil)
	}
	return lines
}
