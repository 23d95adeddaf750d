package layout

import (
	"github.com/iw2rmb/mdlive/buffer"
	"github.com/iw2rmb/mdlive/term"
)

// Pos is a physical screen position, 0-based.
type Pos struct {
	Row int
	Col int
}

// Frame is a projected screen ready to draw.
type Frame struct {
	// Rows are physical rows; a heading slot contributes two.
	Rows []string
	// Cursor is where the terminal cursor belongs.
	Cursor Pos
}

// ProjectCursor places cursor on s. The slot of the cursor line is replaced
// with the raw line from lines so the line being edited is shown as typed.
// The physical row counts the heights of every slot above the cursor line;
// the column is the logical column unchanged.
func ProjectCursor(s *Screen, lines []string, cursor buffer.Pos) Frame {
	s.Ensure(cursor.Row + 1)

	var raw string
	if cursor.Row >= 0 && cursor.Row < len(lines) {
		raw = lines[cursor.Row]
	}
	s.slots[cursor.Row] = Slot{Text: raw, Height: 1}

	f := Frame{Rows: make([]string, 0, len(s.slots))}
	drawPos := 0
	for i, slot := range s.slots {
		if i == cursor.Row {
			f.Cursor = Pos{Row: drawPos, Col: cursor.Col}
		}
		f.Rows = append(f.Rows, slot.Rows()...)
		drawPos += slot.Height
	}
	return f
}

// Draw clears sink, writes every row and leaves the cursor at f.Cursor.
func (f Frame) Draw(sink term.Sink) error {
	sink.ClearAndHome()
	for _, row := range f.Rows {
		if _, err := sink.WriteString(row + "\r\n"); err != nil {
			return err
		}
	}
	sink.MoveCursor(f.Cursor.Row, f.Cursor.Col)
	return nil
}
