package buffer

type MoveUnit int

const (
	MoveRune MoveUnit = iota
	MoveLine
)

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirUp
	DirDown
	DirHome // line start
	DirEnd  // line end
)

type Move struct {
	Unit MoveUnit
	Dir  MoveDir
}

func (b *Buffer) Move(m Move) {
	prevCursor := b.cursor
	prevMax := b.maxCol

	switch m.Unit {
	case MoveRune:
		b.moveRune(m.Dir)
	case MoveLine:
		b.moveLine(m.Dir)
	}

	if prevCursor == b.cursor && prevMax == b.maxCol {
		return
	}
	b.version++
}

// Vertical moves keep a sticky column: moving up remembers the column it
// started from and restores as much of it as the target line allows. Moving
// down keeps the column untouched.
func (b *Buffer) moveRune(dir MoveDir) {
	lastRow := len(b.lines) - 1

	switch dir {
	case DirLeft:
		b.settle()
		row, col := b.cursor.Row, b.cursor.Col
		if col > 0 {
			b.cursor.Col = col - 1
			return
		}
		if row == 0 {
			return
		}
		b.cursor = Pos{Row: row - 1, Col: len(b.lines[row-1])}
	case DirRight:
		b.settle()
		row, col := b.cursor.Row, b.cursor.Col
		if col < len(b.lines[row]) {
			b.cursor.Col = col + 1
			return
		}
		if row == lastRow {
			return
		}
		b.cursor = Pos{Row: row + 1, Col: 0}
	case DirUp:
		if b.cursor.Row == 0 {
			return
		}
		b.maxCol = b.cursor.Col
		b.cursor.Row--
		b.cursor.Col = minInt(b.maxCol, len(b.lines[b.cursor.Row]))
	case DirDown:
		if b.cursor.Row >= lastRow {
			return
		}
		b.cursor.Row++
	default:
		b.moveLine(dir)
	}
}

func (b *Buffer) moveLine(dir MoveDir) {
	row := b.cursor.Row

	switch dir {
	case DirHome:
		b.cursor.Col = 0
	case DirEnd:
		b.cursor.Col = len(b.lines[row])
	case DirUp, DirDown, DirLeft, DirRight:
		b.moveRune(dir)
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
