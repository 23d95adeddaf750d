package editor

import (
	"fmt"
	"log"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/iw2rmb/mdlive/internal/grapheme"
	"github.com/iw2rmb/mdlive/term"
)

// rebuildContent draws the current frame into the viewport and scrolls it
// so the cursor row stays visible.
func (m *Model) rebuildContent() {
	if !m.hasFrame {
		return
	}

	var canvas term.Canvas
	if err := m.frame.Draw(&canvas); err != nil {
		log.Printf("editor: draw failed: %v", err)
		return
	}
	lines := canvas.Lines()
	row, col := canvas.Cursor()
	for i := range lines {
		switch {
		case i == row:
			lines[i] = m.renderCursorLine(lines[i], col)
		case m.width > 0:
			// No soft wrapping: rows wider than the view are cut.
			lines[i] = ansi.Truncate(lines[i], m.width, "")
		}
	}

	m.viewport.SetContent(strings.Join(lines, "\n"))
	m.followCursor(row)
}

// renderCursorLine draws the virtual cursor on the raw cursor line. The
// line holds no escape sequences, so it is cut to the view width by runes.
func (m *Model) renderCursorLine(line string, col int) string {
	if m.width > 0 {
		line = grapheme.Truncate(line, m.width)
	}
	rs := []rune(line)
	if col < 0 {
		col = 0
	}
	if col > len(rs) {
		col = len(rs)
	}

	under := " "
	rest := ""
	if col < len(rs) {
		under = string(rs[col])
		rest = string(rs[col+1:])
	}
	return string(rs[:col]) + m.cfg.Style.Cursor.Render(under) + rest
}

func (m *Model) followCursor(row int) {
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h <= 0 {
		return
	}

	y := m.viewport.YOffset
	if row < y {
		m.viewport.SetYOffset(row)
		return
	}
	if row >= y+h {
		m.viewport.SetYOffset(row - h + 1)
	}
}

func (m Model) renderStatus() string {
	if m.status != "" {
		return m.cfg.Style.StatusError.Render(m.truncate(m.status))
	}
	cur := m.buf.Cursor()
	return m.cfg.Style.Status.Render(m.truncate(fmt.Sprintf("%d:%d", cur.Row+1, cur.Col+1)))
}

func (m Model) truncate(s string) string {
	if m.width <= 0 {
		return s
	}
	return grapheme.Truncate(s, m.width)
}
