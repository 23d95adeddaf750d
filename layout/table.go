package layout

import (
	"strings"

	"github.com/iw2rmb/mdlive/internal/grapheme"
	"github.com/iw2rmb/mdlive/markdown"
)

// table renders every cell, sizes each column to its widest rendered cell,
// and writes one slot per row plus a separator on the line after the
// header row.
func (p *Projector) table(s *Screen, t *markdown.Table, prefix string) error {
	if len(t.Rows) == 0 || len(t.Rows[0].Cells) == 0 {
		return &TreeError{Kind: t.Kind(), Span: t.Pos, Reason: "table has no cells"}
	}

	cells := make([][]string, len(t.Rows))
	var widths []int
	for i, row := range t.Rows {
		if row == nil || !row.Pos.Valid() {
			var span markdown.Span
			if row != nil {
				span = row.Pos
			}
			return &TreeError{Kind: markdown.KindTableRow, Span: span, Reason: "missing line span"}
		}
		cells[i] = make([]string, len(row.Cells))
		for j, cell := range row.Cells {
			text := strings.ReplaceAll(p.inlines(cell.Inlines), "\n", " ")
			cells[i][j] = text
			if j >= len(widths) {
				widths = append(widths, 0)
			}
			if w := grapheme.Width(text); w > widths[j] {
				widths[j] = w
			}
		}
	}

	if sep := t.Rows[0].Pos.End; sep < t.Pos.End {
		s.set(sep, Slot{Text: prefix + tableSeparator(widths), Height: 1})
	}
	for i, row := range t.Rows {
		s.set(row.Pos.Start-1, Slot{Text: prefix + tableRow(cells[i], widths), Height: 1})
	}
	return nil
}

func tableSeparator(widths []int) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		parts[i] = strings.Repeat("─", w+2)
	}
	return "├" + strings.Join(parts, "┼") + "┤"
}

// tableRow centers each cell in its column. Rows shorter than the table
// get empty cells.
func tableRow(cells []string, widths []int) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		var cell string
		if i < len(cells) {
			cell = cells[i]
		}
		parts[i] = grapheme.Center(cell, w)
	}
	return "│ " + strings.Join(parts, " │ ") + " │"
}
