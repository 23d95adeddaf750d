package layout

import "github.com/iw2rmb/mdlive/markdown"

// Terminal directives for the two halves of a double-height line.
const (
	doubleTop    = "\x1b#3"
	doubleBottom = "\x1b#4"
)

// Slot is the rendered content of one source line.
type Slot struct {
	Text string
	// Height is the number of physical rows: 2 for headings, 1 otherwise.
	Height int
}

// Rows returns the physical rows the slot occupies.
func (s Slot) Rows() []string {
	if s.Height == 2 {
		return []string{doubleTop + s.Text, doubleBottom + s.Text}
	}
	return []string{s.Text}
}

// Screen is the ordered sequence of slots, indexed by 0-based source line.
type Screen struct {
	slots   []Slot
	covered []bool
}

func (s *Screen) Len() int { return len(s.slots) }

// Slot returns slot i, or an empty slot past the end.
func (s *Screen) Slot(i int) Slot {
	if i < 0 || i >= len(s.slots) {
		return Slot{Height: 1}
	}
	return s.slots[i]
}

// Slots returns a copy of all slots.
func (s *Screen) Slots() []Slot {
	out := make([]Slot, len(s.slots))
	copy(out, s.slots)
	return out
}

// Ensure grows the screen with empty slots until it holds at least n.
// It never shrinks.
func (s *Screen) Ensure(n int) {
	for len(s.slots) < n {
		s.slots = append(s.slots, Slot{Height: 1})
		s.covered = append(s.covered, false)
	}
}

func (s *Screen) set(i int, slot Slot) {
	s.Ensure(i + 1)
	s.slots[i] = slot
}

// cover marks the slots of span as owned by a block.
func (s *Screen) cover(span markdown.Span) {
	s.Ensure(span.End)
	for i := span.Start - 1; i < span.End; i++ {
		s.covered[i] = true
	}
}

// fill writes text, one line per slot, from the first line of span. Lines
// past the end of span are dropped.
func (s *Screen) fill(span markdown.Span, prefix string, lines []string) {
	for i, line := range lines {
		row := span.Start - 1 + i
		if row >= span.End {
			return
		}
		s.set(row, Slot{Text: prefix + line, Height: 1})
	}
}
