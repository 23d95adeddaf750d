package layout

import (
	"reflect"
	"testing"

	"github.com/iw2rmb/mdlive/buffer"
	"github.com/iw2rmb/mdlive/term"
)

func TestProjectCursor_OnHeadingShowsRawLine(t *testing.T) {
	s := &Screen{}
	s.set(0, Slot{Text: "Title", Height: 2})
	s.set(1, Slot{Text: "body", Height: 1})

	lines := []string{"# Title", "body"}
	f := ProjectCursor(s, lines, buffer.Pos{Row: 0, Col: 3})
	if got, want := f.Cursor, (Pos{Row: 0, Col: 3}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
	if want := []string{"# Title", "body"}; !reflect.DeepEqual(f.Rows, want) {
		t.Fatalf("rows=%q, want %q", f.Rows, want)
	}
}

func TestProjectCursor_CountsTallSlotsAbove(t *testing.T) {
	s := &Screen{}
	s.set(0, Slot{Text: "A", Height: 2})
	s.set(1, Slot{Text: "B", Height: 2})
	s.set(2, Slot{Text: "c", Height: 1})

	f := ProjectCursor(s, []string{"# A", "# B", "c", "d"}, buffer.Pos{Row: 3, Col: 1})
	if got, want := f.Cursor, (Pos{Row: 5, Col: 1}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
	if got, want := len(f.Rows), 6; got != want {
		t.Fatalf("rows=%d, want %d", got, want)
	}
	if got, want := f.Rows[5], "d"; got != want {
		t.Fatalf("cursor row=%q, want %q", got, want)
	}
}

func TestProjectCursor_GrowsScreen(t *testing.T) {
	s := &Screen{}
	f := ProjectCursor(s, []string{""}, buffer.Pos{Row: 0, Col: 0})
	if got, want := s.Len(), 1; got != want {
		t.Fatalf("slots=%d, want %d", got, want)
	}
	if got, want := f.Cursor, (Pos{}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}

func TestFrame_Draw(t *testing.T) {
	f := Frame{Rows: []string{"a", "b"}, Cursor: Pos{Row: 1, Col: 1}}
	var c term.Canvas
	_, _ = c.WriteString("stale\r\n")

	if err := f.Draw(&c); err != nil {
		t.Fatalf("draw: %v", err)
	}
	if got, want := c.Lines(), []string{"a", "b"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("lines=%q, want %q", got, want)
	}
	if row, col := c.Cursor(); row != 1 || col != 1 {
		t.Fatalf("cursor=(%d,%d), want (1,1)", row, col)
	}
}

func TestSlot_Rows(t *testing.T) {
	if got, want := (Slot{Text: "x", Height: 2}).Rows(), []string{doubleTop + "x", doubleBottom + "x"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("rows=%q, want %q", got, want)
	}
	if got, want := (Slot{Text: "x", Height: 1}).Rows(), []string{"x"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("rows=%q, want %q", got, want)
	}
}

func TestScreen_EnsureNeverShrinks(t *testing.T) {
	s := &Screen{}
	s.Ensure(3)
	s.Ensure(1)
	if got, want := s.Len(), 3; got != want {
		t.Fatalf("len=%d, want %d", got, want)
	}
	if got := s.Slot(10); got != (Slot{Height: 1}) {
		t.Fatalf("slot past end=%#v, want empty", got)
	}
}
