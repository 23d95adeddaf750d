package buffer

import (
	"reflect"
	"testing"
)

func TestBuffer_Push_AppendsAndInserts(t *testing.T) {
	b := New("")
	for _, r := range "hllo" {
		b.Push(r)
	}
	if got, want := b.Text(), "hllo"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), (Pos{Row: 0, Col: 4}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}

	b.SetCursor(Pos{Row: 0, Col: 1})
	b.Push('e')
	if got, want := b.Text(), "hello"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), (Pos{Row: 0, Col: 2}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}

func TestBuffer_Push_BeforeLastRuneInserts(t *testing.T) {
	b := New("ac")
	b.SetCursor(Pos{Row: 0, Col: 1})
	b.Push('b')
	if got, want := b.Text(), "abc"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestBuffer_Push_Unicode(t *testing.T) {
	b := New("")
	b.Push('π')
	b.Push('テ')

	if got, want := b.Text(), "πテ"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), (Pos{Row: 0, Col: 2}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}

func TestBuffer_Push_NewlineSplits(t *testing.T) {
	b := New("ab")
	b.SetCursor(Pos{Row: 0, Col: 1})
	b.Push('\n')
	if got, want := b.Lines(), []string{"a", "b"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("lines=%q, want %q", got, want)
	}
}

func TestBuffer_Backspace_DocStartIsNoop(t *testing.T) {
	b := New("abc\ndef")
	v := b.Version()
	b.Backspace()
	if got, want := b.Text(), "abc\ndef"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got := b.Version(); got != v {
		t.Fatalf("version=%d, want %d", got, v)
	}
}

func TestBuffer_Backspace_MidLine(t *testing.T) {
	b := New("abc")
	b.SetCursor(Pos{Row: 0, Col: 2})
	b.Backspace()
	if got, want := b.Text(), "ac"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), (Pos{Row: 0, Col: 1}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}

func TestBuffer_Backspace_JoinsLines(t *testing.T) {
	b := New("abc\ndef\nghi")
	b.SetCursor(Pos{Row: 1, Col: 0})
	b.Backspace()

	if got, want := b.Lines(), []string{"abcdef", "ghi"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("lines=%q, want %q", got, want)
	}
	if got, want := b.LineCount(), 2; got != want {
		t.Fatalf("line count=%d, want %d", got, want)
	}
	if got, want := b.Cursor(), (Pos{Row: 0, Col: 3}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}

func TestBuffer_NewLine_SplitsAtCursor(t *testing.T) {
	b := New("hello world\nnext")
	b.SetCursor(Pos{Row: 0, Col: 5})
	b.NewLine()

	if got, want := b.Lines(), []string{"hello", " world", "next"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("lines=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), (Pos{Row: 1, Col: 0}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}

func TestBuffer_NewLineThenBackspace_RoundTrip(t *testing.T) {
	const text = "first line\nsecond\nthird"
	for row, line := range []string{"first line", "second", "third"} {
		for col := 0; col <= len([]rune(line)); col++ {
			b := New(text)
			start := Pos{Row: row, Col: col}
			b.SetCursor(start)

			b.NewLine()
			b.Backspace()

			if got := b.Text(); got != text {
				t.Fatalf("row %d col %d: text=%q, want %q", row, col, got, text)
			}
			if got := b.Cursor(); got != start {
				t.Fatalf("row %d col %d: cursor=%v, want %v", row, col, got, start)
			}
		}
	}
}

func TestBuffer_EnsureLines_GrowsNeverTruncates(t *testing.T) {
	b := New("a")
	b.EnsureLines(3)
	if got, want := b.LineCount(), 4; got != want {
		t.Fatalf("line count=%d, want %d", got, want)
	}

	v := b.Version()
	b.EnsureLines(1)
	if got, want := b.LineCount(), 4; got != want {
		t.Fatalf("line count after smaller ensure=%d, want %d", got, want)
	}
	if got := b.Version(); got != v {
		t.Fatalf("version=%d, want unchanged %d", got, v)
	}
}

func TestBuffer_InsertText_MultiLine(t *testing.T) {
	b := New("ab")
	b.SetCursor(Pos{Row: 0, Col: 1})

	b.InsertText("X\r\nY")
	if got, want := b.Text(), "aX\nYb"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), (Pos{Row: 1, Col: 1}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}

func TestBuffer_EditAfterDown_UsesClampedColumn(t *testing.T) {
	b := New("long line\nab")
	b.SetCursor(Pos{Row: 0, Col: 9})
	b.Move(Move{Unit: MoveRune, Dir: DirDown})

	b.Push('c')
	if got, want := b.Line(1), "abc"; got != want {
		t.Fatalf("line(1)=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), (Pos{Row: 1, Col: 3}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}
