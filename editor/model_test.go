package editor

import (
	"errors"
	"io"
	"reflect"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	"github.com/iw2rmb/mdlive/buffer"
	"github.com/iw2rmb/mdlive/internal/config"
	"github.com/iw2rmb/mdlive/layout"
	"github.com/iw2rmb/mdlive/markdown"
)

type stubParser struct {
	next markdown.Parser
	fail error
	doc  *markdown.Document
}

func (p *stubParser) Parse(src string) (*markdown.Document, error) {
	if p.fail != nil {
		return nil, p.fail
	}
	if p.doc != nil {
		return p.doc, nil
	}
	return p.next.Parse(src)
}

func TestModel_TitleScenarioFrame(t *testing.T) {
	m := New(Config{Text: "# Title\n\nHello *world*"})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	for i := 0; i < 5; i++ {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	}

	f := m.Frame()
	if got, want := f.Cursor, (layout.Pos{Row: 3, Col: 5}); got != want {
		t.Fatalf("cursor: got %v, want %v", got, want)
	}
	if got, want := f.Rows[3], "Hello *world*"; got != want {
		t.Fatalf("cursor row: got %q, want %q", got, want)
	}
	if got, want := f.Rows[0], "\x1b#3Title"; got != want {
		t.Fatalf("heading row: got %q, want %q", got, want)
	}
}

func TestModel_ParseFailureKeepsFrame(t *testing.T) {
	p := &stubParser{next: markdown.NewParser()}
	m := New(Config{Text: "# a", Parser: p})
	before := m.Frame()

	p.fail = &markdown.ParseError{Err: errors.New("boom")}
	m = typeText(m, "b")

	if got := m.Status(); !strings.Contains(got, "boom") {
		t.Fatalf("status: got %q, want parse error", got)
	}
	if !reflect.DeepEqual(m.Frame(), before) {
		t.Fatalf("frame changed after parse failure:\n got: %#v\nwant: %#v", m.Frame(), before)
	}
	if got, want := m.buf.Text(), "b# a"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
	if m.Err() != nil {
		t.Fatalf("parse failure must not end the session: %v", m.Err())
	}

	p.fail = nil
	m = typeText(m, "c")
	if got := m.Status(); got != "" {
		t.Fatalf("status after recovery: got %q, want empty", got)
	}
}

func TestModel_InvalidTreeEndsSession(t *testing.T) {
	p := &stubParser{doc: &markdown.Document{Children: []markdown.Block{
		&markdown.Heading{Pos: markdown.Span{}, Level: 1},
	}}}
	m := New(Config{Text: "# x", Parser: p})

	if !errors.Is(m.Err(), layout.ErrInvalidTree) {
		t.Fatalf("err: got %v, want ErrInvalidTree", m.Err())
	}
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("command did not quit")
	}
}

func TestModel_InvalidTreeOnResizeQuits(t *testing.T) {
	p := &stubParser{next: markdown.NewParser()}
	m := New(Config{Text: "# x", Parser: p})
	if err := m.Err(); err != nil {
		t.Fatalf("err before resize: %v", err)
	}

	p.doc = &markdown.Document{Children: []markdown.Block{
		&markdown.Heading{Pos: markdown.Span{}, Level: 1},
	}}
	m, cmd := m.Update(tea.WindowSizeMsg{Width: 20, Height: 5})
	if !errors.Is(m.Err(), layout.ErrInvalidTree) {
		t.Fatalf("err: got %v, want ErrInvalidTree", m.Err())
	}
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("command did not quit")
	}
}

func TestModel_ResizeSetsRuleWidth(t *testing.T) {
	m := New(Config{Text: "x\n\n---"})
	m, _ = m.Update(tea.WindowSizeMsg{Width: 10, Height: 5})

	if got, want := m.Frame().Rows[2], " ──────── "; got != want {
		t.Fatalf("rule: got %q, want %q", got, want)
	}
}

func TestModel_SetSizeAffectsViewHeight(t *testing.T) {
	m := New(Config{Text: "a\nb\nc", StatusLine: true, Style: DefaultStyle()})

	m = m.SetSize(20, 2)
	if got := lipgloss.Height(m.View()); got != 2 {
		t.Fatalf("height after SetSize(20,2): got %d, want %d", got, 2)
	}

	m = m.SetSize(20, 5)
	if got := lipgloss.Height(m.View()); got != 5 {
		t.Fatalf("height after SetSize(20,5): got %d, want %d", got, 5)
	}
}

func TestModel_ReloadStatusLineKeepsViewHeight(t *testing.T) {
	m := New(Config{Text: "a\nb\nc", StatusLine: true, Style: DefaultStyle()})
	m = m.SetSize(20, 4)

	cfg := config.Default()
	cfg.StatusLine = false
	m, _ = m.Update(config.ReloadMsg{Config: cfg})
	if got := lipgloss.Height(m.View()); got != 4 {
		t.Fatalf("height without status line: got %d, want %d", got, 4)
	}

	cfg.StatusLine = true
	m, _ = m.Update(config.ReloadMsg{Config: cfg})
	if got := lipgloss.Height(m.View()); got != 4 {
		t.Fatalf("height with status line: got %d, want %d", got, 4)
	}
}

func TestModel_StatusLineShowsPosition(t *testing.T) {
	m := New(Config{Text: "ab\ncd", StatusLine: true})
	m = m.SetSize(20, 4)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})

	lines := strings.Split(m.View(), "\n")
	if got, want := ansi.Strip(lines[len(lines)-1]), "2:2"; !strings.HasPrefix(got, want) {
		t.Fatalf("status: got %q, want prefix %q", got, want)
	}
}

func TestModel_ViewFollowsCursor(t *testing.T) {
	m := New(Config{Text: "1\n2\n3\n4\n5\n6"})
	m = m.SetSize(10, 2)
	for i := 0; i < 5; i++ {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	}

	lines := strings.Split(m.View(), "\n")
	if got, want := strings.TrimRight(ansi.Strip(lines[1]), " "), "6"; got != want {
		t.Fatalf("last visible row: got %q, want %q", got, want)
	}
}

func TestModel_RenderCursorLine(t *testing.T) {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	st := Style{Cursor: r.NewStyle().Reverse(true)}

	m := New(Config{Text: "abc", Style: st})
	if got, want := m.renderCursorLine("abc", 1), "a"+st.Cursor.Render("b")+"c"; got != want {
		t.Fatalf("cursor line: got %q, want %q", got, want)
	}
	if got, want := m.renderCursorLine("abc", 3), "abc"+st.Cursor.Render(" "); got != want {
		t.Fatalf("cursor at end: got %q, want %q", got, want)
	}
}

func TestModel_ReloadConfig(t *testing.T) {
	m := New(Config{Text: "- a\n\nx"})

	cfg := config.Default()
	cfg.Bullet = "*"
	cfg.Keys = map[string][]string{"quit": {"ctrl+q"}}
	m, _ = m.Update(config.ReloadMsg{Config: cfg})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})

	if got, want := ansi.Strip(m.Frame().Rows[0]), "* a"; got != want {
		t.Fatalf("list row: got %q, want %q", got, want)
	}
	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC}); cmd != nil {
		t.Fatalf("ctrl+c should no longer quit")
	}
	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlQ}); cmd == nil {
		t.Fatalf("ctrl+q should quit")
	}
}

func TestModel_ReloadConfigError(t *testing.T) {
	m := New(Config{Text: "a"})
	m, _ = m.Update(config.ReloadMsg{Err: errors.New("bad file")})
	if got := m.Status(); got != "bad file" {
		t.Fatalf("status: got %q, want %q", got, "bad file")
	}
}

func TestOnChange_FiresOnMutationsAndSkipsNoOps(t *testing.T) {
	var events []ChangeEvent
	m := New(Config{
		Text: "ab",
		OnChange: func(ev ChangeEvent) {
			events = append(events, ev)
		},
	})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if len(events) != 1 {
		t.Fatalf("events after move: got %d, want %d", len(events), 1)
	}
	if got := events[0].Cursor; got != (buffer.Pos{Row: 0, Col: 1}) {
		t.Fatalf("event cursor: got %v, want %v", got, buffer.Pos{Row: 0, Col: 1})
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight}) // no-op at end of the last line
	if len(events) != 2 {
		t.Fatalf("events after no-op: got %d, want %d", len(events), 2)
	}

	m = typeText(m, "c")
	if got := events[len(events)-1].Text; got != "abc" {
		t.Fatalf("event text: got %q, want %q", got, "abc")
	}
}
