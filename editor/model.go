package editor

import (
	"log"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/mdlive/buffer"
	"github.com/iw2rmb/mdlive/internal/config"
	"github.com/iw2rmb/mdlive/layout"
	"github.com/iw2rmb/mdlive/markdown"
)

// Model is a Bubble Tea component that edits a markdown buffer and shows
// its live projection.
type Model struct {
	cfg       Config
	buf       *buffer.Buffer
	parser    markdown.Parser
	projector *layout.Projector

	viewport viewport.Model
	width    int
	// height is the last requested view height, status row included.
	height int

	frame    layout.Frame
	hasFrame bool

	// status holds the last parse error, cleared by the next good pass.
	status string
	// err is the fatal projection error that ended the session.
	err error

	lastVersion uint64
	lastCursor  buffer.Pos
}

func New(cfg Config) Model {
	if cfg.Parser == nil {
		cfg.Parser = markdown.NewParser()
	}
	if cfg.KeyMap.empty() {
		cfg.KeyMap = DefaultKeyMap()
	}

	m := Model{
		cfg:    cfg,
		buf:    buffer.New(cfg.Text),
		parser: cfg.Parser,
		projector: layout.NewProjector(layout.Config{
			Width:   cfg.Width,
			Bullet:  cfg.Bullet,
			Resolve: cfg.Resolve,
		}),
		viewport: viewport.New(0, 0),
		width:    cfg.Width,
	}
	m.lastVersion = m.buf.Version()
	m.lastCursor = m.buf.Cursor()
	m.relayout()
	return m
}

func (m Model) Buffer() *buffer.Buffer { return m.buf }

// Frame returns the last successfully projected frame.
func (m Model) Frame() layout.Frame { return m.frame }

// Status returns the message of the last parse failure, or "".
func (m Model) Status() string { return m.status }

// Err returns the error that ended the session, if any.
func (m Model) Err() error { return m.err }

func (m Model) Init() tea.Cmd { return nil }

// SetSize sets the view size. The width also becomes the render width.
func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.fitViewport()
	m.projector.SetWidth(width)

	m.relayout()
	return m
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.err != nil {
		return m, tea.Quit
	}

	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m = m.SetSize(msg.Width, msg.Height)
	case tea.KeyMsg:
		m, cmd = m.updateKey(msg)
	case config.ReloadMsg:
		m = m.applyConfig(msg)
	}

	m.syncFromBuffer()
	if m.err != nil {
		return m, tea.Quit
	}
	return m, cmd
}

func (m Model) View() string {
	content := m.viewport.View()
	if !m.cfg.StatusLine {
		return content
	}
	return content + "\n" + m.renderStatus()
}

// applyConfig takes the settings of a reloaded config file. The key map is
// rebuilt from the defaults so removed overrides take effect.
func (m Model) applyConfig(msg config.ReloadMsg) Model {
	if msg.Err != nil {
		log.Printf("editor: config reload failed: %v", msg.Err)
		m.status = msg.Err.Error()
		return m
	}

	km := DefaultKeyMap()
	if err := km.Override(msg.Config.Keys); err != nil {
		log.Printf("editor: %v", err)
	}
	m.cfg.KeyMap = km
	m.cfg.Bullet = msg.Config.Bullet
	if m.cfg.StatusLine != msg.Config.StatusLine {
		m.cfg.StatusLine = msg.Config.StatusLine
		m.fitViewport()
	}

	width := m.width
	if width == 0 {
		width = msg.Config.RenderWidth
	}
	m.projector = layout.NewProjector(layout.Config{
		Width:   width,
		Bullet:  m.cfg.Bullet,
		Resolve: m.cfg.Resolve,
	})
	m.relayout()
	return m
}

// fitViewport sizes the viewport to the view height, leaving the bottom
// row to the status line when it is shown.
func (m *Model) fitViewport() {
	h := m.height
	if m.cfg.StatusLine && h > 0 {
		h--
	}
	m.viewport.Height = h
}

func (m *Model) syncFromBuffer() {
	ver := m.buf.Version()
	cur := m.buf.Cursor()
	if ver == m.lastVersion && cur == m.lastCursor {
		return
	}
	m.lastVersion = ver
	m.lastCursor = cur
	m.relayout()
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(buildChangeEvent(m.buf))
	}
}

// relayout runs one reparse and projection pass.
func (m *Model) relayout() {
	lines := m.buf.Lines()
	doc, err := m.parser.Parse(m.buf.Text())
	if err != nil {
		log.Printf("editor: parse failed: %v", err)
		m.status = err.Error()
		m.rebuildContent()
		return
	}

	screen, err := m.projector.Project(doc, lines)
	if err != nil {
		log.Printf("editor: layout failed: %v", err)
		m.err = err
		return
	}

	m.frame = layout.ProjectCursor(screen, lines, m.buf.Cursor())
	m.hasFrame = true
	m.status = ""
	m.rebuildContent()
}
