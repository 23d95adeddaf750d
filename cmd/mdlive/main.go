// Command mdlive is a live markdown editor for the terminal.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/iw2rmb/mdlive"
	"github.com/iw2rmb/mdlive/buffer"
	"github.com/iw2rmb/mdlive/editor"
	"github.com/iw2rmb/mdlive/internal/config"
	"github.com/iw2rmb/mdlive/layout"
	"github.com/iw2rmb/mdlive/markdown"
	"github.com/iw2rmb/mdlive/term"
)

type options struct {
	ConfigPath string
	LogFile    string
	Width      int
	Print      bool
	File       string
}

func main() {
	os.Exit(run())
}

func run() int {
	opts, ok := parseFlags(os.Args[1:])
	if !ok {
		return 2
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if opts.LogFile != "" {
		cfg.LogFile = opts.LogFile
	}
	if opts.Width > 0 {
		cfg.RenderWidth = opts.Width
	}

	var text string
	if opts.File != "" {
		data, err := os.ReadFile(opts.File)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		text = string(data)
	}

	if opts.Print {
		if err := printDocument(os.Stdout, text, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	closeLog, err := setupLogging(cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer closeLog()
	log.Printf("mdlive: session %s started (version %s)", uuid.NewString(), mdlive.Version())

	m, err := newModel(text, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	p := tea.NewProgram(m, tea.WithAltScreen())

	if opts.ConfigPath != "" {
		w, err := config.Watch(opts.ConfigPath, func(msg config.ReloadMsg) { p.Send(msg) })
		if err != nil {
			log.Printf("mdlive: config watch disabled: %v", err)
		} else {
			defer w.Close()
		}
	}

	final, err := p.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if fm, ok := final.(model); ok {
		if err := fm.editor.Err(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}
	return 0
}

func parseFlags(args []string) (options, bool) {
	var opts options
	var showVersion bool

	fs := flag.NewFlagSet("mdlive", flag.ContinueOnError)
	fs.StringVar(&opts.ConfigPath, "config", defaultConfigPath(), "Path to configuration file (.toml, .yaml)")
	fs.StringVar(&opts.LogFile, "log", "", "Write the debug log to this file")
	fs.IntVar(&opts.Width, "width", 0, "Render width for the initial layout")
	fs.BoolVar(&opts.Print, "print", false, "Render the file once to stdout and exit")
	fs.BoolVar(&showVersion, "version", false, "Show version information")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "mdlive - live markdown editor\n\n")
		fmt.Fprintf(fs.Output(), "Usage: mdlive [options] [file]\n\n")
		fmt.Fprintf(fs.Output(), "The file is loaded read-only; mdlive never writes it back.\n\n")
		fmt.Fprintf(fs.Output(), "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return opts, false
	}
	if showVersion {
		fmt.Printf("mdlive %s\n", mdlive.VersionTag())
		os.Exit(0)
	}
	if fs.NArg() > 1 {
		fmt.Fprintf(os.Stderr, "Error: at most one file may be given\n")
		return opts, false
	}
	opts.File = fs.Arg(0)
	return opts, true
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "mdlive", "config.toml")
}

// setupLogging routes the standard logger to path. stdout belongs to the
// renderer, so without a path logging is discarded.
func setupLogging(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := tea.LogToFile(path, "mdlive")
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	return func() { _ = f.Close() }, nil
}

// printDocument projects text once and writes every physical row to w.
// No line is under the cursor, so every block is shown rendered.
func printDocument(w io.Writer, text string, cfg config.Config) error {
	doc, err := markdown.NewParser().Parse(text)
	if err != nil {
		return err
	}
	buf := buffer.New(text)
	lines := buf.Lines()

	screen, err := layout.NewProjector(layout.Config{
		Width:  cfg.RenderWidth,
		Bullet: cfg.Bullet,
	}).Project(doc, lines)
	if err != nil {
		return err
	}

	out := term.NewOutput(w)
	for _, slot := range screen.Slots() {
		for _, row := range slot.Rows() {
			if _, err := out.WriteString(row + "\n"); err != nil {
				return err
			}
		}
	}
	return nil
}

type model struct {
	editor editor.Model
}

func newModel(text string, cfg config.Config) (model, error) {
	km := editor.DefaultKeyMap()
	if err := km.Override(cfg.Keys); err != nil {
		return model{}, err
	}
	ed := editor.New(editor.Config{
		Text:       text,
		Width:      cfg.RenderWidth,
		Bullet:     cfg.Bullet,
		StatusLine: cfg.StatusLine,
		KeyMap:     km,
		Style:      editor.DefaultStyle(),
		OnChange: func(ev editor.ChangeEvent) {
			log.Printf("editor: version %d cursor %d:%d", ev.Version, ev.Cursor.Row, ev.Cursor.Col)
		},
	})
	if err := ed.Err(); err != nil {
		return model{}, err
	}
	return model{editor: ed}, nil
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m model) View() string { return m.editor.View() }
