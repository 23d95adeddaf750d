package editor

import "github.com/iw2rmb/mdlive/markdown"

// Config configures the editor Model.
type Config struct {
	// Initial text for the internal buffer.
	Text string

	// Width is the render width until the terminal reports its size.
	Width int

	// Bullet marks unordered list items. Empty uses the layout default.
	Bullet string

	// StatusLine reserves the bottom row for the cursor position and the
	// last parse error.
	StatusLine bool

	// Parser defaults to the goldmark-backed parser.
	Parser markdown.Parser

	// Resolve renders inline and display math. Nil uses latex.Resolve.
	Resolve func(string) string

	KeyMap KeyMap
	Style  Style

	// OnChange is called after every update that changed the buffer
	// version or the cursor.
	OnChange func(ChangeEvent)
}
