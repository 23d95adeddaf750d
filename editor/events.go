package editor

import "github.com/iw2rmb/mdlive/buffer"

type ChangeEvent struct {
	Version uint64
	Cursor  buffer.Pos
	Text    string
}

func buildChangeEvent(b *buffer.Buffer) ChangeEvent {
	return ChangeEvent{
		Version: b.Version(),
		Cursor:  b.Cursor(),
		Text:    b.Text(),
	}
}
