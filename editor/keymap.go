package editor

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the editor key bindings.
type KeyMap struct {
	Left, Right, Up, Down key.Binding
	Home, End             key.Binding

	Backspace key.Binding
	Enter     key.Binding

	Quit key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),

		Home: key.NewBinding(key.WithKeys("home", "ctrl+a"), key.WithHelp("home", "line start")),
		End:  key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end", "line end")),

		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "newline")),

		Quit: key.NewBinding(key.WithKeys("ctrl+c", "ctrl+d"), key.WithHelp("ctrl+c", "quit")),
	}
}

func (km *KeyMap) bindings() map[string]*key.Binding {
	return map[string]*key.Binding{
		"left":      &km.Left,
		"right":     &km.Right,
		"up":        &km.Up,
		"down":      &km.Down,
		"home":      &km.Home,
		"end":       &km.End,
		"backspace": &km.Backspace,
		"enter":     &km.Enter,
		"quit":      &km.Quit,
	}
}

func (km KeyMap) empty() bool {
	for _, b := range km.bindings() {
		if len(b.Keys()) > 0 {
			return false
		}
	}
	return true
}

// Override replaces the keys of the named actions. Action names are the
// lower-case field names. Unknown actions are reported and left alone.
func (km *KeyMap) Override(keys map[string][]string) error {
	bindings := km.bindings()
	var unknown []string
	for action, ks := range keys {
		b, ok := bindings[action]
		if !ok {
			unknown = append(unknown, action)
			continue
		}
		b.SetKeys(ks...)
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return fmt.Errorf("editor: unknown key actions %q", unknown)
	}
	return nil
}
