package editor

import "github.com/charmbracelet/lipgloss"

// Style controls the parts of the view the projection does not style.
type Style struct {
	Cursor      lipgloss.Style
	Status      lipgloss.Style
	StatusError lipgloss.Style
}

func DefaultStyle() Style {
	return Style{
		Cursor:      lipgloss.NewStyle().Reverse(true),
		Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		StatusError: lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
	}
}
