// Package grapheme measures rendered text in terminal cells.
package grapheme

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Width returns the number of terminal cells text occupies once its escape
// sequences are interpreted.
func Width(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.StringWidth(ansi.Strip(text))
}

// Center pads text with spaces on both sides to width cells. The extra
// space of an odd remainder goes to the right. Text wider than width is
// returned unchanged.
func Center(text string, width int) string {
	pad := width - Width(text)
	if pad <= 0 {
		return text
	}
	left := pad / 2
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", pad-left)
}

// Truncate cuts plain text to at most width cells.
func Truncate(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(text) <= width {
		return text
	}
	return runewidth.Truncate(text, width, "")
}
