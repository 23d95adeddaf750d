// Package layout projects a parsed markdown document onto screen slots and
// places the cursor on the projected screen.
//
// A pass starts from an empty Screen with one slot per source line. Block
// nodes write their rendered lines into the slots of their source span; a
// heading writes a single slot two physical rows tall. ProjectCursor then
// swaps the rendered slot of the cursor line for the raw line and turns the
// slots into a Frame of physical rows.
package layout
