// Package editor provides the Bubble Tea component of the live markdown
// editor.
//
// Every event that changes the buffer or cursor runs one synchronous pass:
// the document is reparsed, projected onto a fresh screen, and the raw
// cursor line is substituted into the projection. A parse failure keeps the
// previous frame and reports the error in the status line; a tree the
// projector cannot place ends the session (see Model.Err).
package editor
