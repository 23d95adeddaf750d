// Package buffer implements the editable line buffer and cursor model of mdlive.
//
// Coordinates are 0-based (Row, Col) in runes. Row is the line index and Col
// the insertion point within that line.
package buffer
