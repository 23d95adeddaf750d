package markdown

import (
	"bytes"
	"sort"
)

// lineIndex holds the byte offset at which every source line starts.
type lineIndex []int

func buildLineIndex(src []byte) lineIndex {
	starts := lineIndex{0}
	for i, b := range src {
		if b == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}

func (li lineIndex) count() int { return len(li) }

// line returns the 1-based line holding the byte at off. A newline byte
// belongs to the line it terminates.
func (li lineIndex) line(off int) int {
	return sort.Search(len(li), func(i int) bool { return li[i] > off })
}

// text returns the content of the 1-based line without its newline.
func (li lineIndex) text(src []byte, line int) []byte {
	if line < 1 || line > len(li) {
		return nil
	}
	start := li[line-1]
	end := len(src)
	if line < len(li) {
		end = li[line] - 1
	}
	if start > end {
		return nil
	}
	return src[start:end]
}

func (li lineIndex) blank(src []byte, line int) bool {
	return len(bytes.TrimSpace(li.text(src, line))) == 0
}
