package markdown

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// ErrInvalidUTF8 is returned for documents that are not valid UTF-8.
var ErrInvalidUTF8 = errors.New("markdown: invalid UTF-8")

// ParseError reports a document that could not be turned into a tree.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string { return "markdown: parse failed: " + e.Err.Error() }

func (e *ParseError) Unwrap() error { return e.Err }

// Parser turns the full document text into a tree.
type Parser interface {
	Parse(src string) (*Document, error)
}

// GoldmarkParser parses GitHub-flavored markdown with `$` math.
type GoldmarkParser struct {
	md goldmark.Markdown
}

func NewParser() *GoldmarkParser {
	return &GoldmarkParser{
		md: goldmark.New(goldmark.WithExtensions(extension.GFM, mathExtension{})),
	}
}

func (p *GoldmarkParser) Parse(src string) (doc *Document, err error) {
	if !utf8.ValidString(src) {
		return nil, &ParseError{Err: ErrInvalidUTF8}
	}
	defer func() {
		if r := recover(); r != nil {
			doc, err = nil, &ParseError{Err: fmt.Errorf("%v", r)}
		}
	}()

	source := []byte(src)
	root := p.md.Parser().Parse(text.NewReader(source))
	c := &converter{src: source, lines: buildLineIndex(source)}
	return &Document{
		Children:  c.blocks(root, 1),
		LineCount: c.lines.count(),
	}, nil
}

type converter struct {
	src   []byte
	lines lineIndex
}

// blocks converts the block children of parent. floor is the first source
// line a child may start on; it locates nodes that carry no source segment
// (thematic breaks, empty headings and list items).
func (c *converter) blocks(parent ast.Node, floor int) []Block {
	var out []Block
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		b := c.block(n, floor)
		if b == nil {
			continue
		}
		out = append(out, b)
		floor = b.Span().End + 1
	}
	return out
}

func (c *converter) block(n ast.Node, floor int) Block {
	switch n := n.(type) {
	case *ast.Paragraph, *ast.TextBlock:
		return &Paragraph{Pos: c.span(n, floor), Inlines: c.inlines(n)}
	case *ast.Heading:
		pos := c.span(n, floor)
		if next := pos.End + 1; !c.isATX(n) && next <= c.lines.count() && isSetextUnderline(c.lines.text(c.src, next)) {
			pos.End = next
		}
		return &Heading{Pos: pos, Level: n.Level, Inlines: c.inlines(n)}
	case *ast.List:
		return c.list(n, floor)
	case *ast.ThematicBreak:
		return &ThematicBreak{Pos: c.span(n, floor)}
	case *ast.FencedCodeBlock:
		return c.fencedCode(n, floor)
	case *ast.CodeBlock:
		return &CodeBlock{Pos: c.span(n, floor), Lines: c.rawLines(n)}
	case *ast.Blockquote:
		pos := c.span(n, floor)
		return &Blockquote{Pos: pos, Children: c.blocks(n, pos.Start)}
	case *ast.HTMLBlock:
		return &HTMLBlock{Pos: c.span(n, floor), Lines: c.rawLines(n)}
	case *east.Table:
		return c.table(n, floor)
	case *mathBlockNode:
		return &MathBlock{Pos: c.span(n, floor), Source: mathSource(c.rawLines(n))}
	default:
		// Blocks from extensions mdlive does not know about keep their source.
		pos := c.span(n, floor)
		var sb strings.Builder
		for l := pos.Start; l <= pos.End; l++ {
			if l > pos.Start {
				sb.WriteByte('\n')
			}
			sb.Write(c.lines.text(c.src, l))
		}
		return &Paragraph{Pos: pos, Inlines: []Inline{&Text{Value: sb.String()}}}
	}
}

func (c *converter) list(n *ast.List, floor int) *List {
	l := &List{Pos: c.span(n, floor), Ordered: n.IsOrdered(), Start: n.Start}
	if l.Ordered && l.Start == 0 && !bytes.HasPrefix(bytes.TrimSpace(c.lines.text(c.src, l.Pos.Start)), []byte("0")) {
		l.Start = 1
	}
	itemFloor := l.Pos.Start
	for item := n.FirstChild(); item != nil; item = item.NextSibling() {
		li, ok := item.(*ast.ListItem)
		if !ok {
			continue
		}
		pos := c.span(li, itemFloor)
		l.Items = append(l.Items, &ListItem{Pos: pos, Children: c.blocks(li, pos.Start)})
		itemFloor = pos.End + 1
	}
	if len(l.Items) > 0 {
		last := l.Items[len(l.Items)-1].Pos
		if last.End > l.Pos.End {
			l.Pos.End = last.End
		}
	}
	return l
}

func (c *converter) table(n *east.Table, floor int) *Table {
	t := &Table{Pos: c.span(n, floor)}
	rowFloor := t.Pos.Start
	for row := n.FirstChild(); row != nil; row = row.NextSibling() {
		var header bool
		switch row.(type) {
		case *east.TableHeader:
			header = true
		case *east.TableRow:
		default:
			continue
		}
		r := &TableRow{Pos: c.span(row, rowFloor), Header: header}
		for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
			if _, ok := cell.(*east.TableCell); !ok {
				continue
			}
			r.Cells = append(r.Cells, &TableCell{Inlines: c.inlines(cell)})
		}
		t.Rows = append(t.Rows, r)
		rowFloor = r.Pos.End + 1
		if header {
			// The delimiter row sits between the header and the body.
			rowFloor++
			if rowFloor-1 > t.Pos.End && rowFloor-1 <= c.lines.count() {
				t.Pos.End = rowFloor - 1
			}
		}
	}
	return t
}

// fencedCode widens the content span of a fenced block to its fence lines.
func (c *converter) fencedCode(n *ast.FencedCodeBlock, floor int) *CodeBlock {
	start := c.firstNonBlank(floor)
	end := start
	if _, hi, ok := c.extent(n); ok {
		end = c.lines.line(hi)
	}
	if next := end + 1; next <= c.lines.count() && isFence(c.lines.text(c.src, next)) {
		end = next
	}
	return &CodeBlock{
		Pos:   Span{Start: start, End: end},
		Info:  string(n.Language(c.src)),
		Lines: c.rawLines(n),
	}
}

// isATX reports whether heading n was written with a `#` marker. The
// marker sits between the start of its line and the heading text; a
// heading without text can only be an ATX heading.
func (c *converter) isATX(n *ast.Heading) bool {
	lo, _, ok := c.extent(n)
	if !ok {
		return true
	}
	start := c.lines[c.lines.line(lo)-1]
	return bytes.IndexByte(c.src[start:lo], '#') >= 0
}

func isSetextUnderline(line []byte) bool {
	line = bytes.TrimSpace(line)
	if len(line) == 0 || line[0] != '=' && line[0] != '-' {
		return false
	}
	for _, b := range line {
		if b != line[0] {
			return false
		}
	}
	return true
}

func isFence(line []byte) bool {
	line = bytes.TrimSpace(line)
	return bytes.HasPrefix(line, []byte("```")) || bytes.HasPrefix(line, []byte("~~~"))
}

// span resolves the source lines of n from the segments of n and its
// descendants, falling back to the first non-blank line at or after floor.
func (c *converter) span(n ast.Node, floor int) Span {
	if lo, hi, ok := c.extent(n); ok {
		return Span{Start: c.lines.line(lo), End: c.lines.line(hi)}
	}
	l := c.firstNonBlank(floor)
	return Span{Start: l, End: l}
}

// extent returns the lowest and highest source byte offsets covered by n.
func (c *converter) extent(n ast.Node) (lo, hi int, ok bool) {
	lo, hi = -1, -1
	mark := func(seg text.Segment) {
		last := seg.Stop - 1
		if last < seg.Start {
			last = seg.Start
		}
		if lo < 0 || seg.Start < lo {
			lo = seg.Start
		}
		if last > hi {
			hi = last
		}
	}

	var visit func(n ast.Node)
	visit = func(n ast.Node) {
		if n.Type() != ast.TypeInline {
			lines := n.Lines()
			for i := 0; i < lines.Len(); i++ {
				mark(lines.At(i))
			}
		}
		if t, isText := n.(*ast.Text); isText {
			mark(t.Segment)
		}
		for child := n.FirstChild(); child != nil; child = child.NextSibling() {
			visit(child)
		}
	}
	visit(n)

	if lo < 0 || lo >= len(c.src) && len(c.src) > 0 {
		return 0, 0, false
	}
	return lo, hi, true
}

func (c *converter) firstNonBlank(from int) int {
	if from < 1 {
		from = 1
	}
	for l := from; l <= c.lines.count(); l++ {
		if !c.lines.blank(c.src, l) {
			return l
		}
	}
	if from > c.lines.count() {
		return c.lines.count()
	}
	return from
}

func (c *converter) rawLines(n ast.Node) []string {
	lines := n.Lines()
	out := make([]string, 0, lines.Len())
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		out = append(out, strings.TrimRight(string(seg.Value(c.src)), "\r\n"))
	}
	return out
}

func mathSource(lines []string) string {
	s := strings.TrimSpace(strings.Join(lines, "\n"))
	s = strings.TrimPrefix(s, string(mathFence))
	if len(s) >= len(mathFence) {
		s = strings.TrimSuffix(s, string(mathFence))
	}
	return strings.TrimSpace(s)
}

func (c *converter) inlines(parent ast.Node) []Inline {
	var out []Inline
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		out = append(out, c.inline(n)...)
	}
	return out
}

func (c *converter) inline(n ast.Node) []Inline {
	switch n := n.(type) {
	case *ast.Text:
		out := []Inline{&Text{Value: string(n.Segment.Value(c.src))}}
		switch {
		case n.HardLineBreak():
			out = append(out, &HardBreak{})
		case n.SoftLineBreak():
			out = append(out, &SoftBreak{})
		}
		return out
	case *ast.String:
		return []Inline{&Text{Value: string(n.Value)}}
	case *ast.Emphasis:
		if n.Level >= 2 {
			return []Inline{&Strong{Children: c.inlines(n)}}
		}
		return []Inline{&Emphasis{Children: c.inlines(n)}}
	case *east.Strikethrough:
		return []Inline{&Strike{Children: c.inlines(n)}}
	case *mathInlineNode:
		return []Inline{&InlineMath{Source: string(n.value)}}
	case *ast.CodeSpan:
		return []Inline{&Code{Value: c.plainText(n)}}
	case *ast.Link:
		return []Inline{&Link{Destination: string(n.Destination), Children: c.inlines(n)}}
	case *ast.AutoLink:
		return []Inline{&Link{
			Destination: string(n.URL(c.src)),
			Children:    []Inline{&Text{Value: string(n.Label(c.src))}},
		}}
	case *ast.Image:
		return []Inline{&Image{Destination: string(n.Destination), Alt: c.plainText(n)}}
	case *ast.RawHTML:
		var sb strings.Builder
		for i := 0; i < n.Segments.Len(); i++ {
			seg := n.Segments.At(i)
			sb.Write(seg.Value(c.src))
		}
		return []Inline{&RawHTML{Value: sb.String()}}
	case *east.TaskCheckBox:
		if n.IsChecked {
			return []Inline{&Text{Value: "[x] "}}
		}
		return []Inline{&Text{Value: "[ ] "}}
	default:
		return []Inline{&Text{Value: c.plainText(n)}}
	}
}

// plainText concatenates the text segments below n.
func (c *converter) plainText(n ast.Node) string {
	var sb strings.Builder
	var visit func(n ast.Node)
	visit = func(n ast.Node) {
		switch n := n.(type) {
		case *ast.Text:
			sb.Write(n.Segment.Value(c.src))
		case *ast.String:
			sb.Write(n.Value)
		}
		for child := n.FirstChild(); child != nil; child = child.NextSibling() {
			visit(child)
		}
	}
	visit(n)
	return sb.String()
}
