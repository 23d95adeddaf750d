package layout

import (
	"fmt"
	"strings"

	"github.com/iw2rmb/mdlive/latex"
	"github.com/iw2rmb/mdlive/markdown"
)

// DefaultBullet is the nerd-font dot used for unordered list items.
const DefaultBullet = "\uf444"

const (
	quotePrefix = "│ "
	nestIndent  = "  "
)

// Config configures a Projector.
type Config struct {
	// Width is the render width in cells; thematic breaks span it.
	Width int

	// Bullet marks unordered list items. Empty means DefaultBullet.
	Bullet string

	// Resolve renders math source. Nil means latex.Resolve.
	Resolve func(string) string
}

// Projector lays a document out onto a Screen.
type Projector struct {
	cfg Config
}

func NewProjector(cfg Config) *Projector {
	if cfg.Bullet == "" {
		cfg.Bullet = DefaultBullet
	}
	if cfg.Resolve == nil {
		cfg.Resolve = latex.Resolve
	}
	if cfg.Width < 0 {
		cfg.Width = 0
	}
	return &Projector{cfg: cfg}
}

func (p *Projector) Config() Config { return p.cfg }

// SetWidth changes the render width used by later passes.
func (p *Projector) SetWidth(width int) {
	if width < 0 {
		width = 0
	}
	p.cfg.Width = width
}

// Project builds a fresh Screen for doc. lines is the source the document
// was parsed from; the screen holds at least one slot per line, and lines no
// block claims show their source text unchanged.
func (p *Projector) Project(doc *markdown.Document, lines []string) (*Screen, error) {
	s := &Screen{}
	s.Ensure(len(lines))
	if doc != nil {
		if err := p.blocks(s, doc.Children, ""); err != nil {
			return nil, err
		}
	}
	for i, line := range lines {
		if !s.covered[i] {
			s.slots[i] = Slot{Text: line, Height: 1}
		}
	}
	return s, nil
}

func (p *Projector) blocks(s *Screen, blocks []markdown.Block, prefix string) error {
	for _, b := range blocks {
		if err := p.block(s, b, prefix); err != nil {
			return err
		}
	}
	return nil
}

func (p *Projector) block(s *Screen, b markdown.Block, prefix string) error {
	span := b.Span()
	if !span.Valid() {
		return &TreeError{Kind: b.Kind(), Span: span, Reason: "missing line span"}
	}
	s.cover(span)

	switch b := b.(type) {
	case *markdown.Heading:
		s.set(span.Start-1, Slot{Text: prefix + p.inlines(b.Inlines), Height: 2})
	case *markdown.Paragraph:
		s.fill(span, prefix, splitLines(p.inlines(b.Inlines)))
	case *markdown.List:
		return p.list(s, b, prefix)
	case *markdown.Table:
		return p.table(s, b, prefix)
	case *markdown.ThematicBreak:
		s.set(span.Start-1, Slot{Text: prefix + p.rule(), Height: 1})
	case *markdown.MathBlock:
		s.fill(span, prefix, splitLines(p.cfg.Resolve(b.Source)))
	case *markdown.CodeBlock:
		p.code(s, b, prefix)
	case *markdown.Blockquote:
		return p.blocks(s, b.Children, prefix+quotePrefix)
	case *markdown.HTMLBlock:
		s.fill(span, prefix, b.Lines)
	default:
		return &TreeError{Kind: b.Kind(), Span: span, Reason: "no layout rule"}
	}
	return nil
}

func (p *Projector) rule() string {
	n := p.cfg.Width - 2
	if n < 0 {
		n = 0
	}
	return " " + strings.Repeat("─", n) + " "
}

// list writes each item's first paragraph after its marker and lays the
// item's remaining blocks out one nesting level deeper.
func (p *Projector) list(s *Screen, l *markdown.List, prefix string) error {
	for idx, item := range l.Items {
		if item == nil || !item.Pos.Valid() {
			var span markdown.Span
			if item != nil {
				span = item.Pos
			}
			return &TreeError{Kind: markdown.KindListItem, Span: span, Reason: "missing line span"}
		}
		s.cover(item.Pos)

		marker := bulletMarker(p.cfg.Bullet)
		if l.Ordered {
			marker = fmt.Sprintf("%d.", l.Start+idx)
		}

		rest := item.Children
		text := marker + " "
		textSpan := markdown.Span{Start: item.Pos.Start, End: item.Pos.Start}
		if len(rest) > 0 {
			if para, ok := rest[0].(*markdown.Paragraph); ok {
				if !para.Pos.Valid() {
					return &TreeError{Kind: para.Kind(), Span: para.Pos, Reason: "missing line span"}
				}
				text += p.inlines(para.Inlines)
				textSpan.End = para.Pos.End
				if len(rest) == 1 {
					textSpan.End = item.Pos.End
				}
				rest = rest[1:]
			}
		}
		if textSpan.End < textSpan.Start {
			textSpan.End = textSpan.Start
		}
		s.fill(textSpan, prefix, splitLines(text))

		if err := p.blocks(s, rest, prefix+nestIndent); err != nil {
			return err
		}
	}
	return nil
}

// code writes the raw lines of a code block faint. A fenced block shows its
// info string on the opening fence line.
func (p *Projector) code(s *Screen, b *markdown.CodeBlock, prefix string) {
	span := b.Pos
	if span.Lines() > len(b.Lines) {
		s.set(span.Start-1, Slot{Text: prefix + faint(b.Info), Height: 1})
		span.Start++
	}
	lines := make([]string, len(b.Lines))
	for i, line := range b.Lines {
		lines[i] = faint(line)
	}
	s.fill(span, prefix, lines)
}

func splitLines(text string) []string {
	return strings.Split(text, "\n")
}
