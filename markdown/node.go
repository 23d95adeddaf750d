// Package markdown defines the structural parse tree mdlive renders and the
// parser that produces it.
//
// The tree is a closed set of node types. Block nodes carry the inclusive,
// 1-based source line span they were parsed from; inline nodes carry only
// content.
package markdown

// Span is an inclusive range of 1-based source lines.
type Span struct {
	Start int
	End   int
}

// Valid reports whether s names at least one source line.
func (s Span) Valid() bool { return s.Start >= 1 && s.End >= s.Start }

// Lines returns the number of source lines covered by s.
func (s Span) Lines() int {
	if !s.Valid() {
		return 0
	}
	return s.End - s.Start + 1
}

type Kind int

const (
	KindDocument Kind = iota
	KindParagraph
	KindHeading
	KindList
	KindListItem
	KindTable
	KindTableRow
	KindTableCell
	KindThematicBreak
	KindMathBlock
	KindCodeBlock
	KindBlockquote
	KindHTMLBlock

	KindText
	KindSoftBreak
	KindHardBreak
	KindEmphasis
	KindStrong
	KindStrike
	KindInlineMath
	KindCode
	KindLink
	KindImage
	KindRawHTML
)

var kindNames = [...]string{
	KindDocument:      "Document",
	KindParagraph:     "Paragraph",
	KindHeading:       "Heading",
	KindList:          "List",
	KindListItem:      "ListItem",
	KindTable:         "Table",
	KindTableRow:      "TableRow",
	KindTableCell:     "TableCell",
	KindThematicBreak: "ThematicBreak",
	KindMathBlock:     "MathBlock",
	KindCodeBlock:     "CodeBlock",
	KindBlockquote:    "Blockquote",
	KindHTMLBlock:     "HTMLBlock",
	KindText:          "Text",
	KindSoftBreak:     "SoftBreak",
	KindHardBreak:     "HardBreak",
	KindEmphasis:      "Emphasis",
	KindStrong:        "Strong",
	KindStrike:        "Strike",
	KindInlineMath:    "InlineMath",
	KindCode:          "Code",
	KindLink:          "Link",
	KindImage:         "Image",
	KindRawHTML:       "RawHTML",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Unknown"
	}
	return kindNames[k]
}

// Node is implemented by every tree node.
type Node interface {
	Kind() Kind
}

// Block is a top-level or container-level node with a source span.
type Block interface {
	Node
	Span() Span
	isBlock()
}

// Inline is a node inside a paragraph, heading or table cell.
type Inline interface {
	Node
	isInline()
}

// Document is the tree root.
type Document struct {
	Children []Block

	// LineCount is the number of source lines the document was parsed from.
	LineCount int
}

func (*Document) Kind() Kind { return KindDocument }

type Paragraph struct {
	Pos     Span
	Inlines []Inline
}

type Heading struct {
	Pos     Span
	Level   int
	Inlines []Inline
}

type List struct {
	Pos     Span
	Ordered bool
	// Start is the number of the first item of an ordered list.
	Start int
	Items []*ListItem
}

// ListItem only appears inside a List.
type ListItem struct {
	Pos      Span
	Children []Block
}

// Table rows are in source order; the header row comes first.
type Table struct {
	Pos  Span
	Rows []*TableRow
}

type TableRow struct {
	Pos    Span
	Header bool
	Cells  []*TableCell
}

type TableCell struct {
	Inlines []Inline
}

type ThematicBreak struct {
	Pos Span
}

// MathBlock is a `$$ ... $$` display formula. Source excludes the fences.
type MathBlock struct {
	Pos    Span
	Source string
}

type CodeBlock struct {
	Pos   Span
	Info  string
	Lines []string
}

type Blockquote struct {
	Pos      Span
	Children []Block
}

type HTMLBlock struct {
	Pos   Span
	Lines []string
}

func (*Paragraph) Kind() Kind     { return KindParagraph }
func (*Heading) Kind() Kind       { return KindHeading }
func (*List) Kind() Kind          { return KindList }
func (*ListItem) Kind() Kind      { return KindListItem }
func (*Table) Kind() Kind         { return KindTable }
func (*TableRow) Kind() Kind      { return KindTableRow }
func (*TableCell) Kind() Kind     { return KindTableCell }
func (*ThematicBreak) Kind() Kind { return KindThematicBreak }
func (*MathBlock) Kind() Kind     { return KindMathBlock }
func (*CodeBlock) Kind() Kind     { return KindCodeBlock }
func (*Blockquote) Kind() Kind    { return KindBlockquote }
func (*HTMLBlock) Kind() Kind     { return KindHTMLBlock }

func (n *Paragraph) Span() Span     { return n.Pos }
func (n *Heading) Span() Span       { return n.Pos }
func (n *List) Span() Span          { return n.Pos }
func (n *ListItem) Span() Span      { return n.Pos }
func (n *Table) Span() Span         { return n.Pos }
func (n *TableRow) Span() Span      { return n.Pos }
func (n *ThematicBreak) Span() Span { return n.Pos }
func (n *MathBlock) Span() Span     { return n.Pos }
func (n *CodeBlock) Span() Span     { return n.Pos }
func (n *Blockquote) Span() Span    { return n.Pos }
func (n *HTMLBlock) Span() Span     { return n.Pos }

func (*Paragraph) isBlock()     {}
func (*Heading) isBlock()       {}
func (*List) isBlock()          {}
func (*Table) isBlock()         {}
func (*ThematicBreak) isBlock() {}
func (*MathBlock) isBlock()     {}
func (*CodeBlock) isBlock()     {}
func (*Blockquote) isBlock()    {}
func (*HTMLBlock) isBlock()     {}

type Text struct {
	Value string
}

type SoftBreak struct{}

type HardBreak struct{}

type Emphasis struct {
	Children []Inline
}

type Strong struct {
	Children []Inline
}

type Strike struct {
	Children []Inline
}

// InlineMath is a `$...$` formula. Source excludes the dollar signs.
type InlineMath struct {
	Source string
}

type Code struct {
	Value string
}

type Link struct {
	Destination string
	Children    []Inline
}

type Image struct {
	Destination string
	Alt         string
}

type RawHTML struct {
	Value string
}

func (*Text) Kind() Kind       { return KindText }
func (*SoftBreak) Kind() Kind  { return KindSoftBreak }
func (*HardBreak) Kind() Kind  { return KindHardBreak }
func (*Emphasis) Kind() Kind   { return KindEmphasis }
func (*Strong) Kind() Kind     { return KindStrong }
func (*Strike) Kind() Kind     { return KindStrike }
func (*InlineMath) Kind() Kind { return KindInlineMath }
func (*Code) Kind() Kind       { return KindCode }
func (*Link) Kind() Kind       { return KindLink }
func (*Image) Kind() Kind      { return KindImage }
func (*RawHTML) Kind() Kind    { return KindRawHTML }

func (*Text) isInline()       {}
func (*SoftBreak) isInline()  {}
func (*HardBreak) isInline()  {}
func (*Emphasis) isInline()   {}
func (*Strong) isInline()     {}
func (*Strike) isInline()     {}
func (*InlineMath) isInline() {}
func (*Code) isInline()       {}
func (*Link) isInline()       {}
func (*Image) isInline()      {}
func (*RawHTML) isInline()    {}
