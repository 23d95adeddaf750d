package layout

import (
	"strings"

	"github.com/muesli/termenv"

	"github.com/iw2rmb/mdlive/markdown"
)

func sgr(seq string) string { return termenv.CSI + seq + "m" }

// Style toggles. Each off sequence resets only the attribute its on
// sequence set, so nested styles survive the inner close.
var (
	emphasisOn  = sgr(termenv.ItalicSeq)
	emphasisOff = sgr("23")
	strongOn    = sgr(termenv.BoldSeq)
	strongOff   = sgr("22")
	strikeOn    = sgr(termenv.CrossOutSeq)
	strikeOff   = sgr("29")
	codeOn      = sgr(termenv.ReverseSeq)
	codeOff     = sgr("27")
	linkOn      = sgr(termenv.UnderlineSeq)
	linkOff     = sgr("24")
	faintOn     = sgr(termenv.FaintSeq)
	faintOff    = sgr("22")

	grey  = sgr(termenv.ANSIBrightBlack.Sequence(false))
	white = sgr(termenv.ANSIWhite.Sequence(false))
)

func bulletMarker(bullet string) string { return grey + bullet + white }

func faint(s string) string {
	if s == "" {
		return ""
	}
	return faintOn + s + faintOff
}

// inlines renders inline content to a single string. Breaks become '\n'.
func (p *Projector) inlines(ins []markdown.Inline) string {
	var sb strings.Builder
	for _, in := range ins {
		p.inline(&sb, in)
	}
	return sb.String()
}

func (p *Projector) inline(sb *strings.Builder, in markdown.Inline) {
	switch in := in.(type) {
	case *markdown.Text:
		sb.WriteString(in.Value)
	case *markdown.SoftBreak, *markdown.HardBreak:
		sb.WriteByte('\n')
	case *markdown.Emphasis:
		sb.WriteString(emphasisOn)
		sb.WriteString(p.inlines(in.Children))
		sb.WriteString(emphasisOff)
	case *markdown.Strong:
		sb.WriteString(strongOn)
		sb.WriteString(p.inlines(in.Children))
		sb.WriteString(strongOff)
	case *markdown.Strike:
		sb.WriteString(strikeOn)
		sb.WriteString(p.inlines(in.Children))
		sb.WriteString(strikeOff)
	case *markdown.InlineMath:
		sb.WriteString(p.cfg.Resolve(in.Source))
	case *markdown.Code:
		sb.WriteString(codeOn)
		sb.WriteString(in.Value)
		sb.WriteString(codeOff)
	case *markdown.Link:
		sb.WriteString(linkOn)
		sb.WriteString(p.inlines(in.Children))
		sb.WriteString(linkOff)
	case *markdown.Image:
		sb.WriteString(in.Alt)
	case *markdown.RawHTML:
		sb.WriteString(in.Value)
	}
}
