// Package latex turns inline TeX math into plain terminal text by symbol
// substitution.
package latex

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/muesli/termenv"
)

var (
	unknownOn  = termenv.CSI + termenv.ANSIRed.Sequence(false) + "m"
	unknownOff = termenv.CSI + termenv.ResetSeq + "m"
)

// Resolve renders src. It never fails: macros without a rendering are shown
// as a red `\name[arg, ...]` placeholder.
func Resolve(src string) string {
	r := &resolver{src: src}
	var sb strings.Builder
	for !r.eof() {
		sb.WriteString(r.atom())
	}
	return sb.String()
}

// Unknown formats the placeholder shown for a macro without a rendering.
func Unknown(name string, args []string) string {
	return unknownOn + `\` + name + "[" + strings.Join(args, ", ") + "]" + unknownOff
}

type resolver struct {
	src string
	pos int
}

func (r *resolver) eof() bool { return r.pos >= len(r.src) }

func (r *resolver) peek() rune {
	if r.eof() {
		return utf8.RuneError
	}
	c, _ := utf8.DecodeRuneInString(r.src[r.pos:])
	return c
}

func (r *resolver) next() rune {
	c, size := utf8.DecodeRuneInString(r.src[r.pos:])
	r.pos += size
	return c
}

// atom renders the next unit of input: a macro, a group, a script, a run of
// whitespace or a single rune.
func (r *resolver) atom() string {
	switch c := r.peek(); {
	case c == '\\':
		r.next()
		return r.macro(r.name())
	case c == '{':
		return r.group()
	case c == '}':
		// Unbalanced close.
		r.next()
		return ""
	case c == '^' || c == '_':
		r.next()
		return r.script(c)
	case unicode.IsSpace(c):
		for !r.eof() && unicode.IsSpace(r.peek()) {
			r.next()
		}
		return " "
	default:
		r.next()
		return string(c)
	}
}

func (r *resolver) name() string {
	if r.eof() {
		return ""
	}
	start := r.pos
	if c := r.peek(); !isLetter(c) {
		r.next()
		return r.src[start:r.pos]
	}
	for !r.eof() && isLetter(r.peek()) {
		r.next()
	}
	return r.src[start:r.pos]
}

func isLetter(c rune) bool { return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' }

// group renders a `{...}` group, or the next atom when no group follows.
func (r *resolver) group() string {
	if r.peek() != '{' {
		r.skipSpace()
		if r.eof() {
			return ""
		}
		return r.atom()
	}
	r.next()
	var sb strings.Builder
	for !r.eof() && r.peek() != '}' {
		sb.WriteString(r.atom())
	}
	if !r.eof() {
		r.next()
	}
	return sb.String()
}

func (r *resolver) skipSpace() {
	for !r.eof() && unicode.IsSpace(r.peek()) {
		r.next()
	}
}

// optional renders a `[...]` argument if one follows.
func (r *resolver) optional() (string, bool) {
	if r.peek() != '[' {
		return "", false
	}
	r.next()
	var sb strings.Builder
	for !r.eof() && r.peek() != ']' {
		sb.WriteString(r.atom())
	}
	if !r.eof() {
		r.next()
	}
	return sb.String(), true
}

func (r *resolver) macro(name string) string {
	if name == "" {
		return `\`
	}
	if s, ok := symbol(name); ok {
		return s
	}

	switch name {
	case "frac", "dfrac", "tfrac":
		num := r.group()
		den := r.group()
		return wrap(num) + "/" + wrap(den)
	case "sqrt":
		index, ok := r.optional()
		arg := wrap(r.group())
		if ok {
			return scriptOf(index, superscripts) + "√" + arg
		}
		return "√" + arg
	case "text", "textrm", "mathrm", "mathit", "mathbf", "mathsf", "mathtt", "operatorname", "boldsymbol":
		return r.group()
	case "mathbb":
		arg := r.group()
		return mapRunes(arg, doubleStruck)
	case "left", "right", "big", "Big", "bigg", "Bigg":
		r.skipSpace()
		if r.eof() {
			return ""
		}
		if r.peek() == '.' {
			r.next()
			return ""
		}
		return r.atom()
	case "sin", "cos", "tan", "log", "ln", "exp", "lim", "max", "min", "det", "gcd":
		return name
	}

	var args []string
	for r.peek() == '{' {
		args = append(args, r.group())
	}
	return Unknown(name, args)
}

// script renders a super- or subscript, using Unicode script glyphs when
// every rune has one.
func (r *resolver) script(kind rune) string {
	arg := r.group()
	table := superscripts
	if kind == '_' {
		table = subscripts
	}
	if s, ok := convert(arg, table); ok {
		return s
	}
	return string(kind) + wrap(arg)
}

func scriptOf(s string, table map[rune]rune) string {
	if out, ok := convert(s, table); ok {
		return out
	}
	return "(" + s + ")"
}

func convert(s string, table map[rune]rune) (string, bool) {
	if s == "" {
		return "", false
	}
	var sb strings.Builder
	for _, c := range s {
		m, ok := table[c]
		if !ok {
			return "", false
		}
		sb.WriteRune(m)
	}
	return sb.String(), true
}

func mapRunes(s string, table map[rune]rune) string {
	return strings.Map(func(c rune) rune {
		if m, ok := table[c]; ok {
			return m
		}
		return c
	}, s)
}

// wrap parenthesises operands longer than one rune.
func wrap(s string) string {
	if utf8.RuneCountInString(s) <= 1 {
		return s
	}
	return "(" + s + ")"
}

var superscripts = map[rune]rune{
	'0': '⁰', '1': '¹', '2': '²', '3': '³', '4': '⁴',
	'5': '⁵', '6': '⁶', '7': '⁷', '8': '⁸', '9': '⁹',
	'+': '⁺', '-': '⁻', '=': '⁼', '(': '⁽', ')': '⁾',
	'n': 'ⁿ', 'i': 'ⁱ',
}

var subscripts = map[rune]rune{
	'0': '₀', '1': '₁', '2': '₂', '3': '₃', '4': '₄',
	'5': '₅', '6': '₆', '7': '₇', '8': '₈', '9': '₉',
	'+': '₊', '-': '₋', '=': '₌', '(': '₍', ')': '₎',
	'a': 'ₐ', 'e': 'ₑ', 'i': 'ᵢ', 'j': 'ⱼ', 'k': 'ₖ',
	'n': 'ₙ', 'o': 'ₒ', 'x': 'ₓ',
}

var doubleStruck = map[rune]rune{
	'C': 'ℂ', 'N': 'ℕ', 'P': 'ℙ', 'Q': 'ℚ', 'R': 'ℝ', 'Z': 'ℤ',
}
