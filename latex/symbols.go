package latex

import "strings"

var greek = map[string]string{
	"alpha":   "α",
	"beta":    "β",
	"gamma":   "γ",
	"delta":   "δ",
	"epsilon": "ε",
	"zeta":    "ζ",
	"eta":     "η",
	"theta":   "θ",
	"iota":    "ι",
	"kappa":   "κ",
	"lambda":  "λ",
	"mu":      "μ",
	"nu":      "ν",
	"xi":      "ξ",
	"omicron": "ο",
	"pi":      "π",
	"rho":     "ρ",
	"sigma":   "σ",
	"tau":     "τ",
	"upsilon": "υ",
	"phi":     "φ",
	"chi":     "χ",
	"psi":     "ψ",
	"omega":   "ω",
}

// symbols maps case-sensitive macro names to their glyphs.
var symbols = map[string]string{
	"varepsilon": "ϵ",
	"vartheta":   "ϑ",
	"varphi":     "ϕ",
	"varrho":     "ϱ",
	"varsigma":   "ς",

	// ordinary
	"neg":      "¬",
	"ned":      "¬",
	"infty":    "∞",
	"partial":  "∂",
	"nabla":    "∇",
	"forall":   "∀",
	"exists":   "∃",
	"emptyset": "∅",
	"hbar":     "ℏ",
	"ell":      "ℓ",
	"prime":    "′",
	"degree":   "°",
	"ldots":    "…",
	"cdots":    "⋯",
	"vdots":    "⋮",
	"sum":      "∑",
	"prod":     "∏",
	"int":      "∫",
	"oint":     "∮",

	// binary operators
	"pm":     "±",
	"mp":     "∓",
	"times":  "×",
	"div":    "÷",
	"cdot":   "·",
	"ast":    "∗",
	"circ":   "∘",
	"bullet": "∙",
	"cup":    "∪",
	"cap":    "∩",
	"wedge":  "∧",
	"land":   "∧",
	"vee":    "∨",
	"lor":    "∨",
	"oplus":  "⊕",
	"otimes": "⊗",

	// relations
	"leq":      "≤",
	"le":       "≤",
	"geq":      "≥",
	"ge":       "≥",
	"neq":      "≠",
	"ne":       "≠",
	"approx":   "≈",
	"equiv":    "≡",
	"sim":      "∼",
	"simeq":    "≃",
	"propto":   "∝",
	"ll":       "≪",
	"gg":       "≫",
	"in":       "∈",
	"notin":    "∉",
	"ni":       "∋",
	"subset":   "⊂",
	"supset":   "⊃",
	"subseteq": "⊆",
	"supseteq": "⊇",
	"perp":     "⊥",
	"parallel": "∥",
	"mid":      "∣",

	// arrows
	"to":             "→",
	"rightarrow":     "→",
	"leftarrow":      "←",
	"gets":           "←",
	"leftrightarrow": "↔",
	"Rightarrow":     "⇒",
	"Leftarrow":      "⇐",
	"Leftrightarrow": "⇔",
	"implies":        "⇒",
	"iff":            "⇔",
	"mapsto":         "↦",
	"uparrow":        "↑",
	"downarrow":      "↓",

	// spacing
	"quad":  "  ",
	"qquad": "    ",
	",":     " ",
	";":     " ",
	":":     " ",
	"!":     "",
	" ":     " ",

	// escaped literals
	"{":  "{",
	"}":  "}",
	"$":  "$",
	"%":  "%",
	"&":  "&",
	"_":  "_",
	"#":  "#",
	"\\": "\n",
}

// symbol resolves a macro name to its glyph. A capitalised Greek name yields
// the capital letter.
func symbol(name string) (string, bool) {
	if s, ok := symbols[name]; ok {
		return s, true
	}
	if s, ok := greek[strings.ToLower(name)]; ok {
		if name[0] >= 'A' && name[0] <= 'Z' {
			return strings.ToUpper(s), true
		}
		return s, true
	}
	return "", false
}
