package api

// StyleKind identifies which field of a Style is populated.
type StyleKind int

// Style variant kinds.
const (
	StyleFg StyleKind = iota
	StyleBg
	StyleFx
)

// Style is a sum type over foreground color, background color, and effect
// mask, matching spec.md's `Fg(Color) | Bg(Color) | Fx(u32)`.
type Style struct {
	Kind StyleKind
	Fg   Color
	Bg   Color
	Fx   Effect
}

// Fg builds a foreground-color style.
func Fg(c Color) Style { return Style{Kind: StyleFg, Fg: c} }

// Bg builds a background-color style.
func Bg(c Color) Style { return Style{Kind: StyleBg, Bg: c} }

// Fx builds an effect-mask style.
func Fx(mask Effect) Style { return Style{Kind: StyleFx, Fx: mask} }
