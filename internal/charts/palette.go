// internal/charts/palette.go
package charts

import (
	"image/color"
	"unicode"

	"gonum.org/v1/plot/vg/draw"
)

var (
	red        = color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff}
	green      = color.RGBA{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff}
	blue       = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}
	orange     = color.RGBA{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff}
	purple     = color.RGBA{R: 0x94, G: 0x67, B: 0xbd, A: 0xff}
	skyBlue    = color.RGBA{R: 0x87, G: 0xce, B: 0xeb, A: 0xff}
	lightGreen = color.RGBA{R: 0x90, G: 0xee, B: 0x90, A: 0xff}
	lightBlue  = color.RGBA{R: 0xad, G: 0xd8, B: 0xe6, A: 0xff}
	lightCoral = color.RGBA{R: 0xf0, G: 0x80, B: 0x80, A: 0xff}
	lightYel   = color.RGBA{R: 0xff, G: 0xff, B: 0xe0, A: 0xff}
	panelBlue  = color.RGBA{R: 0xdd, G: 0xee, B: 0xf7, A: 0xff}
	panelYel   = color.RGBA{R: 0xfd, G: 0xf8, B: 0xd7, A: 0xff}
	panelGreen = color.RGBA{R: 0xe2, G: 0xf4, B: 0xe2, A: 0xff}

	// fallbackColor marks labels that ran past the end of a palette.
	fallbackColor = color.Gray{Y: 0xa0}
)

// barPalette colors decision-count bars positionally.
var barPalette = []color.Color{red, green, blue, orange}

// piePalette colors decision wedges positionally.
var piePalette = []color.Color{
	color.RGBA{R: 0xff, G: 0x6b, B: 0x6b, A: 0xff},
	color.RGBA{R: 0x4e, G: 0xcd, B: 0xc4, A: 0xff},
	color.RGBA{R: 0x45, G: 0xb7, B: 0xd1, A: 0xff},
}

// boxPalette fills confidence boxes positionally.
var boxPalette = []color.Color{lightCoral, lightBlue, lightGreen}

// decisionStyle is the color and glyph used for a decision label in scatter plots.
type decisionStyle struct {
	Color color.Color
	Shape draw.GlyphDrawer
	Known bool
}

var knownDecisions = map[string]decisionStyle{
	"escalate": {Color: red, Shape: draw.CircleGlyph{}, Known: true},
	"approve":  {Color: green, Shape: draw.BoxGlyph{}, Known: true},
	"deny":     {Color: orange, Shape: draw.TriangleGlyph{}, Known: true},
}

var fallbackDecision = decisionStyle{Color: blue, Shape: draw.CircleGlyph{}}

// styleFor returns the scatter style for label, or the fallback style for unknown labels.
// Labels match exactly.
func styleFor(label string) decisionStyle {
	if s, ok := knownDecisions[label]; ok {
		return s
	}
	return fallbackDecision
}

// paletteColor returns p[i], or fallbackColor once the palette is exhausted.
func paletteColor(p []color.Color, i int) color.Color {
	if i >= 0 && i < len(p) {
		return p[i]
	}
	return fallbackColor
}

// titleCase upper-cases the first letter of label.
func titleCase(label string) string {
	if label == "" {
		return "(none)"
	}
	runes := []rune(label)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
