// internal/charts/textpanel.go
package charts

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// TextPanel fills its canvas with a background and writes lines from the top left.
type TextPanel struct {
	Lines      []string
	Background color.Color
	TextStyle  text.Style
	Padding    vg.Length
}

var _ plot.Plotter = (*TextPanel)(nil)

// NewTextPanel returns a panel holding lines.
func NewTextPanel(bg color.Color, lines ...string) *TextPanel {
	sty := plot.New().Legend.TextStyle
	sty.XAlign = draw.XLeft
	sty.YAlign = draw.YTop
	return &TextPanel{
		Lines:      lines,
		Background: bg,
		TextStyle:  sty,
		Padding:    vg.Points(8),
	}
}

// Plot implements the plot.Plotter interface.
func (tp *TextPanel) Plot(c draw.Canvas, plt *plot.Plot) {
	if tp.Background != nil {
		c.FillPolygon(tp.Background, []vg.Point{
			c.Min,
			{X: c.Max.X, Y: c.Min.Y},
			c.Max,
			{X: c.Min.X, Y: c.Max.Y},
		})
	}
	lineHeight := tp.TextStyle.Font.Size * 1.5
	pt := vg.Point{X: c.Min.X + tp.Padding, Y: c.Max.Y - tp.Padding}
	for _, line := range tp.Lines {
		c.FillText(tp.TextStyle, pt, line)
		pt.Y -= lineHeight
	}
}

// textPlot wraps a TextPanel in a plot with hidden axes.
func textPlot(title string, panel *TextPanel) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.HideAxes()
	p.Add(panel)
	return p
}
