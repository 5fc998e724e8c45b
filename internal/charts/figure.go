// internal/charts/figure.go
package charts

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Figure is a titled grid of plots. Nil cells are left blank.
type Figure struct {
	Title  string
	Panels [][]*plot.Plot

	// ColWidths and RowHeights are relative sizes. When both are empty the
	// panels are laid out with plot.Align on an even grid.
	ColWidths  []float64
	RowHeights []float64
}

// dims returns the grid size.
func (f *Figure) dims() (rows, cols int) {
	rows = len(f.Panels)
	for _, row := range f.Panels {
		if len(row) > cols {
			cols = len(row)
		}
	}
	return rows, cols
}

// grid returns the panels padded to a full rows×cols matrix.
func (f *Figure) grid() [][]*plot.Plot {
	rows, cols := f.dims()
	out := make([][]*plot.Plot, rows)
	for j := range out {
		out[j] = make([]*plot.Plot, cols)
		copy(out[j], f.Panels[j])
	}
	return out
}

// Draw renders the figure onto dc.
func (f *Figure) Draw(dc draw.Canvas) {
	body := dc
	if f.Title != "" {
		sty := titleStyle()
		pad := sty.Font.Size / 2
		dc.FillText(sty, vg.Point{X: dc.Center().X, Y: dc.Max.Y - pad}, f.Title)
		body = draw.Crop(dc, 0, 0, 0, -(sty.Font.Size*2 + pad))
	}

	rows, cols := f.dims()
	if rows == 0 || cols == 0 {
		return
	}
	plots := f.grid()
	pad := vg.Points(12)

	if len(f.ColWidths) == 0 && len(f.RowHeights) == 0 {
		tiles := draw.Tiles{
			Rows: rows, Cols: cols,
			PadX: pad, PadY: pad,
			PadTop: pad, PadBottom: pad, PadLeft: pad, PadRight: pad,
		}
		canvases := plot.Align(plots, tiles, body)
		for j := range plots {
			for i, p := range plots[j] {
				if p != nil {
					p.Draw(canvases[j][i])
				}
			}
		}
		return
	}

	xs := spans(f.ColWidths, cols, body.Min.X+pad, body.Max.X-pad, pad)
	lo, hi := body.Min.Y+pad, body.Max.Y-pad
	ys := spans(f.RowHeights, rows, lo, hi, pad)
	for j := range plots {
		// Row 0 is the top row, so mirror the interval.
		top := [2]vg.Length{lo + hi - ys[j][1], lo + hi - ys[j][0]}
		for i, p := range plots[j] {
			if p == nil {
				continue
			}
			left := xs[i]
			c := draw.Canvas{
				Canvas: body.Canvas,
				Rectangle: vg.Rectangle{
					Min: vg.Point{X: left[0], Y: top[0]},
					Max: vg.Point{X: left[1], Y: top[1]},
				},
			}
			p.Draw(c)
		}
	}
}

// spans splits [lo, hi] into n intervals sized by weights, separated by gap.
func spans(weights []float64, n int, lo, hi, gap vg.Length) [][2]vg.Length {
	w := make([]float64, n)
	total := 0.0
	for i := range w {
		w[i] = 1
		if i < len(weights) && weights[i] > 0 {
			w[i] = weights[i]
		}
		total += w[i]
	}
	avail := hi - lo - gap*vg.Length(n-1)
	out := make([][2]vg.Length, n)
	at := lo
	for i := range w {
		size := avail * vg.Length(w[i]/total)
		out[i] = [2]vg.Length{at, at + size}
		at += size + gap
	}
	return out
}

func titleStyle() text.Style {
	sty := plot.New().Title.TextStyle
	sty.Font.Size = vg.Points(18)
	sty.XAlign = draw.XCenter
	sty.YAlign = draw.YTop
	return sty
}
