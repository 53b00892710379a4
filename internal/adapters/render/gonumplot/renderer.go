// Package gonumplot draws plot charts with gonum.org/v1/plot. The image format follows
// the output file's extension (pdf, svg, eps, png, jpg, tif, tex)
package gonumplot

import (
	"fmt"
	"image/color"

	perr "gasanalysis/internal/platform/errors"
	"gasanalysis/internal/services/plot/domain"

	"golang.org/x/image/colornames"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Exponent limits for tick labels
const (
	sciLo = 0
	sciHi = 5
)

var palette = []color.RGBA{
	colornames.Steelblue,
	colornames.Darkorange,
	colornames.Seagreen,
	colornames.Crimson,
	colornames.Mediumpurple,
	colornames.Sienna,
	colornames.Orchid,
	colornames.Gray,
	colornames.Olive,
	colornames.Darkturquoise,
}

// Renderer implements domain.Renderer
type Renderer struct {
	Width, Height vg.Length
}

// New returns a renderer producing images of the given size in inches
func New(widthIn, heightIn float64) *Renderer {
	return &Renderer{Width: vg.Length(widthIn) * vg.Inch, Height: vg.Length(heightIn) * vg.Inch}
}

// Render draws every series as a scatter with its fitted line and saves the plot at path.
// The parent directory must exist; an existing file is overwritten
func (r *Renderer) Render(c domain.Chart, path string) error {
	p := plot.New()
	p.X.Label.Text = c.XLabel
	p.Y.Label.Text = c.YLabel
	p.X.Tick.Marker = SciTicks{Lo: sciLo, Hi: sciHi}
	p.Y.Tick.Marker = SciTicks{Lo: sciLo, Hi: sciHi}
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	for i, s := range c.Series {
		col := palette[i%len(palette)]

		xys := make(plotter.XYs, len(s.X))
		for j := range s.X {
			xys[j].X, xys[j].Y = s.X[j], s.Y[j]
		}
		sc, err := plotter.NewScatter(xys)
		if err != nil {
			return perr.Wrapf(err, perr.ErrorCodeRender, "scatter for group %q", s.Name)
		}
		sc.GlyphStyle.Color = col
		sc.GlyphStyle.Radius = vg.Points(1.5)
		sc.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(sc)

		if s.HasFit {
			fn := plotter.NewFunction(s.Fit.At)
			fn.XMin, fn.XMax = floats.Min(s.X), floats.Max(s.X)
			fn.Samples = 2
			fn.Color = col
			fn.Width = vg.Points(1.5)
			p.Add(fn)
		}
		if c.Group != "" {
			p.Legend.Add(fmt.Sprintf("%s = %s", c.Group, s.Name), sc)
		}
	}

	if err := p.Save(r.Width, r.Height, path); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeRender, "save plot %s", path)
	}
	return nil
}
