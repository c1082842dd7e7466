package render

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"ecommerce-eda-lab/internal/analysis"
)

// corrGrid lays a square matrix out with row 0 at the top.
type corrGrid struct {
	m analysis.Matrix
}

func (g corrGrid) Dims() (c, r int) {
	n := len(g.m.Labels)
	return n, n
}

func (g corrGrid) Z(c, r int) float64 {
	return g.m.Values[len(g.m.Labels)-1-r][c]
}

func (g corrGrid) X(c int) float64 { return float64(c) }
func (g corrGrid) Y(r int) float64 { return float64(r) }

// addCorrelationHeatmap draws m on a cool-warm scale fixed to [-1, 1] and
// writes each coefficient into its cell.
func addCorrelationHeatmap(p *plot.Plot, m analysis.Matrix) error {
	n := len(m.Labels)
	if n == 0 {
		return errors.Wrap(analysis.ErrMissingColumn, "empty correlation matrix")
	}

	grid := corrGrid{m: m}
	cmap := moreland.SmoothBlueRed()
	cmap.SetMin(-1)
	cmap.SetMax(1)
	hm := plotter.NewHeatMap(grid, cmap.Palette(255))
	hm.Min, hm.Max = -1, 1
	p.Add(hm)

	xys := make(plotter.XYs, 0, n*n)
	labels := make([]string, 0, n*n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			z := grid.Z(c, r)
			if math.IsNaN(z) {
				z = 0
			}
			xys = append(xys, plotter.XY{X: grid.X(c), Y: grid.Y(r)})
			labels = append(labels, fmt.Sprintf("%.2f", z))
		}
	}
	annot, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: labels})
	if err != nil {
		return errors.Wrap(err, "heatmap labels")
	}
	for i := range annot.TextStyle {
		annot.TextStyle[i].XAlign = draw.XCenter
		annot.TextStyle[i].YAlign = draw.YCenter
		annot.TextStyle[i].Font.Size = vg.Points(7)
	}
	p.Add(annot)

	yNames := make([]string, n)
	for r := range yNames {
		yNames[r] = m.Labels[n-1-r]
	}
	p.NominalX(m.Labels...)
	p.NominalY(yNames...)
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter
	return nil
}
