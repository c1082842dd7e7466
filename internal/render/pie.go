package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"ecommerce-eda-lab/internal/analysis"
)

const (
	pieRadiusFrac = 0.36
	pctRadius     = 0.6
	labelRadius   = 1.12
)

// pieChart draws proportional wedges with a percentage label inside each one
// and the group name just outside. It fills the data area and ignores axes.
type pieChart struct {
	groups []analysis.Group
	colors []color.Color
	total  float64
}

func newPieChart(groups []analysis.Group, colors []color.Color) (*pieChart, error) {
	if len(groups) == 0 {
		return nil, errors.Wrap(analysis.ErrEmptyGroup, "pie with no groups")
	}
	var total float64
	for _, g := range groups {
		if g.Value < 0 || math.IsNaN(g.Value) {
			return nil, errors.Errorf("pie value for %q is %v", g.Key, g.Value)
		}
		total += g.Value
	}
	if total == 0 {
		return nil, errors.Wrap(analysis.ErrEmptyGroup, "pie values sum to zero")
	}
	return &pieChart{groups: groups, colors: colors, total: total}, nil
}

// Plot implements plot.Plotter.
func (pc *pieChart) Plot(c draw.Canvas, plt *plot.Plot) {
	center := c.Center()
	w := c.Max.X - c.Min.X
	h := c.Max.Y - c.Min.Y
	radius := vg.Length(math.Min(float64(w), float64(h))) * pieRadiusFrac

	sty := plt.X.Tick.Label
	sty.Rotation = 0
	sty.YAlign = draw.YCenter

	start := 0.0
	for i, g := range pc.groups {
		frac := g.Value / pc.total
		sweep := frac * 2 * math.Pi

		var p vg.Path
		p.Move(center)
		p.Arc(center, radius, start, sweep)
		p.Close()
		c.SetColor(pc.colors[i%len(pc.colors)])
		c.Fill(p)

		mid := start + sweep/2
		cos, sin := math.Cos(mid), math.Sin(mid)

		pct := sty
		pct.XAlign = draw.XCenter
		c.FillText(pct, vg.Point{
			X: center.X + radius*vg.Length(pctRadius*cos),
			Y: center.Y + radius*vg.Length(pctRadius*sin),
		}, fmt.Sprintf("%.1f%%", frac*100))

		name := sty
		name.XAlign = draw.XLeft
		if cos < 0 {
			name.XAlign = draw.XRight
		}
		c.FillText(name, vg.Point{
			X: center.X + radius*vg.Length(labelRadius*cos),
			Y: center.Y + radius*vg.Length(labelRadius*sin),
		}, g.Key)

		start += sweep
	}
}
