package render

import (
	"fmt"
	"image/color"
	"strconv"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"ecommerce-eda-lab/internal/analysis"
	"ecommerce-eda-lab/internal/data"
)

const (
	kdePoints = 200
	barWidth  = vg.Length(36)
	boxWidth  = vg.Length(30)
)

// panel is one titled chart in the grid.
type panel struct {
	Title string
	Build func(df dataframe.DataFrame) (*plot.Plot, error)
}

// panels lists the charts in grid order, left to right then top to bottom.
func panels() []panel {
	categories := data.ProductCategories.Labels()
	segments := data.CustomerSegments.Labels()
	payments := data.PaymentMethods.Labels()
	shipping := data.ShippingMethods.Labels()
	discounts := data.DiscountLevels.Labels()
	scores := data.SatisfactionScores.Labels()

	return []panel{
		{"Product Price Distribution", func(df dataframe.DataFrame) (*plot.Plot, error) {
			return histogramPanel(df, data.ColProductPrice, 30, salmon, true, "Mean: %.2f")
		}},
		{"Product Category Distribution", func(df dataframe.DataFrame) (*plot.Plot, error) {
			counts, err := analysis.ValueCounts(df, data.ColProductCategory)
			if err != nil {
				return nil, err
			}
			if _, err := analysis.Reorder(counts, categories); err != nil {
				return nil, err
			}
			return piePanel(counts)
		}},
		{"Total Sales per Category", func(df dataframe.DataFrame) (*plot.Plot, error) {
			return aggregateBarPanel(df, analysis.SumBy, data.ColProductCategory, data.ColTotalAmount, categories)
		}},
		{"Customer Age Distribution", func(df dataframe.DataFrame) (*plot.Plot, error) {
			return histogramPanel(df, data.ColCustomerAge, 20, green, true, "Mean: %.1f")
		}},
		{"Customer Segment Distribution", func(df dataframe.DataFrame) (*plot.Plot, error) {
			return countPanel(df, data.ColCustomerSegment, segments, pastel(len(segments)), false)
		}},
		{"Payment Methods Used", func(df dataframe.DataFrame) (*plot.Plot, error) {
			return countPanel(df, data.ColPaymentMethod, payments, husl(len(payments)), true)
		}},
		{"Discount Distribution", func(df dataframe.DataFrame) (*plot.Plot, error) {
			return countPanel(df, data.ColDiscountPercentage, discounts, []color.Color{purple}, false)
		}},
		{"Customer Satisfaction Distribution", func(df dataframe.DataFrame) (*plot.Plot, error) {
			return countPanel(df, data.ColCustomerSatisfaction, scores, []color.Color{orange}, false)
		}},
		{"Items per Transaction Distribution", func(df dataframe.DataFrame) (*plot.Plot, error) {
			return histogramPanel(df, data.ColQuantity, 7, saddleBrown, false, "")
		}},
		{"Transaction Total Distribution", func(df dataframe.DataFrame) (*plot.Plot, error) {
			return histogramPanel(df, data.ColTotalAmount, 30, steelBlue, true, "")
		}},
		{"Numeric Variable Correlation Heatmap", correlationPanel},
		{"Price Distribution per Category", func(df dataframe.DataFrame) (*plot.Plot, error) {
			return boxPanel(df, data.ColProductCategory, data.ColProductPrice, categories)
		}},
		{"Transaction Total vs Satisfaction", func(df dataframe.DataFrame) (*plot.Plot, error) {
			return boxPanel(df, data.ColCustomerSatisfaction, data.ColTotalAmount, scores)
		}},
		{"Average Transaction Value per Shipping Method", func(df dataframe.DataFrame) (*plot.Plot, error) {
			return aggregateBarPanel(df, analysis.MeanBy, data.ColShippingMethod, data.ColTotalAmount, shipping)
		}},
		{"Revenue Contribution per Customer Segment", func(df dataframe.DataFrame) (*plot.Plot, error) {
			revenue, err := analysis.SumBy(df, data.ColCustomerSegment, data.ColTotalAmount)
			if err != nil {
				return nil, err
			}
			if _, err := analysis.Reorder(revenue, segments); err != nil {
				return nil, err
			}
			return piePanel(revenue)
		}},
		{"Daily Sales Trend", dailySalesPanel},
		{"Hourly Order Pattern", func(df dataframe.DataFrame) (*plot.Plot, error) {
			return meanLinePanel(df, data.ColHour, data.ColQuantity, red)
		}},
		{"Discount Effect on Purchase Quantity", func(df dataframe.DataFrame) (*plot.Plot, error) {
			return meanLinePanel(df, data.ColDiscountPercentage, data.ColQuantity, purple)
		}},
	}
}

func histogramPanel(df dataframe.DataFrame, col string, bins int, fill color.Color, kde bool, meanFormat string) (*plot.Plot, error) {
	values, err := analysis.Column(df, col)
	if err != nil {
		return nil, err
	}

	p := plot.New()
	p.X.Label.Text = col
	p.Y.Label.Text = "Count"

	h, err := plotter.NewHist(plotter.Values(values), bins)
	if err != nil {
		return nil, errors.Wrapf(err, "histogram of %s", col)
	}
	h.FillColor = fill
	h.LineStyle.Color = color.White
	p.Add(h)

	var peak float64
	for _, b := range h.Bins {
		peak = max(peak, b.Weight)
	}

	if kde {
		xs, ys, err := analysis.KDE(values, kdePoints)
		if err != nil {
			return nil, errors.Wrapf(err, "density of %s", col)
		}
		// scale the density to the histogram's count axis
		scale := float64(len(values)) * h.Width
		xys := make(plotter.XYs, len(xs))
		for i := range xs {
			xys[i] = plotter.XY{X: xs[i], Y: ys[i] * scale}
		}
		curve, err := plotter.NewLine(xys)
		if err != nil {
			return nil, err
		}
		curve.Color = fill
		curve.Width = vg.Points(1.5)
		p.Add(curve)
	}

	if meanFormat != "" {
		mean, err := stats.Mean(values)
		if err != nil {
			return nil, errors.Wrapf(err, "mean of %s", col)
		}
		ref, err := plotter.NewLine(plotter.XYs{{X: mean, Y: 0}, {X: mean, Y: peak}})
		if err != nil {
			return nil, err
		}
		ref.Color = red
		ref.Width = vg.Points(1.5)
		ref.Dashes = []vg.Length{vg.Points(6), vg.Points(4)}
		p.Add(ref)
		p.Legend.Add(fmt.Sprintf(meanFormat, mean), ref)
		p.Legend.Top = true
	}
	return p, nil
}

func countPanel(df dataframe.DataFrame, col string, order []string, colors []color.Color, horizontal bool) (*plot.Plot, error) {
	counts, err := analysis.CountBy(df, col)
	if err != nil {
		return nil, err
	}
	counts, err = analysis.Reorder(counts, order)
	if err != nil {
		return nil, errors.Wrap(err, col)
	}

	p := plot.New()
	if horizontal {
		p.X.Label.Text = "count"
		p.Y.Label.Text = col
	} else {
		p.X.Label.Text = col
		p.Y.Label.Text = "count"
	}
	if err := addBars(p, counts, colors, horizontal); err != nil {
		return nil, err
	}
	return p, nil
}

type aggregator func(df dataframe.DataFrame, key, value string) ([]analysis.Group, error)

func aggregateBarPanel(df dataframe.DataFrame, agg aggregator, key, value string, order []string) (*plot.Plot, error) {
	groups, err := agg(df, key, value)
	if err != nil {
		return nil, err
	}
	groups, err = analysis.Reorder(groups, order)
	if err != nil {
		return nil, errors.Wrap(err, key)
	}

	p := plot.New()
	p.X.Label.Text = key
	p.Y.Label.Text = value
	if err := addBars(p, groups, husl(len(groups)), false); err != nil {
		return nil, err
	}
	return p, nil
}

// addBars draws one bar per group so that each bar can take its own color.
func addBars(p *plot.Plot, groups []analysis.Group, colors []color.Color, horizontal bool) error {
	for i, g := range groups {
		bar, err := plotter.NewBarChart(plotter.Values{g.Value}, barWidth)
		if err != nil {
			return errors.Wrapf(err, "bar %q", g.Key)
		}
		bar.XMin = float64(i)
		bar.Color = colors[i%len(colors)]
		bar.LineStyle.Width = 0
		bar.Horizontal = horizontal
		p.Add(bar)
	}
	if horizontal {
		p.NominalY(analysis.Keys(groups)...)
	} else {
		p.NominalX(analysis.Keys(groups)...)
	}
	return nil
}

func piePanel(groups []analysis.Group) (*plot.Plot, error) {
	pie, err := newPieChart(groups, husl(len(groups)))
	if err != nil {
		return nil, err
	}
	p := plot.New()
	p.HideAxes()
	p.Add(pie)
	return p, nil
}

func boxPanel(df dataframe.DataFrame, key, value string, order []string) (*plot.Plot, error) {
	split, err := analysis.ValuesBy(df, key, value)
	if err != nil {
		return nil, err
	}

	p := plot.New()
	p.X.Label.Text = key
	p.Y.Label.Text = value
	colors := husl(len(order))
	for i, k := range order {
		values := split[k]
		if len(values) == 0 {
			return nil, errors.Wrapf(analysis.ErrEmptyGroup, "%s has no rows for %q", key, k)
		}
		box, err := plotter.NewBoxPlot(boxWidth, float64(i), plotter.Values(values))
		if err != nil {
			return nil, errors.Wrapf(err, "box %q", k)
		}
		box.FillColor = colors[i]
		p.Add(box)
	}
	p.NominalX(order...)
	return p, nil
}

func correlationPanel(df dataframe.DataFrame) (*plot.Plot, error) {
	m, err := analysis.CorrelationMatrix(df, analysis.NumericColumns(df))
	if err != nil {
		return nil, err
	}
	p := plot.New()
	if err := addCorrelationHeatmap(p, m); err != nil {
		return nil, err
	}
	return p, nil
}

func dailySalesPanel(df dataframe.DataFrame) (*plot.Plot, error) {
	daily, err := analysis.SumBy(df, data.ColOrderDate, data.ColTotalAmount)
	if err != nil {
		return nil, err
	}
	xys := make(plotter.XYs, len(daily))
	for i, g := range daily {
		day, err := time.Parse(data.DateLayout, g.Key)
		if err != nil {
			return nil, errors.Wrapf(err, "parse order date %q", g.Key)
		}
		xys[i] = plotter.XY{X: float64(day.Unix()), Y: g.Value}
	}

	line, err := plotter.NewLine(xys)
	if err != nil {
		return nil, err
	}
	line.Color = green

	p := plot.New()
	p.X.Label.Text = "Date"
	p.Y.Label.Text = "Total Sales"
	p.X.Tick.Marker = plot.TimeTicks{Format: "2006-01"}
	p.Add(line)
	return p, nil
}

// meanLinePanel plots mean(value) per key with keys on a numeric x axis.
func meanLinePanel(df dataframe.DataFrame, key, value string, c color.Color) (*plot.Plot, error) {
	means, err := analysis.MeanBy(df, key, value)
	if err != nil {
		return nil, err
	}
	xys := make(plotter.XYs, len(means))
	for i, g := range means {
		x, err := strconv.Atoi(g.Key)
		if err != nil {
			return nil, errors.Wrapf(err, "%s key %q", key, g.Key)
		}
		xys[i] = plotter.XY{X: float64(x), Y: g.Value}
	}

	line, points, err := plotter.NewLinePoints(xys)
	if err != nil {
		return nil, err
	}
	line.Color = c
	points.Color = c
	points.Shape = draw.CircleGlyph{}

	p := plot.New()
	p.X.Label.Text = key
	p.Y.Label.Text = value
	p.Add(line, points)
	return p, nil
}
