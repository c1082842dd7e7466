package analysis

import (
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"ecommerce-eda-lab/internal/data"
)

func TestNumericColumns_SkipsStringsAndBools(t *testing.T) {
	table, err := data.GenerateDataset(data.SeedConfig{Rows: 20, Seed: data.DefaultSeed})
	require.NoError(t, err)

	assert.Equal(t, []string{
		data.ColOrderID,
		data.ColCustomerID,
		data.ColProductID,
		data.ColProductPrice,
		data.ColQuantity,
		data.ColDiscountPercentage,
		data.ColCustomerAge,
		data.ColCustomerSatisfaction,
		data.ColTotalAmount,
		data.ColHour,
	}, NumericColumns(table.DataFrame()))
}

func TestColumn(t *testing.T) {
	values, err := Column(sampleFrame(), "level")
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 0, 5, 10, 0, 20}, values)

	_, err = Column(sampleFrame(), "kind")
	assert.Error(t, err)

	_, err = Column(sampleFrame(), "missing")
	assert.ErrorIs(t, err, ErrMissingColumn)
}

func TestCorrelationMatrix(t *testing.T) {
	df := dataframe.New(
		series.New([]float64{1, 2, 3, 4}, series.Float, "x"),
		series.New([]float64{2, 4, 6, 8}, series.Float, "double"),
		series.New([]float64{4, 3, 2, 1}, series.Float, "reverse"),
	)
	m, err := CorrelationMatrix(df, NumericColumns(df))
	require.NoError(t, err)

	assert.Equal(t, []string{"x", "double", "reverse"}, m.Labels)
	for i := range m.Values {
		assert.InDelta(t, 1, m.Values[i][i], 1e-12)
		for j := range m.Values {
			assert.InDelta(t, m.Values[i][j], m.Values[j][i], 1e-12)
		}
	}
	assert.InDelta(t, 1, m.Values[0][1], 1e-9)
	assert.InDelta(t, -1, m.Values[0][2], 1e-9)

	_, err = CorrelationMatrix(df, []string{"x", "nope"})
	assert.ErrorIs(t, err, ErrMissingColumn)

	_, err = CorrelationMatrix(df, nil)
	assert.ErrorIs(t, err, ErrMissingColumn)
}

func TestKDE(t *testing.T) {
	values := []float64{1, 2, 2, 3, 3, 3, 4, 4, 5}
	xs, ys, err := KDE(values, 200)
	require.NoError(t, err)
	require.Len(t, xs, 200)
	require.Len(t, ys, 200)

	assert.Less(t, xs[0], floats.Min(values))
	assert.Greater(t, xs[199], floats.Max(values))

	// Trapezoidal area under the curve should be close to one.
	var area float64
	for i := 1; i < len(xs); i++ {
		area += (xs[i] - xs[i-1]) * (ys[i] + ys[i-1]) / 2
	}
	assert.InDelta(t, 1, area, 0.01)

	peak := floats.MaxIdx(ys)
	assert.InDelta(t, 3, xs[peak], 0.5)

	_, _, err = KDE([]float64{1}, 10)
	assert.ErrorIs(t, err, ErrEmptyGroup)

	_, _, err = KDE([]float64{2, 2, 2}, 10)
	assert.Error(t, err)
}

func TestDescribe(t *testing.T) {
	df := dataframe.New(
		series.New([]string{"a", "b", "c", "d"}, series.String, "label"),
		series.New([]int{1, 2, 3, 4}, series.Int, "n"),
	)
	summaries, err := Describe(df)
	require.NoError(t, err)
	require.Len(t, summaries, 1)

	s := summaries[0]
	assert.Equal(t, "n", s.Column)
	assert.Equal(t, 4, s.Count)
	assert.InDelta(t, 2.5, s.Mean, 1e-12)
	assert.InDelta(t, 1.2909944, s.Std, 1e-6)
	assert.Equal(t, 1.0, s.Min)
	assert.Equal(t, 1.5, s.Q1)
	assert.Equal(t, 2.5, s.Median)
	assert.Equal(t, 3.5, s.Q3)
	assert.Equal(t, 4.0, s.Max)
}
