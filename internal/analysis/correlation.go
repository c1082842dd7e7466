package analysis

import (
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"
)

// Matrix is a square, labelled matrix such as a correlation matrix.
type Matrix struct {
	Labels []string
	Values [][]float64
}

// Column returns a numeric column as float64 values.
func Column(df dataframe.DataFrame, name string) ([]float64, error) {
	if err := requireColumns(df, name); err != nil {
		return nil, err
	}
	col := df.Col(name)
	switch col.Type() {
	case series.Int, series.Float:
	default:
		return nil, errors.Errorf("column %q is %s, not numeric", name, col.Type())
	}
	if col.Len() == 0 {
		return nil, errors.Wrapf(ErrEmptyGroup, "column %q", name)
	}
	return col.Float(), nil
}

// NumericColumns lists the int and float columns in frame order. Booleans are excluded.
func NumericColumns(df dataframe.DataFrame) []string {
	var names []string
	types := df.Types()
	for i, name := range df.Names() {
		if types[i] == series.Int || types[i] == series.Float {
			names = append(names, name)
		}
	}
	return names
}

// CorrelationMatrix computes pairwise Pearson correlation over the named columns.
func CorrelationMatrix(df dataframe.DataFrame, names []string) (Matrix, error) {
	if len(names) == 0 {
		return Matrix{}, errors.Wrap(ErrMissingColumn, "no numeric columns")
	}
	cols := make([][]float64, len(names))
	for i, name := range names {
		values, err := Column(df, name)
		if err != nil {
			return Matrix{}, err
		}
		cols[i] = values
	}

	m := Matrix{Labels: names, Values: make([][]float64, len(names))}
	for i := range names {
		m.Values[i] = make([]float64, len(names))
	}
	for i := range names {
		m.Values[i][i] = 1
		for j := i + 1; j < len(names); j++ {
			r, err := stats.Pearson(cols[i], cols[j])
			if err != nil {
				return Matrix{}, errors.Wrapf(err, "correlate %s with %s", names[i], names[j])
			}
			m.Values[i][j] = r
			m.Values[j][i] = r
		}
	}
	return m, nil
}
