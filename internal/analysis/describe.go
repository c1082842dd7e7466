package analysis

import (
	"github.com/go-gota/gota/dataframe"
	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"
)

// Summary holds descriptive statistics for one numeric column.
type Summary struct {
	Column string
	Count  int
	Mean   float64
	Std    float64
	Min    float64
	Q1     float64
	Median float64
	Q3     float64
	Max    float64
}

// Describe summarizes every numeric column of df in frame order.
func Describe(df dataframe.DataFrame) ([]Summary, error) {
	names := NumericColumns(df)
	out := make([]Summary, 0, len(names))
	for _, name := range names {
		values, err := Column(df, name)
		if err != nil {
			return nil, err
		}
		s, err := describe(name, values)
		if err != nil {
			return nil, errors.Wrapf(err, "describe %s", name)
		}
		out = append(out, s)
	}
	return out, nil
}

func describe(name string, values stats.Float64Data) (Summary, error) {
	s := Summary{Column: name, Count: values.Len()}
	var err error
	if s.Mean, err = stats.Mean(values); err != nil {
		return s, err
	}
	if s.Min, err = stats.Min(values); err != nil {
		return s, err
	}
	if s.Max, err = stats.Max(values); err != nil {
		return s, err
	}
	if s.Count > 1 {
		if s.Std, err = stats.StandardDeviationSample(values); err != nil {
			return s, err
		}
	}
	if s.Median, err = stats.Median(values); err != nil {
		return s, err
	}
	if s.Count < 2 {
		s.Q1, s.Q3 = s.Median, s.Median
		return s, nil
	}
	q, err := stats.Quartile(values)
	if err != nil {
		return s, err
	}
	s.Q1, s.Q3 = q.Q1, q.Q3
	return s, nil
}
