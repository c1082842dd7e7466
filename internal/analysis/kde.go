package analysis

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// kdeCut is how many bandwidths the curve extends past the data.
const kdeCut = 3

// KDE evaluates a Gaussian kernel density estimate of values on an evenly
// spaced grid of the given size. The bandwidth follows Scott's rule.
func KDE(values []float64, points int) (xs, ys []float64, err error) {
	if len(values) < 2 {
		return nil, nil, errors.Wrapf(ErrEmptyGroup, "kde needs at least 2 values, got %d", len(values))
	}
	if points < 2 {
		return nil, nil, errors.Errorf("kde needs at least 2 grid points, got %d", points)
	}

	bw := stat.StdDev(values, nil) * math.Pow(float64(len(values)), -0.2)
	if bw == 0 || math.IsNaN(bw) {
		return nil, nil, errors.New("kde: values have no spread")
	}

	lo := floats.Min(values) - kdeCut*bw
	hi := floats.Max(values) + kdeCut*bw
	xs = make([]float64, points)
	floats.Span(xs, lo, hi)

	ys = make([]float64, points)
	kernels := make([]distuv.Normal, len(values))
	for i, v := range values {
		kernels[i] = distuv.Normal{Mu: v, Sigma: bw}
	}
	n := float64(len(values))
	for i, x := range xs {
		var density float64
		for _, k := range kernels {
			density += k.Prob(x)
		}
		ys[i] = density / n
	}
	return xs, ys, nil
}
