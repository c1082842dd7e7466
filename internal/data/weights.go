package data

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat/distuv"
)

const weightTolerance = 1e-9

var (
	// ErrInvalidWeights reports a malformed probability weight vector.
	ErrInvalidWeights = errors.New("invalid weight vector")
	// ErrInvalidRowCount reports a non-positive row count.
	ErrInvalidRowCount = errors.New("row count must be positive")
)

// Choice is a named discrete distribution over Values.
type Choice[T any] struct {
	Name    string
	Values  []T
	Weights []float64
}

// Validate checks that the weights line up with the values, are non-negative and sum to 1.
func (c Choice[T]) Validate() error {
	if len(c.Values) == 0 {
		return errors.Wrapf(ErrInvalidWeights, "%s: no values", c.Name)
	}
	if len(c.Values) != len(c.Weights) {
		return errors.Wrapf(ErrInvalidWeights, "%s: %d values but %d weights", c.Name, len(c.Values), len(c.Weights))
	}
	var sum float64
	for i, w := range c.Weights {
		if w < 0 || math.IsNaN(w) {
			return errors.Wrapf(ErrInvalidWeights, "%s: weight %d is %v", c.Name, i, w)
		}
		sum += w
	}
	if math.Abs(sum-1) > weightTolerance {
		return errors.Wrapf(ErrInvalidWeights, "%s: weights sum to %v", c.Name, sum)
	}
	return nil
}

// Sum returns the total of the weight vector.
func (c Choice[T]) Sum() float64 {
	var sum float64
	for _, w := range c.Weights {
		sum += w
	}
	return sum
}

// sampler validates the vector and returns a draw function bound to src.
func (c Choice[T]) sampler(src rand.Source) (func() T, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	dist := distuv.NewCategorical(c.Weights, src)
	return func() T {
		return c.Values[int(dist.Rand())]
	}, nil
}

var (
	ProductCategories = Choice[string]{
		Name:    ColProductCategory,
		Values:  []string{"Electronics", "Clothing", "Books", "Home & Garden", "Sports"},
		Weights: []float64{0.30, 0.25, 0.15, 0.20, 0.10},
	}
	DiscountLevels = Choice[int]{
		Name:    ColDiscountPercentage,
		Values:  []int{0, 5, 10, 15, 20},
		Weights: []float64{0.60, 0.15, 0.10, 0.10, 0.05},
	}
	CustomerSegments = Choice[string]{
		Name:    ColCustomerSegment,
		Values:  []string{"Regular", "Premium", "VIP"},
		Weights: []float64{0.60, 0.30, 0.10},
	}
	PaymentMethods = Choice[string]{
		Name:    ColPaymentMethod,
		Values:  []string{"Credit Card", "Debit Card", "PayPal", "Bank Transfer"},
		Weights: []float64{0.40, 0.25, 0.25, 0.10},
	}
	ShippingMethods = Choice[string]{
		Name:    ColShippingMethod,
		Values:  []string{"Standard", "Express", "Same Day"},
		Weights: []float64{0.70, 0.25, 0.05},
	}
	SatisfactionScores = Choice[int]{
		Name:    ColCustomerSatisfaction,
		Values:  []int{1, 2, 3, 4, 5},
		Weights: []float64{0.10, 0.15, 0.25, 0.30, 0.20},
	}
)

// Labels renders each value the way grouped dataframe keys print it.
func (c Choice[T]) Labels() []string {
	labels := make([]string, len(c.Values))
	for i, v := range c.Values {
		labels[i] = fmt.Sprint(v)
	}
	return labels
}
