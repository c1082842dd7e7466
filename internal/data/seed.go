package data

import (
	"math/rand/v2"
	"time"

	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat/distuv"
)

const (
	DefaultRows = 1000
	DefaultSeed = 42

	priceMean   = 100
	priceStdDev = 20
)

// Epoch is the order date of the first row; each following row is one day later.
var Epoch = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// SeedConfig controls the size and randomness of a synthesis run.
type SeedConfig struct {
	Rows int
	Seed uint64
}

// intRange is a half-open uniform integer range [min, max).
type intRange struct {
	min, max int
}

var (
	customerIDRange = intRange{1000, 2000}
	productIDRange  = intRange{2000, 3000}
	quantityRange   = intRange{1, 8}
	ageRange        = intRange{18, 65}
	hourRange       = intRange{6, 22}
)

// GenerateDataset builds a deterministic table of cfg.Rows synthetic orders.
// Columns are drawn one at a time in a fixed order from a single seeded
// source, so the same seed and row count always reproduce the same table.
func GenerateDataset(cfg SeedConfig) (Table, error) {
	if cfg.Rows <= 0 {
		return nil, errors.Wrapf(ErrInvalidRowCount, "rows=%d", cfg.Rows)
	}

	src := rand.NewPCG(cfg.Seed, cfg.Seed)
	rnd := rand.New(src)
	n := cfg.Rows

	category, err := ProductCategories.sampler(src)
	if err != nil {
		return nil, err
	}
	discount, err := DiscountLevels.sampler(src)
	if err != nil {
		return nil, err
	}
	segment, err := CustomerSegments.sampler(src)
	if err != nil {
		return nil, err
	}
	payment, err := PaymentMethods.sampler(src)
	if err != nil {
		return nil, err
	}
	shipping, err := ShippingMethods.sampler(src)
	if err != nil {
		return nil, err
	}
	satisfaction, err := SatisfactionScores.sampler(src)
	if err != nil {
		return nil, err
	}
	price := distuv.Normal{Mu: priceMean, Sigma: priceStdDev, Src: src}

	table := make(Table, n)
	for i := range table {
		table[i].OrderID = i + 1
	}

	// Draw order matters: reordering these loops changes every later value.
	for i := range table {
		table[i].CustomerID = customerIDRange.draw(rnd)
	}
	for i := range table {
		table[i].ProductID = productIDRange.draw(rnd)
	}
	for i := range table {
		table[i].ProductCategory = category()
	}
	for i := range table {
		table[i].ProductPrice = round2(price.Rand())
	}
	for i := range table {
		table[i].Quantity = quantityRange.draw(rnd)
	}
	for i := range table {
		table[i].DiscountPercentage = discount()
	}
	for i := range table {
		table[i].CustomerAge = ageRange.draw(rnd)
	}
	for i := range table {
		table[i].CustomerSegment = segment()
	}
	for i := range table {
		table[i].PaymentMethod = payment()
	}
	for i := range table {
		table[i].ShippingMethod = shipping()
	}
	for i := range table {
		table[i].CustomerSatisfaction = satisfaction()
	}
	for i := range table {
		table[i].OrderDate = Epoch.AddDate(0, 0, i)
	}

	for i := range table {
		o := &table[i]
		o.TotalAmount = TotalAmount(o.ProductPrice, o.Quantity, o.DiscountPercentage)
		o.IsWeekend = IsWeekend(o.OrderDate)
	}

	// Hour is sampled on its own, after the derived columns, and is not tied to OrderDate.
	for i := range table {
		table[i].Hour = hourRange.draw(rnd)
	}

	return table, nil
}

// TotalAmount is price × quantity × (1 − discount/100), rounded to cents.
func TotalAmount(price float64, quantity, discountPct int) float64 {
	return round2(price * float64(quantity) * (1 - float64(discountPct)/100))
}

// IsWeekend reports whether t falls on a Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

func (r intRange) draw(rnd *rand.Rand) int {
	return r.min + rnd.IntN(r.max-r.min)
}

func round2(v float64) float64 {
	rounded, err := stats.Round(v, 2)
	if err != nil {
		// stats.Round only fails on NaN.
		return v
	}
	return rounded
}
