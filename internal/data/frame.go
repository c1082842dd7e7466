package data

import (
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// DataFrame returns a column-oriented view of the table for grouped aggregation.
// order_date is keyed as a DateLayout string so that lexical order is date order.
func (t Table) DataFrame() dataframe.DataFrame {
	n := len(t)
	var (
		orderIDs      = make([]int, n)
		customerIDs   = make([]int, n)
		productIDs    = make([]int, n)
		categories    = make([]string, n)
		prices        = make([]float64, n)
		quantities    = make([]int, n)
		discounts     = make([]int, n)
		ages          = make([]int, n)
		segments      = make([]string, n)
		payments      = make([]string, n)
		shippings     = make([]string, n)
		satisfactions = make([]int, n)
		dates         = make([]string, n)
		totals        = make([]float64, n)
		weekends      = make([]bool, n)
		hours         = make([]int, n)
	)
	for i, o := range t {
		orderIDs[i] = o.OrderID
		customerIDs[i] = o.CustomerID
		productIDs[i] = o.ProductID
		categories[i] = o.ProductCategory
		prices[i] = o.ProductPrice
		quantities[i] = o.Quantity
		discounts[i] = o.DiscountPercentage
		ages[i] = o.CustomerAge
		segments[i] = o.CustomerSegment
		payments[i] = o.PaymentMethod
		shippings[i] = o.ShippingMethod
		satisfactions[i] = o.CustomerSatisfaction
		dates[i] = o.OrderDate.Format(DateLayout)
		totals[i] = o.TotalAmount
		weekends[i] = o.IsWeekend
		hours[i] = o.Hour
	}

	return dataframe.New(
		series.New(orderIDs, series.Int, ColOrderID),
		series.New(customerIDs, series.Int, ColCustomerID),
		series.New(productIDs, series.Int, ColProductID),
		series.New(categories, series.String, ColProductCategory),
		series.New(prices, series.Float, ColProductPrice),
		series.New(quantities, series.Int, ColQuantity),
		series.New(discounts, series.Int, ColDiscountPercentage),
		series.New(ages, series.Int, ColCustomerAge),
		series.New(segments, series.String, ColCustomerSegment),
		series.New(payments, series.String, ColPaymentMethod),
		series.New(shippings, series.String, ColShippingMethod),
		series.New(satisfactions, series.Int, ColCustomerSatisfaction),
		series.New(dates, series.String, ColOrderDate),
		series.New(totals, series.Float, ColTotalAmount),
		series.New(weekends, series.Bool, ColIsWeekend),
		series.New(hours, series.Int, ColHour),
	)
}
