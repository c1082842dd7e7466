package data

import "time"

// Column names shared by the dataframe view, CSV export and chart panels.
const (
	ColOrderID              = "order_id"
	ColCustomerID           = "customer_id"
	ColProductID            = "product_id"
	ColProductCategory      = "product_category"
	ColProductPrice         = "product_price"
	ColQuantity             = "quantity"
	ColDiscountPercentage   = "discount_percentage"
	ColCustomerAge          = "customer_age"
	ColCustomerSegment      = "customer_segment"
	ColPaymentMethod        = "payment_method"
	ColShippingMethod       = "shipping_method"
	ColCustomerSatisfaction = "customer_satisfaction"
	ColOrderDate            = "order_date"
	ColTotalAmount          = "total_amount"
	ColIsWeekend            = "is_weekend"
	ColHour                 = "hour"
)

// DateLayout is how order dates are keyed in the dataframe and the CSV export.
const DateLayout = "2006-01-02"

// Order is one synthesized e-commerce transaction.
type Order struct {
	OrderID              int
	CustomerID           int
	ProductID            int
	ProductCategory      string
	ProductPrice         float64
	Quantity             int
	DiscountPercentage   int
	CustomerAge          int
	CustomerSegment      string
	PaymentMethod        string
	ShippingMethod       string
	CustomerSatisfaction int
	OrderDate            time.Time
	TotalAmount          float64
	IsWeekend            bool
	Hour                 int
}

// Table is the immutable result of a synthesis run.
type Table []Order

// Len reports the number of rows.
func (t Table) Len() int {
	return len(t)
}

// GrandTotal sums TotalAmount across every row.
func (t Table) GrandTotal() float64 {
	var sum float64
	for _, o := range t {
		sum += o.TotalAmount
	}
	return sum
}
