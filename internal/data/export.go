package data

import (
	"io"

	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"
)

// csvOrder flattens an Order for export; the date is written as DateLayout.
type csvOrder struct {
	OrderID              int     `csv:"order_id"`
	CustomerID           int     `csv:"customer_id"`
	ProductID            int     `csv:"product_id"`
	ProductCategory      string  `csv:"product_category"`
	ProductPrice         float64 `csv:"product_price"`
	Quantity             int     `csv:"quantity"`
	DiscountPercentage   int     `csv:"discount_percentage"`
	CustomerAge          int     `csv:"customer_age"`
	CustomerSegment      string  `csv:"customer_segment"`
	PaymentMethod        string  `csv:"payment_method"`
	ShippingMethod       string  `csv:"shipping_method"`
	CustomerSatisfaction int     `csv:"customer_satisfaction"`
	OrderDate            string  `csv:"order_date"`
	TotalAmount          float64 `csv:"total_amount"`
	IsWeekend            bool    `csv:"is_weekend"`
	Hour                 int     `csv:"hour"`
}

// WriteCSV writes the table with a header row to w.
func (t Table) WriteCSV(w io.Writer) error {
	rows := make([]csvOrder, len(t))
	for i, o := range t {
		rows[i] = csvOrder{
			OrderID:              o.OrderID,
			CustomerID:           o.CustomerID,
			ProductID:            o.ProductID,
			ProductCategory:      o.ProductCategory,
			ProductPrice:         o.ProductPrice,
			Quantity:             o.Quantity,
			DiscountPercentage:   o.DiscountPercentage,
			CustomerAge:          o.CustomerAge,
			CustomerSegment:      o.CustomerSegment,
			PaymentMethod:        o.PaymentMethod,
			ShippingMethod:       o.ShippingMethod,
			CustomerSatisfaction: o.CustomerSatisfaction,
			OrderDate:            o.OrderDate.Format(DateLayout),
			TotalAmount:          o.TotalAmount,
			IsWeekend:            o.IsWeekend,
			Hour:                 o.Hour,
		}
	}
	if err := gocsv.Marshal(&rows, w); err != nil {
		return errors.Wrap(err, "marshal orders csv")
	}
	return nil
}
