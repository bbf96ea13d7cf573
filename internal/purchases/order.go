// Package purchases provides the purchase order resource client and the
// controllers behind the purchase order views.
package purchases

import (
	"github.com/shopspring/decimal"

	"github.com/tidewater-labs/backoffice/pkg/dates"
)

// OrderStatus is the purchase order lifecycle state.
type OrderStatus string

// Purchase order statuses.
const (
	OrderStatusDraft     OrderStatus = "draft"
	OrderStatusApproved  OrderStatus = "approved"
	OrderStatusReceived  OrderStatus = "received"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// PaymentStatus tracks how much of an order has been paid.
type PaymentStatus string

// Payment statuses.
const (
	PaymentUnpaid  PaymentStatus = "unpaid"
	PaymentPartial PaymentStatus = "partial"
	PaymentPaid    PaymentStatus = "paid"
)

// Item is one purchase order line. Subtotal derives from quantity and unit
// price; the server recomputes it on save and its figures are authoritative
// on read.
type Item struct {
	ID              int64           `json:"id,omitempty"`
	PurchaseOrderID int64           `json:"purchase_order_id,omitempty"`
	ItemDescription string          `json:"item_description"`
	Quantity        decimal.Decimal `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	TaxRate         decimal.Decimal `json:"tax_rate"`
	Subtotal        decimal.Decimal `json:"subtotal"`
}

// ComputeSubtotal returns quantity × unit price.
func (i Item) ComputeSubtotal() decimal.Decimal {
	return i.Quantity.Mul(i.UnitPrice)
}

// Order is a server-owned purchase order with its ordered line items.
type Order struct {
	ID            int64           `json:"id,omitempty"`
	SupplierID    int64           `json:"supplier_id"`
	OrderDate     dates.Date      `json:"order_date,omitzero"`
	OrderNumber   string          `json:"order_number"`
	Status        OrderStatus     `json:"status,omitempty"`
	PaymentStatus PaymentStatus   `json:"payment_status,omitempty"`
	DueDate       *dates.Date     `json:"due_date,omitempty"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	TaxAmount     decimal.Decimal `json:"tax_amount"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	Items         []Item          `json:"items,omitempty"`
	CreatedAt     dates.Date      `json:"created_at,omitzero"`
	UpdatedAt     *dates.Date     `json:"updated_at,omitempty"`
}

// Defaults returns the draft that seeds the create form.
func Defaults() Order {
	return Order{
		OrderDate:     dates.Today(),
		Status:        OrderStatusDraft,
		PaymentStatus: PaymentUnpaid,
	}
}

// ComputeTotals fills the derived figures the way the submitting client
// does before sending a draft: each item subtotal is quantity × unit
// price, the order subtotal is their sum, tax is each subtotal taxed at
// its item rate, and the total is subtotal + tax. The invariant
// total_amount = subtotal + tax_amount always holds for the computed
// values; the server's own derivation remains authoritative on read.
func (o *Order) ComputeTotals() {
	subtotal := decimal.Zero
	tax := decimal.Zero
	hundred := decimal.NewFromInt(100)

	for i := range o.Items {
		o.Items[i].Subtotal = o.Items[i].ComputeSubtotal()
		subtotal = subtotal.Add(o.Items[i].Subtotal)
		tax = tax.Add(o.Items[i].Subtotal.Mul(o.Items[i].TaxRate).Div(hundred))
	}

	o.Subtotal = subtotal
	o.TaxAmount = tax
	o.TotalAmount = subtotal.Add(tax)
}
