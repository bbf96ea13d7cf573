package purchases

import (
	"context"
	"log/slog"

	"github.com/tidewater-labs/backoffice/pkg/forms"
	"github.com/tidewater-labs/backoffice/pkg/pagination"
	"github.com/tidewater-labs/backoffice/pkg/views"
)

// Fixed user-facing failure messages.
const (
	MsgListFailed   = "Failed to fetch purchase orders. Please try again."
	MsgFetchFailed  = "Failed to fetch purchase order data. Please try again."
	MsgSaveFailed   = "Failed to save purchase order. Please try again."
	MsgDeleteFailed = "Failed to delete purchase order. Please try again."
)

// Schema declares the purchase order form rules.
var Schema = forms.Schema{
	"supplier_id": {
		Required:        true,
		RequiredMessage: "Supplier is required",
	},
	"order_number": {
		Required:        true,
		RequiredMessage: "Order number is required",
	},
	"order_date": {
		Required:        true,
		Kind:            forms.KindDate,
		RequiredMessage: "Order date is required",
	},
	"status": {
		Required:        true,
		RequiredMessage: "Status is required",
	},
}

func formValues(o Order) map[string]any {
	return map[string]any{
		"supplier_id":  o.SupplierID,
		"order_number": o.OrderNumber,
		"order_date":   o.OrderDate,
		"status":       string(o.Status),
	}
}

// NewList creates the purchase order list controller.
func NewList(c *Client, filters Filters, cfg pagination.Config, logger *slog.Logger) *views.List[Order] {
	source := func(ctx context.Context, page pagination.PageRequest) ([]Order, error) {
		return c.List(ctx, page, filters)
	}
	return views.NewList(source, MsgListFailed, cfg, logger)
}

// NewDetail creates the purchase order detail controller with the line
// items as the dependent collection.
func NewDetail(c *Client, logger *slog.Logger) *views.Detail[Order, Item] {
	return views.NewDetail(views.DetailConfig[Order, Item]{
		Fetch:         c.Find,
		Dependents:    c.Items,
		Remove:        c.Delete,
		LoadFailure:   MsgFetchFailed,
		DeleteFailure: MsgDeleteFailed,
		Logger:        logger.With("view", "purchase-order-detail"),
	})
}

// NewForm creates the purchase order form controller. Totals are filled
// from the line items before submission; on failure the fixed save
// message is stored and the draft, including any edited values, stays on
// screen.
func NewForm(c *Client, logger *slog.Logger) *views.Form[Order] {
	form := views.NewForm(views.FormConfig[Order]{
		Schema: Schema,
		Fields: formValues,
		Save: func(ctx context.Context, draft Order) (*Order, error) {
			draft.ComputeTotals()
			if draft.ID == 0 {
				return c.Create(ctx, draft)
			}
			return c.Update(ctx, draft.ID, draft)
		},
		Failure: MsgSaveFailed,
		Logger:  logger.With("view", "purchase-order-form"),
	})
	form.Seed(Defaults())
	return form
}
