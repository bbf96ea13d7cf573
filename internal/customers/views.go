package customers

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/tidewater-labs/backoffice/pkg/forms"
	"github.com/tidewater-labs/backoffice/pkg/pagination"
	"github.com/tidewater-labs/backoffice/pkg/views"
)

// Fixed user-facing failure messages. Server error detail is logged, never shown.
const (
	MsgListFailed   = "Failed to fetch customers. Please try again."
	MsgFetchFailed  = "Failed to fetch customer data. Please try again."
	MsgSaveFailed   = "Failed to save customer. Please try again."
	MsgDeleteFailed = "Failed to delete customer. Please try again."
)

var zero = decimal.Zero

// Schema declares the customer form rules.
var Schema = forms.Schema{
	"name": {
		Required:        true,
		RequiredMessage: "Name is required",
	},
	"email": {
		Kind:           forms.KindEmail,
		InvalidMessage: "Enter a valid email",
	},
	"credit_limit": {
		Kind:       forms.KindNumber,
		Min:        &zero,
		MinMessage: "Must be a positive number",
	},
	"status": {
		Required:        true,
		RequiredMessage: "Status is required",
	},
}

func formValues(c Customer) map[string]any {
	return map[string]any{
		"name":           c.Name,
		"contact_person": c.ContactPerson,
		"email":          c.Email,
		"phone":          c.Phone,
		"address":        c.Address,
		"payment_terms":  c.PaymentTerms,
		"credit_limit":   c.CreditLimit,
		"tax_id":         c.TaxID,
		"status":         string(c.Status),
	}
}

// NewList creates the customer list controller.
func NewList(c *Client, filters Filters, cfg pagination.Config, logger *slog.Logger) *views.List[Customer] {
	source := func(ctx context.Context, page pagination.PageRequest) ([]Customer, error) {
		return c.List(ctx, page, filters)
	}
	return views.NewList(source, MsgListFailed, cfg, logger)
}

// NewDetail creates the customer detail controller.
func NewDetail(c *Client, logger *slog.Logger) *views.Detail[Customer, struct{}] {
	return views.NewDetail(views.DetailConfig[Customer, struct{}]{
		Fetch:         c.Find,
		Remove:        c.Delete,
		LoadFailure:   MsgFetchFailed,
		DeleteFailure: MsgDeleteFailed,
		Logger:        logger.With("view", "customer-detail"),
	})
}

// NewForm creates the customer form controller. Seed it with Defaults for
// create mode or a fetched record for edit mode; a draft with a non-zero
// ID is submitted as a full-replace update.
func NewForm(c *Client, logger *slog.Logger) *views.Form[Customer] {
	form := views.NewForm(views.FormConfig[Customer]{
		Schema: Schema,
		Fields: formValues,
		Save: func(ctx context.Context, draft Customer) (*Customer, error) {
			if draft.ID == 0 {
				return c.Create(ctx, draft)
			}
			return c.Update(ctx, draft.ID, draft)
		},
		Failure: MsgSaveFailed,
		Logger:  logger.With("view", "customer-form"),
	})
	form.Seed(Defaults())
	return form
}

// SeedEdit loads a customer into the form for edit mode, filling null
// server values with the form defaults.
func SeedEdit(form *views.Form[Customer], c Customer) {
	form.Seed(merged(c))
}
