package projects

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/tidewater-labs/backoffice/pkg/forms"
	"github.com/tidewater-labs/backoffice/pkg/pagination"
	"github.com/tidewater-labs/backoffice/pkg/views"
)

// Fixed user-facing failure messages.
const (
	MsgListFailed   = "Failed to fetch projects. Please try again."
	MsgFetchFailed  = "Failed to fetch project data. Please try again."
	MsgSaveFailed   = "Failed to save project. Please try again."
	MsgDeleteFailed = "Failed to delete project. Please try again."
)

var zero = decimal.Zero

// Schema declares the project form rules. End date ordering against the
// start date is not checked client-side; the backend owns that rule.
var Schema = forms.Schema{
	"project_name": {
		Required:        true,
		RequiredMessage: "Project name is required",
	},
	"customer_id": {
		Required:        true,
		RequiredMessage: "Customer is required",
	},
	"start_date": {
		Required:        true,
		Kind:            forms.KindDate,
		RequiredMessage: "Start date is required",
	},
	"status": {
		Required:        true,
		RequiredMessage: "Status is required",
	},
	"budget_amount": {
		Kind:       forms.KindNumber,
		Min:        &zero,
		MinMessage: "Must be a positive number",
	},
}

func formValues(p Project) map[string]any {
	return map[string]any{
		"project_name":   p.ProjectName,
		"project_number": p.ProjectNumber,
		"customer_id":    p.CustomerID,
		"start_date":     p.StartDate,
		"end_date":       p.EndDate,
		"status":         string(p.Status),
		"budget_amount":  p.BudgetAmount,
		"description":    p.Description,
	}
}

// NewList creates the project list controller.
func NewList(c *Client, filters Filters, cfg pagination.Config, logger *slog.Logger) *views.List[Project] {
	source := func(ctx context.Context, page pagination.PageRequest) ([]Project, error) {
		return c.List(ctx, page, filters)
	}
	return views.NewList(source, MsgListFailed, cfg, logger)
}

// NewDetail creates the project detail controller.
func NewDetail(c *Client, logger *slog.Logger) *views.Detail[Project, struct{}] {
	return views.NewDetail(views.DetailConfig[Project, struct{}]{
		Fetch:         c.Find,
		Remove:        c.Delete,
		LoadFailure:   MsgFetchFailed,
		DeleteFailure: MsgDeleteFailed,
		Logger:        logger.With("view", "project-detail"),
	})
}

// NewForm creates the project form controller. In edit mode the draft is
// seeded from the fetched record and the project number is never edited,
// so the full-replace update resubmits the server's number unchanged.
func NewForm(c *Client, logger *slog.Logger) *views.Form[Project] {
	form := views.NewForm(views.FormConfig[Project]{
		Schema: Schema,
		Fields: formValues,
		Save: func(ctx context.Context, draft Project) (*Project, error) {
			if draft.ID == 0 {
				return c.Create(ctx, draft)
			}
			return c.Update(ctx, draft.ID, draft)
		},
		Failure: MsgSaveFailed,
		Logger:  logger.With("view", "project-form"),
	})
	form.Seed(Defaults())
	return form
}
