// Package suppliers provides the supplier resource client and controllers.
package suppliers

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/tidewater-labs/backoffice/pkg/forms"
	"github.com/tidewater-labs/backoffice/pkg/pagination"
	"github.com/tidewater-labs/backoffice/pkg/rest"
	"github.com/tidewater-labs/backoffice/pkg/views"
)

// Status is the supplier lifecycle state.
type Status string

// Supplier statuses.
const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Supplier is a server-owned supplier record.
type Supplier struct {
	ID            int64      `json:"id,omitempty"`
	Name          string     `json:"name"`
	ContactPerson string     `json:"contact_person,omitempty"`
	Email         string     `json:"email,omitempty"`
	Phone         string     `json:"phone,omitempty"`
	Address       string     `json:"address,omitempty"`
	PaymentTerms  string     `json:"payment_terms,omitempty"`
	TaxID         string     `json:"tax_id,omitempty"`
	Status        Status     `json:"status"`
	Notes         string     `json:"notes,omitempty"`
	CreatedAt     time.Time  `json:"created_at,omitzero"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"`
}

// Fixed user-facing failure messages.
const (
	MsgListFailed   = "Failed to fetch suppliers. Please try again."
	MsgFetchFailed  = "Failed to fetch supplier data. Please try again."
	MsgSaveFailed   = "Failed to save supplier. Please try again."
	MsgDeleteFailed = "Failed to delete supplier. Please try again."
)

// Filters contains the recognized supplier list predicates.
type Filters struct {
	Status *Status
}

func (f Filters) apply(query url.Values) {
	if f.Status != nil && *f.Status != "" {
		query.Set("status", string(*f.Status))
	}
}

// Client is the supplier resource client.
type Client struct {
	api    *rest.Client
	logger *slog.Logger
}

// NewClient creates a supplier resource client.
func NewClient(api *rest.Client, logger *slog.Logger) *Client {
	return &Client{
		api:    api,
		logger: logger.With("client", "suppliers"),
	}
}

// List fetches one page of suppliers matching the given filters.
func (c *Client) List(ctx context.Context, page pagination.PageRequest, filters Filters) ([]Supplier, error) {
	query := page.Query()
	filters.apply(query)

	var suppliers []Supplier
	if err := c.api.Get(ctx, "/suppliers", query, &suppliers); err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	return suppliers, nil
}

// Find fetches one supplier by id.
func (c *Client) Find(ctx context.Context, id int64) (*Supplier, error) {
	var supplier Supplier
	if err := c.api.Get(ctx, fmt.Sprintf("/suppliers/%d", id), nil, &supplier); err != nil {
		return nil, fmt.Errorf("find supplier %d: %w", id, err)
	}
	return &supplier, nil
}

// Create submits a new supplier.
func (c *Client) Create(ctx context.Context, supplier Supplier) (*Supplier, error) {
	var created Supplier
	if err := c.api.Post(ctx, "/suppliers", supplier, &created); err != nil {
		return nil, fmt.Errorf("create supplier: %w", err)
	}
	c.logger.Info("supplier created", "id", created.ID, "name", created.Name)
	return &created, nil
}

// Update replaces a supplier record with full-replace semantics.
func (c *Client) Update(ctx context.Context, id int64, supplier Supplier) (*Supplier, error) {
	var updated Supplier
	if err := c.api.Put(ctx, fmt.Sprintf("/suppliers/%d", id), supplier, &updated); err != nil {
		return nil, fmt.Errorf("update supplier %d: %w", id, err)
	}
	c.logger.Info("supplier updated", "id", updated.ID)
	return &updated, nil
}

// Delete removes a supplier.
func (c *Client) Delete(ctx context.Context, id int64) error {
	if err := c.api.Delete(ctx, fmt.Sprintf("/suppliers/%d", id)); err != nil {
		return fmt.Errorf("delete supplier %d: %w", id, err)
	}
	c.logger.Info("supplier deleted", "id", id)
	return nil
}

// NewList creates the supplier list controller.
func NewList(c *Client, filters Filters, cfg pagination.Config, logger *slog.Logger) *views.List[Supplier] {
	source := func(ctx context.Context, page pagination.PageRequest) ([]Supplier, error) {
		return c.List(ctx, page, filters)
	}
	return views.NewList(source, MsgListFailed, cfg, logger)
}

// Defaults returns the draft that seeds the create form.
func Defaults() Supplier {
	return Supplier{Status: StatusActive}
}

// Schema declares the supplier form rules.
var Schema = forms.Schema{
	"name": {
		Required:        true,
		RequiredMessage: "Name is required",
	},
	"email": {
		Kind:           forms.KindEmail,
		InvalidMessage: "Enter a valid email",
	},
	"status": {
		Required:        true,
		RequiredMessage: "Status is required",
	},
}

func formValues(s Supplier) map[string]any {
	return map[string]any{
		"name":           s.Name,
		"contact_person": s.ContactPerson,
		"email":          s.Email,
		"phone":          s.Phone,
		"address":        s.Address,
		"payment_terms":  s.PaymentTerms,
		"tax_id":         s.TaxID,
		"status":         string(s.Status),
		"notes":          s.Notes,
	}
}

// NewDetail creates the supplier detail controller.
func NewDetail(c *Client, logger *slog.Logger) *views.Detail[Supplier, struct{}] {
	return views.NewDetail(views.DetailConfig[Supplier, struct{}]{
		Fetch:         c.Find,
		Remove:        c.Delete,
		LoadFailure:   MsgFetchFailed,
		DeleteFailure: MsgDeleteFailed,
		Logger:        logger.With("view", "supplier-detail"),
	})
}

// NewForm creates the supplier form controller. A draft with a non-zero
// ID is submitted as a full-replace update.
func NewForm(c *Client, logger *slog.Logger) *views.Form[Supplier] {
	form := views.NewForm(views.FormConfig[Supplier]{
		Schema: Schema,
		Fields: formValues,
		Save: func(ctx context.Context, draft Supplier) (*Supplier, error) {
			if draft.ID == 0 {
				return c.Create(ctx, draft)
			}
			return c.Update(ctx, draft.ID, draft)
		},
		Failure: MsgSaveFailed,
		Logger:  logger.With("view", "supplier-form"),
	})
	form.Seed(Defaults())
	return form
}
