package purchases

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/tidewater-labs/backoffice/pkg/pagination"
	"github.com/tidewater-labs/backoffice/pkg/rest"
)

// Filters contains the recognized purchase order list predicates.
type Filters struct {
	Status        *OrderStatus
	PaymentStatus *PaymentStatus
	SupplierID    *int64
}

func (f Filters) apply(query url.Values) {
	if f.Status != nil && *f.Status != "" {
		query.Set("status", string(*f.Status))
	}
	if f.PaymentStatus != nil && *f.PaymentStatus != "" {
		query.Set("payment_status", string(*f.PaymentStatus))
	}
	if f.SupplierID != nil && *f.SupplierID != 0 {
		query.Set("supplier_id", fmt.Sprintf("%d", *f.SupplierID))
	}
}

// Client is the purchase order resource client.
type Client struct {
	api    *rest.Client
	logger *slog.Logger
}

// NewClient creates a purchase order resource client.
func NewClient(api *rest.Client, logger *slog.Logger) *Client {
	return &Client{
		api:    api,
		logger: logger.With("client", "purchases"),
	}
}

// List fetches one page of purchase orders matching the given filters.
func (c *Client) List(ctx context.Context, page pagination.PageRequest, filters Filters) ([]Order, error) {
	query := page.Query()
	filters.apply(query)

	var orders []Order
	if err := c.api.Get(ctx, "/purchases/orders", query, &orders); err != nil {
		return nil, fmt.Errorf("list purchase orders: %w", err)
	}
	return orders, nil
}

// Find fetches one purchase order by id.
func (c *Client) Find(ctx context.Context, id int64) (*Order, error) {
	var order Order
	if err := c.api.Get(ctx, fmt.Sprintf("/purchases/orders/%d", id), nil, &order); err != nil {
		return nil, fmt.Errorf("find purchase order %d: %w", id, err)
	}
	return &order, nil
}

// Items fetches the ordered line items of a purchase order.
func (c *Client) Items(ctx context.Context, id int64) ([]Item, error) {
	var items []Item
	if err := c.api.Get(ctx, fmt.Sprintf("/purchases/orders/%d/items", id), nil, &items); err != nil {
		return nil, fmt.Errorf("list items of purchase order %d: %w", id, err)
	}
	return items, nil
}

// Create submits a new purchase order with its line items.
func (c *Client) Create(ctx context.Context, order Order) (*Order, error) {
	var created Order
	if err := c.api.Post(ctx, "/purchases/orders", order, &created); err != nil {
		return nil, fmt.Errorf("create purchase order: %w", err)
	}
	c.logger.Info("purchase order created", "id", created.ID, "number", created.OrderNumber)
	return &created, nil
}

// Update replaces a purchase order with full-replace semantics.
func (c *Client) Update(ctx context.Context, id int64, order Order) (*Order, error) {
	var updated Order
	if err := c.api.Put(ctx, fmt.Sprintf("/purchases/orders/%d", id), order, &updated); err != nil {
		return nil, fmt.Errorf("update purchase order %d: %w", id, err)
	}
	c.logger.Info("purchase order updated", "id", updated.ID)
	return &updated, nil
}

// Delete removes a purchase order.
func (c *Client) Delete(ctx context.Context, id int64) error {
	if err := c.api.Delete(ctx, fmt.Sprintf("/purchases/orders/%d", id)); err != nil {
		return fmt.Errorf("delete purchase order %d: %w", id, err)
	}
	c.logger.Info("purchase order deleted", "id", id)
	return nil
}
