package customers

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tidewater-labs/backoffice/pkg/pagination"
	"github.com/tidewater-labs/backoffice/pkg/rest"
)

// Client is the customer resource client. Every method maps to exactly
// one request and returns the response payload or its error unchanged.
type Client struct {
	api    *rest.Client
	logger *slog.Logger
}

// NewClient creates a customer resource client.
func NewClient(api *rest.Client, logger *slog.Logger) *Client {
	return &Client{
		api:    api,
		logger: logger.With("client", "customers"),
	}
}

// List fetches one page of customers matching the given filters.
func (c *Client) List(ctx context.Context, page pagination.PageRequest, filters Filters) ([]Customer, error) {
	query := page.Query()
	filters.apply(query)

	var customers []Customer
	if err := c.api.Get(ctx, "/customers", query, &customers); err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	return customers, nil
}

// Find fetches one customer by id.
func (c *Client) Find(ctx context.Context, id int64) (*Customer, error) {
	var customer Customer
	if err := c.api.Get(ctx, fmt.Sprintf("/customers/%d", id), nil, &customer); err != nil {
		return nil, fmt.Errorf("find customer %d: %w", id, err)
	}
	return &customer, nil
}

// Create submits a new customer. The server assigns the id.
func (c *Client) Create(ctx context.Context, customer Customer) (*Customer, error) {
	var created Customer
	if err := c.api.Post(ctx, "/customers", customer, &created); err != nil {
		return nil, fmt.Errorf("create customer: %w", err)
	}
	c.logger.Info("customer created", "id", created.ID, "name", created.Name)
	return &created, nil
}

// Update replaces a customer record. The whole record is sent; the backend
// does not support partial updates.
func (c *Client) Update(ctx context.Context, id int64, customer Customer) (*Customer, error) {
	var updated Customer
	if err := c.api.Put(ctx, fmt.Sprintf("/customers/%d", id), customer, &updated); err != nil {
		return nil, fmt.Errorf("update customer %d: %w", id, err)
	}
	c.logger.Info("customer updated", "id", updated.ID)
	return &updated, nil
}

// Delete removes a customer. This is a hard delete at the API.
func (c *Client) Delete(ctx context.Context, id int64) error {
	if err := c.api.Delete(ctx, fmt.Sprintf("/customers/%d", id)); err != nil {
		return fmt.Errorf("delete customer %d: %w", id, err)
	}
	c.logger.Info("customer deleted", "id", id)
	return nil
}
