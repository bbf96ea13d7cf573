package projects

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/tidewater-labs/backoffice/pkg/pagination"
	"github.com/tidewater-labs/backoffice/pkg/rest"
)

// Filters contains the recognized project list predicates.
type Filters struct {
	Status     *Status
	CustomerID *int64
}

func (f Filters) apply(query url.Values) {
	if f.Status != nil && *f.Status != "" {
		query.Set("status", string(*f.Status))
	}
	if f.CustomerID != nil && *f.CustomerID != 0 {
		query.Set("customer_id", fmt.Sprintf("%d", *f.CustomerID))
	}
}

// Client is the project resource client.
type Client struct {
	api    *rest.Client
	logger *slog.Logger
}

// NewClient creates a project resource client.
func NewClient(api *rest.Client, logger *slog.Logger) *Client {
	return &Client{
		api:    api,
		logger: logger.With("client", "projects"),
	}
}

// List fetches one page of projects matching the given filters.
func (c *Client) List(ctx context.Context, page pagination.PageRequest, filters Filters) ([]Project, error) {
	query := page.Query()
	filters.apply(query)

	var projects []Project
	if err := c.api.Get(ctx, "/projects", query, &projects); err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projects, nil
}

// Find fetches one project by id.
func (c *Client) Find(ctx context.Context, id int64) (*Project, error) {
	var project Project
	if err := c.api.Get(ctx, fmt.Sprintf("/projects/%d", id), nil, &project); err != nil {
		return nil, fmt.Errorf("find project %d: %w", id, err)
	}
	return &project, nil
}

// Create submits a new project. A blank project number is assigned by the
// server.
func (c *Client) Create(ctx context.Context, project Project) (*Project, error) {
	var created Project
	if err := c.api.Post(ctx, "/projects", project, &created); err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	c.logger.Info("project created", "id", created.ID, "number", created.ProjectNumber)
	return &created, nil
}

// Update replaces a project record with full-replace semantics.
func (c *Client) Update(ctx context.Context, id int64, project Project) (*Project, error) {
	var updated Project
	if err := c.api.Put(ctx, fmt.Sprintf("/projects/%d", id), project, &updated); err != nil {
		return nil, fmt.Errorf("update project %d: %w", id, err)
	}
	c.logger.Info("project updated", "id", updated.ID)
	return &updated, nil
}

// Delete removes a project.
func (c *Client) Delete(ctx context.Context, id int64) error {
	if err := c.api.Delete(ctx, fmt.Sprintf("/projects/%d", id)); err != nil {
		return fmt.Errorf("delete project %d: %w", id, err)
	}
	c.logger.Info("project deleted", "id", id)
	return nil
}
