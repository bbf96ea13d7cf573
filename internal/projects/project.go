// Package projects provides the project resource client and the
// controllers behind the project views.
package projects

import (
	"github.com/shopspring/decimal"

	"github.com/tidewater-labs/backoffice/pkg/dates"
)

// Status is the project lifecycle state.
type Status string

// Project statuses.
const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusOnHold    Status = "on-hold"
	StatusCancelled Status = "cancelled"
)

// Project is a server-owned project record. ProjectNumber is assigned by
// the server when left blank on creation and is immutable afterward; the
// edit form never resubmits a changed number.
type Project struct {
	ID            int64           `json:"id,omitempty"`
	ProjectName   string          `json:"project_name"`
	ProjectNumber string          `json:"project_number,omitempty"`
	CustomerID    int64           `json:"customer_id"`
	StartDate     dates.Date      `json:"start_date,omitzero"`
	EndDate       *dates.Date     `json:"end_date,omitempty"`
	Status        Status          `json:"status,omitempty"`
	BudgetAmount  decimal.Decimal `json:"budget_amount"`
	Description   string          `json:"description,omitempty"`
	CreatedAt     dates.Date      `json:"created_at,omitzero"`
	UpdatedAt     *dates.Date     `json:"updated_at,omitempty"`
}

// Defaults returns the draft that seeds the create form.
func Defaults() Project {
	return Project{Status: StatusActive}
}
