// Package customers provides the customer resource client and the
// controllers behind the customer list, detail, and form views.
package customers

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status is the customer lifecycle state.
type Status string

// Customer statuses.
const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// DefaultPaymentTerms seeds new customer drafts.
const DefaultPaymentTerms = "Net 30"

// Customer is a server-owned customer record. The client never holds
// authoritative state; any local copy lives only as long as its view.
type Customer struct {
	ID            int64            `json:"id,omitempty"`
	Name          string           `json:"name"`
	ContactPerson string           `json:"contact_person,omitempty"`
	Email         string           `json:"email,omitempty"`
	Phone         string           `json:"phone,omitempty"`
	Address       string           `json:"address,omitempty"`
	PaymentTerms  string           `json:"payment_terms,omitempty"`
	CreditLimit   *decimal.Decimal `json:"credit_limit,omitempty"`
	TaxID         string           `json:"tax_id,omitempty"`
	Status        Status           `json:"status"`
	CreatedAt     time.Time        `json:"created_at,omitzero"`
	UpdatedAt     *time.Time       `json:"updated_at,omitempty"`
}

// Defaults returns the draft that seeds the create form.
func Defaults() Customer {
	return Customer{
		PaymentTerms: DefaultPaymentTerms,
		Status:       StatusActive,
	}
}

// merged fills null server values with form defaults when seeding the edit
// form, mirroring the fallback the original form applies field by field.
func merged(c Customer) Customer {
	if c.PaymentTerms == "" {
		c.PaymentTerms = DefaultPaymentTerms
	}
	if c.Status == "" {
		c.Status = StatusActive
	}
	return c
}
