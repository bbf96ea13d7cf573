package documents

import (
	"fmt"
	"slices"
)

// RelatedKind identifies the kind of entity a document can be attached to.
// The set is closed; anything outside it is rejected at upload time.
type RelatedKind string

// Related entity kinds.
const (
	RelatedMember   RelatedKind = "Member"
	RelatedCustomer RelatedKind = "Customer"
	RelatedSupplier RelatedKind = "Supplier"
	RelatedAsset    RelatedKind = "Asset"
	RelatedEmployee RelatedKind = "Employee"
	RelatedProject  RelatedKind = "Project"
	RelatedOther    RelatedKind = "Other"
)

// Kinds lists every valid related entity kind.
var Kinds = []RelatedKind{
	RelatedMember,
	RelatedCustomer,
	RelatedSupplier,
	RelatedAsset,
	RelatedEmployee,
	RelatedProject,
	RelatedOther,
}

// RelatedEntity is a document's optional link to another entity: a kind
// from the closed set plus that entity's id. The zero value means no link.
// Either both parts are set or neither is; a half-set pair never reaches
// the wire.
type RelatedEntity struct {
	Kind RelatedKind
	ID   int64
}

// IsZero reports whether no link is set.
func (r RelatedEntity) IsZero() bool {
	return r.Kind == "" && r.ID == 0
}

// Validate checks the both-or-neither invariant and the closed kind set.
func (r RelatedEntity) Validate() error {
	if r.IsZero() {
		return nil
	}
	if r.Kind == "" {
		return fmt.Errorf("related entity id %d has no entity type", r.ID)
	}
	if r.ID == 0 {
		return fmt.Errorf("related entity type %s has no entity id", r.Kind)
	}
	if !slices.Contains(Kinds, r.Kind) {
		return fmt.Errorf("unknown related entity type %q", r.Kind)
	}
	return nil
}

// Label renders the link for display, e.g. "Customer #12".
func (r RelatedEntity) Label() string {
	if r.IsZero() {
		return ""
	}
	return fmt.Sprintf("%s #%d", r.Kind, r.ID)
}

// relatedFromWire rebuilds the union from the wire pair. Reads are lenient:
// a half-set or unknown pair coming back from the server is preserved as-is
// so existing records still display; the closed set is enforced only when
// this client writes.
func relatedFromWire(kind *string, id *int64) RelatedEntity {
	var r RelatedEntity
	if kind != nil {
		r.Kind = RelatedKind(*kind)
	}
	if id != nil {
		r.ID = *id
	}
	return r
}

// wire flattens the union back to the type/id pair the API expects.
func (r RelatedEntity) wire() (*string, *int64) {
	if r.IsZero() {
		return nil, nil
	}
	kind := string(r.Kind)
	id := r.ID
	return &kind, &id
}
