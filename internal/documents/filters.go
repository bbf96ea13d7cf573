package documents

import (
	"net/url"
	"strconv"
)

// Filters contains the recognized document list predicates: the related
// entity pair, the document type, and the status. Unrecognized filter
// keys have nowhere to go here and are never forwarded.
type Filters struct {
	Related      RelatedEntity
	DocumentType *string
	Status       *Status
}

func (f Filters) apply(query url.Values) {
	if !f.Related.IsZero() {
		if f.Related.Kind != "" {
			query.Set("related_entity_type", string(f.Related.Kind))
		}
		if f.Related.ID != 0 {
			query.Set("related_entity_id", strconv.FormatInt(f.Related.ID, 10))
		}
	}
	if f.DocumentType != nil && *f.DocumentType != "" {
		query.Set("document_type", *f.DocumentType)
	}
	if f.Status != nil && *f.Status != "" {
		query.Set("status", string(*f.Status))
	}
}
