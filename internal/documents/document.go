// Package documents provides the document and document-version resource
// client, including multipart uploads, plus the controllers behind the
// document views.
//
// A document's content history is append-only: new content always creates
// a new version record, never a mutation of an existing one. The parent
// document row is immutable with respect to file content.
package documents

import (
	"encoding/json"

	"github.com/tidewater-labs/backoffice/pkg/dates"
)

// Status is the document lifecycle state.
type Status string

// Document statuses.
const (
	StatusActive   Status = "active"
	StatusArchived Status = "archived"
)

// DefaultDocumentTypes is the configurable pick list offered by the upload
// form. The field itself is free-form; the server accepts any string.
var DefaultDocumentTypes = []string{
	"Contract", "Invoice", "Receipt", "Report", "Policy", "Manual", "Certificate", "Other",
}

// Document is a server-owned document record. JSON marshaling goes through
// documentWire so the Related union maps to the legacy type/id pair.
type Document struct {
	ID           int64
	Name         string
	FilePath     string
	DocumentType string
	UploadDate   dates.Date
	UploadedBy   *int64
	Status       Status
	Related      RelatedEntity
	Description  string
	Tags         Tags
	ExpiryDate   *dates.Date
	CreatedAt    dates.Date
	UpdatedAt    *dates.Date
}

// documentWire carries the flat related-entity pair next to the document
// fields. The tagged union stays internal to the model; the wire keeps the
// legacy (type, id) shape.
type documentWire struct {
	ID                int64         `json:"id,omitempty"`
	Name              string        `json:"name"`
	FilePath          string        `json:"file_path,omitempty"`
	DocumentType      string        `json:"document_type"`
	UploadDate        dates.Date    `json:"upload_date,omitzero"`
	UploadedBy        *int64        `json:"uploaded_by,omitempty"`
	Status            Status        `json:"status,omitempty"`
	RelatedEntityType *string       `json:"related_entity_type,omitempty"`
	RelatedEntityID   *int64        `json:"related_entity_id,omitempty"`
	Description       string        `json:"description,omitempty"`
	Tags              Tags          `json:"tags,omitempty"`
	ExpiryDate        *dates.Date   `json:"expiry_date,omitempty"`
	CreatedAt         dates.Date    `json:"created_at,omitzero"`
	UpdatedAt         *dates.Date   `json:"updated_at,omitempty"`
}

// MarshalJSON flattens the related-entity union into the wire pair.
func (d Document) MarshalJSON() ([]byte, error) {
	kind, id := d.Related.wire()
	return json.Marshal(documentWire{
		ID:                d.ID,
		Name:              d.Name,
		FilePath:          d.FilePath,
		DocumentType:      d.DocumentType,
		UploadDate:        d.UploadDate,
		UploadedBy:        d.UploadedBy,
		Status:            d.Status,
		RelatedEntityType: kind,
		RelatedEntityID:   id,
		Description:       d.Description,
		Tags:              d.Tags,
		ExpiryDate:        d.ExpiryDate,
		CreatedAt:         d.CreatedAt,
		UpdatedAt:         d.UpdatedAt,
	})
}

// UnmarshalJSON rebuilds the related-entity union from the wire pair.
func (d *Document) UnmarshalJSON(data []byte) error {
	var w documentWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	*d = Document{
		ID:           w.ID,
		Name:         w.Name,
		FilePath:     w.FilePath,
		DocumentType: w.DocumentType,
		UploadDate:   w.UploadDate,
		UploadedBy:   w.UploadedBy,
		Status:       w.Status,
		Related:      relatedFromWire(w.RelatedEntityType, w.RelatedEntityID),
		Description:  w.Description,
		Tags:         w.Tags,
		ExpiryDate:   w.ExpiryDate,
		CreatedAt:    w.CreatedAt,
		UpdatedAt:    w.UpdatedAt,
	}
	return nil
}
