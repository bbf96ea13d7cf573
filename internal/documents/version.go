package documents

import "github.com/tidewater-labs/backoffice/pkg/dates"

// Version is one entry in a document's append-only content history. Every
// version belongs to exactly one document, and a document's versions are
// totally ordered by the server-assigned, strictly increasing
// version_number.
type Version struct {
	ID            int64       `json:"id,omitempty"`
	DocumentID    int64       `json:"document_id"`
	VersionNumber int         `json:"version_number,omitempty"`
	FilePath      string      `json:"file_path,omitempty"`
	UploadDate    dates.Date  `json:"upload_date,omitzero"`
	UploadedBy    *int64      `json:"uploaded_by,omitempty"`
	Notes         string      `json:"notes,omitempty"`
	CreatedAt     dates.Date  `json:"created_at,omitzero"`
	UpdatedAt     *dates.Date `json:"updated_at,omitempty"`
}
