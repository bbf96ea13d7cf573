package documents_test

import (
	"testing"

	"github.com/tidewater-labs/backoffice/internal/documents"
)

func TestUploadRequestValidate(t *testing.T) {
	valid := documents.UploadRequest{
		Name:         "Contract",
		DocumentType: "Contract",
		Filename:     "contract.pdf",
		Data:         []byte("pdf"),
	}

	tests := []struct {
		name    string
		mutate  func(*documents.UploadRequest)
		field   string
		message string
	}{
		{
			name:    "missing file",
			mutate:  func(r *documents.UploadRequest) { r.Data = nil },
			field:   "file",
			message: "Please select a file to upload",
		},
		{
			name:    "missing name",
			mutate:  func(r *documents.UploadRequest) { r.Name = "" },
			field:   "name",
			message: "Document name is required",
		},
		{
			name:    "missing type",
			mutate:  func(r *documents.UploadRequest) { r.DocumentType = "" },
			field:   "document_type",
			message: "Document type is required",
		},
		{
			name: "kind without entity id",
			mutate: func(r *documents.UploadRequest) {
				r.Related = documents.RelatedEntity{Kind: documents.RelatedCustomer}
			},
			field:   "related_entity_id",
			message: "Entity ID is required when entity type is selected",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)

			v := req.Validate(0)
			if v[tt.field] != tt.message {
				t.Errorf("%s = %q, want %q", tt.field, v[tt.field], tt.message)
			}
		})
	}

	t.Run("valid request passes", func(t *testing.T) {
		if v := valid.Validate(0); !v.Empty() {
			t.Errorf("violations = %v", v)
		}
	})

	t.Run("oversized file rejected", func(t *testing.T) {
		req := valid
		req.Data = make([]byte, 100)
		if v := req.Validate(50); v["file"] == "" {
			t.Error("oversized payload passed validation")
		}
	})
}

func TestVersionUploadRequestValidate(t *testing.T) {
	v := documents.VersionUploadRequest{}.Validate(0)
	if v["file"] != "Please select a file to upload" {
		t.Errorf("file = %q", v["file"])
	}

	ok := documents.VersionUploadRequest{Filename: "v2.pdf", Data: []byte("pdf")}
	if v := ok.Validate(0); !v.Empty() {
		t.Errorf("violations = %v", v)
	}
}
