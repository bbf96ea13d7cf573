package documents

import (
	"fmt"
	"strconv"

	"github.com/tidewater-labs/backoffice/pkg/forms"
	"github.com/tidewater-labs/backoffice/pkg/rest"
)

// Upload validation messages.
const (
	MsgFileRequired     = "Please select a file to upload"
	MsgNameRequired     = "Document name is required"
	MsgTypeRequired     = "Document type is required"
	MsgEntityIDRequired = "Entity ID is required when entity type is selected"
)

// UploadRequest carries the file payload and metadata of a new document.
// The file and metadata are encoded together in a single multipart request.
type UploadRequest struct {
	Name         string
	DocumentType string
	Status       Status
	Related      RelatedEntity
	ExpiryDate   string
	Tags         Tags
	Description  string

	Filename string
	Data     []byte
}

// Validate runs the client-side upload checks. Violations block the upload
// before any request is built.
func (u UploadRequest) Validate(maxFileSize int64) forms.Violations {
	v := forms.Violations{}

	if len(u.Data) == 0 {
		v["file"] = MsgFileRequired
	} else if maxFileSize > 0 && int64(len(u.Data)) > maxFileSize {
		v["file"] = fmt.Sprintf("File exceeds the maximum upload size of %d bytes", maxFileSize)
	}

	if u.Name == "" {
		v["name"] = MsgNameRequired
	}
	if u.DocumentType == "" {
		v["document_type"] = MsgTypeRequired
	}

	if err := u.Related.Validate(); err != nil {
		if u.Related.Kind != "" && u.Related.ID == 0 {
			v["related_entity_id"] = MsgEntityIDRequired
		} else {
			v["related_entity_type"] = "Entity type is required when entity ID is selected"
		}
	}

	return v
}

func (u UploadRequest) form() *rest.Multipart {
	form := rest.NewMultipart().
		SetFile("file", u.Filename, u.Data).
		SetField("name", u.Name).
		SetField("document_type", u.DocumentType).
		SetField("status", string(u.Status)).
		SetField("expiry_date", u.ExpiryDate).
		SetField("tags", u.Tags.String()).
		SetField("description", u.Description)

	if kind, id := u.Related.wire(); kind != nil {
		form.SetField("related_entity_type", *kind)
		form.SetField("related_entity_id", strconv.FormatInt(*id, 10))
	}
	return form
}

// VersionUploadRequest carries the file payload and metadata of a new
// version of an existing document.
type VersionUploadRequest struct {
	Notes string

	Filename string
	Data     []byte
}

// Validate runs the client-side version upload checks.
func (u VersionUploadRequest) Validate(maxFileSize int64) forms.Violations {
	v := forms.Violations{}

	if len(u.Data) == 0 {
		v["file"] = MsgFileRequired
	} else if maxFileSize > 0 && int64(len(u.Data)) > maxFileSize {
		v["file"] = fmt.Sprintf("File exceeds the maximum upload size of %d bytes", maxFileSize)
	}

	return v
}

func (u VersionUploadRequest) form() *rest.Multipart {
	return rest.NewMultipart().
		SetFile("file", u.Filename, u.Data).
		SetField("notes", u.Notes)
}
