package documents

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"

	"github.com/tidewater-labs/backoffice/pkg/forms"
	"github.com/tidewater-labs/backoffice/pkg/pagination"
	"github.com/tidewater-labs/backoffice/pkg/rest"
)

// Client is the document resource client. It covers document CRUD, the
// version history, and the multipart upload paths.
type Client struct {
	api         *rest.Client
	logger      *slog.Logger
	maxFileSize int64
}

// NewClient creates a document resource client. maxFileSize bounds upload
// payloads client-side; zero disables the bound.
func NewClient(api *rest.Client, logger *slog.Logger, maxFileSize int64) *Client {
	return &Client{
		api:         api,
		logger:      logger.With("client", "documents"),
		maxFileSize: maxFileSize,
	}
}

// List fetches one page of documents matching the given filters.
func (c *Client) List(ctx context.Context, page pagination.PageRequest, filters Filters) ([]Document, error) {
	query := page.Query()
	filters.apply(query)

	var docs []Document
	if err := c.api.Get(ctx, "/documents", query, &docs); err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	return docs, nil
}

// Find fetches one document by id.
func (c *Client) Find(ctx context.Context, id int64) (*Document, error) {
	var doc Document
	if err := c.api.Get(ctx, fmt.Sprintf("/documents/%d", id), nil, &doc); err != nil {
		return nil, fmt.Errorf("find document %d: %w", id, err)
	}
	return &doc, nil
}

// Create submits a new document record without file content.
func (c *Client) Create(ctx context.Context, doc Document) (*Document, error) {
	var created Document
	if err := c.api.Post(ctx, "/documents", doc, &created); err != nil {
		return nil, fmt.Errorf("create document: %w", err)
	}
	c.logger.Info("document created", "id", created.ID, "name", created.Name)
	return &created, nil
}

// Upload validates the request client-side and, when it passes, sends the
// file and its metadata in one multipart request. A validation failure
// returns *forms.Error before any request is issued.
func (c *Client) Upload(ctx context.Context, req UploadRequest) (*Document, error) {
	if v := req.Validate(c.maxFileSize); !v.Empty() {
		return nil, &forms.Error{Violations: v}
	}

	var created Document
	if err := c.api.PostMultipart(ctx, "/documents/upload", req.form(), &created); err != nil {
		return nil, fmt.Errorf("upload document: %w", err)
	}
	c.logger.Info("document uploaded", "id", created.ID, "name", created.Name, "size", len(req.Data))
	return &created, nil
}

// Update replaces a document's metadata. File content is never changed
// here; new content goes through UploadVersion.
func (c *Client) Update(ctx context.Context, id int64, doc Document) (*Document, error) {
	var updated Document
	if err := c.api.Put(ctx, fmt.Sprintf("/documents/%d", id), doc, &updated); err != nil {
		return nil, fmt.Errorf("update document %d: %w", id, err)
	}
	c.logger.Info("document updated", "id", updated.ID)
	return &updated, nil
}

// Delete removes a document.
func (c *Client) Delete(ctx context.Context, id int64) error {
	if err := c.api.Delete(ctx, fmt.Sprintf("/documents/%d", id)); err != nil {
		return fmt.Errorf("delete document %d: %w", id, err)
	}
	c.logger.Info("document deleted", "id", id)
	return nil
}

// Versions fetches a document's version history, ordered by ascending
// version number regardless of the order the server returned.
func (c *Client) Versions(ctx context.Context, documentID int64) ([]Version, error) {
	var versions []Version
	if err := c.api.Get(ctx, fmt.Sprintf("/documents/%d/versions", documentID), nil, &versions); err != nil {
		return nil, fmt.Errorf("list versions of document %d: %w", documentID, err)
	}

	sort.Slice(versions, func(i, j int) bool {
		return versions[i].VersionNumber < versions[j].VersionNumber
	})
	return versions, nil
}

// FindVersion fetches one version by its own id.
func (c *Client) FindVersion(ctx context.Context, versionID int64) (*Version, error) {
	var version Version
	if err := c.api.Get(ctx, fmt.Sprintf("/documents/versions/%d", versionID), nil, &version); err != nil {
		return nil, fmt.Errorf("find version %d: %w", versionID, err)
	}
	return &version, nil
}

// CreateVersion appends a version record to a document's history. The
// server assigns the version number.
func (c *Client) CreateVersion(ctx context.Context, documentID int64, version Version) (*Version, error) {
	version.DocumentID = documentID

	var created Version
	if err := c.api.Post(ctx, fmt.Sprintf("/documents/%d/versions", documentID), version, &created); err != nil {
		return nil, fmt.Errorf("create version for document %d: %w", documentID, err)
	}
	c.logger.Info("version created", "document_id", documentID, "version", created.VersionNumber)
	return &created, nil
}

// UploadVersion validates the request client-side and appends new file
// content as a new version. Existing versions are never touched.
func (c *Client) UploadVersion(ctx context.Context, documentID int64, req VersionUploadRequest) (*Version, error) {
	if v := req.Validate(c.maxFileSize); !v.Empty() {
		return nil, &forms.Error{Violations: v}
	}

	var created Version
	if err := c.api.PostMultipart(ctx, fmt.Sprintf("/documents/%d/upload-version", documentID), req.form(), &created); err != nil {
		return nil, fmt.Errorf("upload version for document %d: %w", documentID, err)
	}
	c.logger.Info("version uploaded", "document_id", documentID, "version", created.VersionNumber, "size", len(req.Data))
	return &created, nil
}

// UpdateVersion replaces a version's metadata (notes). Content is immutable.
func (c *Client) UpdateVersion(ctx context.Context, versionID int64, version Version) (*Version, error) {
	var updated Version
	if err := c.api.Put(ctx, fmt.Sprintf("/documents/versions/%d", versionID), version, &updated); err != nil {
		return nil, fmt.Errorf("update version %d: %w", versionID, err)
	}
	c.logger.Info("version updated", "id", updated.ID)
	return &updated, nil
}

// DeleteVersion removes a version record.
func (c *Client) DeleteVersion(ctx context.Context, versionID int64) error {
	if err := c.api.Delete(ctx, fmt.Sprintf("/documents/versions/%d", versionID)); err != nil {
		return fmt.Errorf("delete version %d: %w", versionID, err)
	}
	c.logger.Info("version deleted", "id", versionID)
	return nil
}

// Download streams a stored file to w. The byte transfer itself is the
// transport's concern; this is the thin collaborator the detail view
// delegates to.
func (c *Client) Download(ctx context.Context, documentID int64, w io.Writer) error {
	return c.api.Download(ctx, fmt.Sprintf("/documents/%d/download", documentID), w)
}

// DownloadVersion streams one version's file to w.
func (c *Client) DownloadVersion(ctx context.Context, versionID int64, w io.Writer) error {
	return c.api.Download(ctx, fmt.Sprintf("/documents/versions/%d/download", versionID), w)
}
