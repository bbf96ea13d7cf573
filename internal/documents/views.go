package documents

import (
	"context"
	"log/slog"

	"github.com/tidewater-labs/backoffice/pkg/pagination"
	"github.com/tidewater-labs/backoffice/pkg/views"
)

// Fixed user-facing failure messages.
const (
	MsgListFailed     = "Failed to load documents. Please try again later."
	MsgFetchFailed    = "Failed to load document. Please try again later."
	MsgDeleteFailed   = "Failed to delete document. Please try again later."
	MsgDownloadFailed = "Failed to download document. Please try again later."
	MsgUploadFailed   = "Failed to upload document. Please try again later."
	MsgUpdateFailed   = "Failed to update document. Please try again later."
)

// NewList creates the document list controller.
func NewList(c *Client, filters Filters, cfg pagination.Config, logger *slog.Logger) *views.List[Document] {
	source := func(ctx context.Context, page pagination.PageRequest) ([]Document, error) {
		return c.List(ctx, page, filters)
	}
	return views.NewList(source, MsgListFailed, cfg, logger)
}

// NewDetail creates the document detail controller. The dependent
// collection is the version history, fetched after the document itself;
// when the document fetch fails the version fetch is skipped.
func NewDetail(c *Client, logger *slog.Logger) *views.Detail[Document, Version] {
	return views.NewDetail(views.DetailConfig[Document, Version]{
		Fetch:           c.Find,
		Dependents:      c.Versions,
		Remove:          c.Delete,
		LoadFailure:     MsgFetchFailed,
		DeleteFailure:   MsgDeleteFailed,
		DownloadFailure: MsgDownloadFailed,
		Logger:          logger.With("view", "document-detail"),
	})
}
