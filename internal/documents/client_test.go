package documents_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/tidewater-labs/backoffice/internal/documents"
	"github.com/tidewater-labs/backoffice/pkg/forms"
	"github.com/tidewater-labs/backoffice/pkg/pagination"
	"github.com/tidewater-labs/backoffice/pkg/rest"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func newClient(t *testing.T, handler http.Handler) *documents.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	api, err := rest.New(rest.Config{BaseURL: srv.URL + "/api/v1", HTTPClient: srv.Client()})
	if err != nil {
		t.Fatalf("rest.New: %v", err)
	}
	return documents.NewClient(api, testLogger, 1<<20)
}

func TestVersionsSortedAscending(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]documents.Version{
			{ID: 30, DocumentID: 1, VersionNumber: 3},
			{ID: 10, DocumentID: 1, VersionNumber: 1},
			{ID: 20, DocumentID: 1, VersionNumber: 2},
		})
	}))

	versions, err := c.Versions(context.Background(), 1)
	if err != nil {
		t.Fatalf("Versions: %v", err)
	}

	for i, want := range []int{1, 2, 3} {
		if versions[i].VersionNumber != want {
			t.Errorf("versions[%d] = %d, want %d", i, versions[i].VersionNumber, want)
		}
	}
}

func TestUploadValidationBeforeRequest(t *testing.T) {
	var hits atomic.Int64
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte(`{}`))
	}))

	_, err := c.Upload(context.Background(), documents.UploadRequest{Name: "Contract"})
	if err == nil {
		t.Fatal("expected validation error")
	}

	var ve *forms.Error
	if !errors.As(err, &ve) {
		t.Fatalf("error type: %v", err)
	}
	if ve.Violations["file"] != "Please select a file to upload" {
		t.Errorf("file = %q", ve.Violations["file"])
	}
	if ve.Violations["document_type"] != "Document type is required" {
		t.Errorf("document_type = %q", ve.Violations["document_type"])
	}
	if hits.Load() != 0 {
		t.Errorf("server hit %d times for invalid upload", hits.Load())
	}
}

func TestUploadSendsMultipart(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("ParseMultipartForm: %v", err)
		}
		if got := r.FormValue("name"); got != "Contract" {
			t.Errorf("name = %q", got)
		}
		if got := r.FormValue("related_entity_type"); got != "Customer" {
			t.Errorf("related_entity_type = %q", got)
		}
		if got := r.FormValue("related_entity_id"); got != "12" {
			t.Errorf("related_entity_id = %q", got)
		}
		if got := r.FormValue("tags"); got != "legal,2026" {
			t.Errorf("tags = %q", got)
		}
		if _, _, err := r.FormFile("file"); err != nil {
			t.Errorf("FormFile: %v", err)
		}
		json.NewEncoder(w).Encode(documents.Document{ID: 5, Name: "Contract"})
	}))

	created, err := c.Upload(context.Background(), documents.UploadRequest{
		Name:         "Contract",
		DocumentType: "Contract",
		Status:       documents.StatusActive,
		Related:      documents.RelatedEntity{Kind: documents.RelatedCustomer, ID: 12},
		Tags:         documents.Tags{"legal", "2026"},
		Filename:     "contract.pdf",
		Data:         []byte("pdf bytes"),
	})
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if created.ID != 5 {
		t.Errorf("id = %d", created.ID)
	}
}

func TestUploadVersionValidationBeforeRequest(t *testing.T) {
	var hits atomic.Int64
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte(`{}`))
	}))

	_, err := c.UploadVersion(context.Background(), 1, documents.VersionUploadRequest{Notes: "v2"})
	var ve *forms.Error
	if !errors.As(err, &ve) {
		t.Fatalf("error type: %v", err)
	}
	if hits.Load() != 0 {
		t.Errorf("server hit %d times", hits.Load())
	}
}

func TestUploadVersionPath(t *testing.T) {
	var path string
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		json.NewEncoder(w).Encode(documents.Version{ID: 9, DocumentID: 4, VersionNumber: 2})
	}))

	created, err := c.UploadVersion(context.Background(), 4, documents.VersionUploadRequest{
		Notes:    "second draft",
		Filename: "v2.pdf",
		Data:     []byte("pdf"),
	})
	if err != nil {
		t.Fatalf("UploadVersion: %v", err)
	}
	if path != "/api/v1/documents/4/upload-version" {
		t.Errorf("path = %s", path)
	}
	if created.VersionNumber != 2 {
		t.Errorf("version = %d", created.VersionNumber)
	}
}

func TestDetailLoadsDocumentThenVersions(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/documents/1", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(documents.Document{ID: 1, Name: "Contract", DocumentType: "Contract"})
	})
	mux.HandleFunc("GET /api/v1/documents/1/versions", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]documents.Version{
			{ID: 2, DocumentID: 1, VersionNumber: 2},
			{ID: 1, DocumentID: 1, VersionNumber: 1},
		})
	})
	c := newClient(t, mux)

	detail := documents.NewDetail(c, testLogger)
	defer detail.Close()

	if err := detail.Load(1); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if detail.Entity() == nil || detail.Entity().Name != "Contract" {
		t.Errorf("entity = %+v", detail.Entity())
	}
	versions := detail.Dependents()
	if len(versions) != 2 || versions[0].VersionNumber != 1 {
		t.Errorf("versions = %+v", versions)
	}
}

func TestListEmptyPage(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("[]"))
	}))

	cfg := pagination.Config{DefaultPageSize: 10, MaxPageSize: 100}
	list := documents.NewList(c, documents.Filters{}, cfg, testLogger)
	defer list.Close()

	if err := list.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !list.Empty() {
		t.Error("Empty = false")
	}
	if list.Total() != 0 {
		t.Errorf("total = %d, want 0", list.Total())
	}
	if list.Message() != "" {
		t.Errorf("message = %q", list.Message())
	}
}

func TestDetailLoadFailureMessage(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "boom"}`, http.StatusInternalServerError)
	}))

	detail := documents.NewDetail(c, testLogger)
	defer detail.Close()

	if err := detail.Load(1); err == nil {
		t.Fatal("expected error")
	}
	if detail.Message() != documents.MsgFetchFailed {
		t.Errorf("message = %q, want %q", detail.Message(), documents.MsgFetchFailed)
	}
}
