package rest_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tidewater-labs/backoffice/pkg/rest"
)

func newClient(t *testing.T, srv *httptest.Server, token string) *rest.Client {
	t.Helper()
	c, err := rest.New(rest.Config{
		BaseURL:    srv.URL + "/api/v1",
		Session:    rest.NewSession(token),
		HTTPClient: srv.Client(),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func TestRequestHeaders(t *testing.T) {
	var got *http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Clone(context.Background())
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := newClient(t, srv, "secret-token")

	var out map[string]any
	if err := c.Get(context.Background(), "/customers", nil, &out); err != nil {
		t.Fatalf("Get: %v", err)
	}

	if got.URL.Path != "/api/v1/customers" {
		t.Errorf("path = %s", got.URL.Path)
	}
	if h := got.Header.Get("Authorization"); h != "Bearer secret-token" {
		t.Errorf("Authorization = %q", h)
	}
	if h := got.Header.Get("Accept"); h != "application/json" {
		t.Errorf("Accept = %q", h)
	}
	if got.Header.Get("X-Request-ID") == "" {
		t.Error("missing X-Request-ID")
	}
}

func TestAnonymousSessionSendsNoAuthorization(t *testing.T) {
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := newClient(t, srv, "")

	var out map[string]any
	if err := c.Get(context.Background(), "/customers", nil, &out); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if auth != "" {
		t.Errorf("Authorization = %q, want empty", auth)
	}
}

func TestErrorKinds(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   rest.Kind
	}{
		{"bad request", http.StatusBadRequest, rest.KindValidation},
		{"unprocessable", http.StatusUnprocessableEntity, rest.KindValidation},
		{"not found", http.StatusNotFound, rest.KindNotFound},
		{"conflict", http.StatusConflict, rest.KindClient},
		{"server error", http.StatusInternalServerError, rest.KindServer},
		{"bad gateway", http.StatusBadGateway, rest.KindServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(`{"error": "Failed", "message": "detail"}`))
			}))
			defer srv.Close()

			c := newClient(t, srv, "")
			err := c.Get(context.Background(), "/x", nil, &map[string]any{})
			if err == nil {
				t.Fatal("expected error")
			}
			if got := rest.KindOf(err); got != tt.want {
				t.Errorf("kind = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestErrorBodyDecoded(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": "Failed to create purchase order", "message": "Database error"}`))
	}))
	defer srv.Close()

	c := newClient(t, srv, "")
	err := c.Post(context.Background(), "/purchases/orders", map[string]any{}, &map[string]any{})
	if err == nil {
		t.Fatal("expected error")
	}

	var re *rest.Error
	if !errors.As(err, &re) {
		t.Fatalf("not a rest error: %v", err)
	}
	if re.Code != "Failed to create purchase order" {
		t.Errorf("Code = %q", re.Code)
	}
	if re.Message != "Database error" {
		t.Errorf("Message = %q", re.Message)
	}
	if re.Status != http.StatusInternalServerError {
		t.Errorf("Status = %d", re.Status)
	}
}

func TestTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c, err := rest.New(rest.Config{BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	err = c.Get(context.Background(), "/x", nil, &map[string]any{})
	if got := rest.KindOf(err); got != rest.KindTransport {
		t.Errorf("kind = %s, want %s", got, rest.KindTransport)
	}
}

func TestDecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	c := newClient(t, srv, "")
	err := c.Get(context.Background(), "/x", nil, &map[string]any{})
	if got := rest.KindOf(err); got != rest.KindDecode {
		t.Errorf("kind = %s, want %s", got, rest.KindDecode)
	}
}

func TestIsNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	c := newClient(t, srv, "")
	err := c.Get(context.Background(), "/customers/999", nil, &map[string]any{})
	if !rest.IsNotFound(err) {
		t.Errorf("IsNotFound = false for %v", err)
	}
}

func TestPostMultipart(t *testing.T) {
	var (
		fileData []byte
		fields   map[string]string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("ParseMultipartForm: %v", err)
		}
		fields = map[string]string{}
		for k := range r.MultipartForm.Value {
			fields[k] = r.FormValue(k)
		}
		f, _, err := r.FormFile("file")
		if err != nil {
			t.Errorf("FormFile: %v", err)
		} else {
			buf := new(bytes.Buffer)
			buf.ReadFrom(f)
			fileData = buf.Bytes()
		}
		w.Write([]byte(`{"id": 1}`))
	}))
	defer srv.Close()

	form := rest.NewMultipart().
		SetFile("file", "contract.pdf", []byte("pdf bytes")).
		SetField("name", "Contract").
		SetField("description", "") // skipped

	c := newClient(t, srv, "")
	var out map[string]any
	if err := c.PostMultipart(context.Background(), "/documents/upload", form, &out); err != nil {
		t.Fatalf("PostMultipart: %v", err)
	}

	if string(fileData) != "pdf bytes" {
		t.Errorf("file data = %q", fileData)
	}
	if fields["name"] != "Contract" {
		t.Errorf("name field = %q", fields["name"])
	}
	if _, ok := fields["description"]; ok {
		t.Error("empty field was sent")
	}
}

func TestDownload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("file content"))
	}))
	defer srv.Close()

	c := newClient(t, srv, "")
	var buf bytes.Buffer
	if err := c.Download(context.Background(), "/documents/1/download", &buf); err != nil {
		t.Fatalf("Download: %v", err)
	}
	if buf.String() != "file content" {
		t.Errorf("body = %q", buf.String())
	}
}
