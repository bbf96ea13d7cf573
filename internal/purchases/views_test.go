package purchases_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tidewater-labs/backoffice/internal/purchases"
	"github.com/tidewater-labs/backoffice/pkg/dates"
	"github.com/tidewater-labs/backoffice/pkg/rest"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func newClient(t *testing.T, handler http.Handler) *purchases.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	api, err := rest.New(rest.Config{BaseURL: srv.URL + "/api/v1", HTTPClient: srv.Client()})
	if err != nil {
		t.Fatalf("rest.New: %v", err)
	}
	return purchases.NewClient(api, testLogger)
}

func validDraft() func(*purchases.Order) {
	return func(d *purchases.Order) {
		d.SupplierID = 3
		d.OrderNumber = "PO-1001"
		d.OrderDate = dates.New(2026, 3, 1)
		d.Items = []purchases.Item{
			{ItemDescription: "Widgets", Quantity: dec("10"), UnitPrice: dec("2.50"), TaxRate: dec("20")},
		}
	}
}

func TestFormSubmitComputesTotals(t *testing.T) {
	var body map[string]any
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&body)
		json.NewEncoder(w).Encode(purchases.Order{ID: 1})
	}))

	form := purchases.NewForm(c, testLogger)
	defer form.Close()
	form.Edit(validDraft())

	if err := form.Submit(); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if body["subtotal"] != "25" {
		t.Errorf("subtotal = %v", body["subtotal"])
	}
	if body["tax_amount"] != "5" {
		t.Errorf("tax_amount = %v", body["tax_amount"])
	}
	if body["total_amount"] != "30" {
		t.Errorf("total_amount = %v", body["total_amount"])
	}
}

func TestFormCreateFailureShowsFixedMessage(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": "Failed to create purchase order", "message": "Database error"}`))
	}))

	form := purchases.NewForm(c, testLogger)
	defer form.Close()
	form.Edit(validDraft())

	if err := form.Submit(); err == nil {
		t.Fatal("expected save error")
	}
	if form.Message() != purchases.MsgSaveFailed {
		t.Errorf("message = %q, want %q", form.Message(), purchases.MsgSaveFailed)
	}
}

func TestFormUpdateFailureKeepsEdits(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "boom"}`, http.StatusInternalServerError)
	}))

	form := purchases.NewForm(c, testLogger)
	defer form.Close()

	form.Seed(purchases.Order{
		ID:          9,
		SupplierID:  3,
		OrderNumber: "PO-1001",
		OrderDate:   dates.New(2026, 3, 1),
		Status:      purchases.OrderStatusDraft,
	})
	form.Edit(func(d *purchases.Order) { d.Status = purchases.OrderStatusApproved })

	if err := form.Submit(); err == nil {
		t.Fatal("expected save error")
	}

	if form.Message() != purchases.MsgSaveFailed {
		t.Errorf("message = %q", form.Message())
	}
	if got := form.Draft(); got.Status != purchases.OrderStatusApproved {
		t.Errorf("edited status lost: %s", got.Status)
	}
	if form.Saved() != nil {
		t.Error("Saved set after failed save")
	}
}

func TestFormValidationRequiresHeaderFields(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("server hit for invalid draft")
	}))

	form := purchases.NewForm(c, testLogger)
	defer form.Close()

	form.Edit(func(d *purchases.Order) {
		d.OrderDate = dates.Date{} // clear the seeded date
	})

	if err := form.Submit(); err == nil {
		t.Fatal("expected validation error")
	}

	v := form.Violations()
	for field, want := range map[string]string{
		"supplier_id":  "Supplier is required",
		"order_number": "Order number is required",
		"order_date":   "Order date is required",
	} {
		if v[field] != want {
			t.Errorf("%s = %q, want %q", field, v[field], want)
		}
	}
}

func TestDetailLoadsOrderAndItems(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/purchases/orders/1", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(purchases.Order{ID: 1, OrderNumber: "PO-1001"})
	})
	mux.HandleFunc("GET /api/v1/purchases/orders/1/items", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]purchases.Item{
			{ID: 1, ItemDescription: "Widgets"},
		})
	})
	c := newClient(t, mux)

	detail := purchases.NewDetail(c, testLogger)
	defer detail.Close()

	if err := detail.Load(1); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if detail.Entity().OrderNumber != "PO-1001" {
		t.Errorf("order = %+v", detail.Entity())
	}
	if len(detail.Dependents()) != 1 {
		t.Errorf("items = %+v", detail.Dependents())
	}
}
