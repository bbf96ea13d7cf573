package forms_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/tidewater-labs/backoffice/pkg/dates"
	"github.com/tidewater-labs/backoffice/pkg/forms"
)

func testSchema() forms.Schema {
	zero := decimal.Zero
	return forms.Schema{
		"name": {
			Required:        true,
			RequiredMessage: "Name is required",
		},
		"email": {
			Kind:           forms.KindEmail,
			InvalidMessage: "Enter a valid email",
		},
		"credit_limit": {
			Kind:       forms.KindNumber,
			Min:        &zero,
			MinMessage: "Must be a positive number",
		},
		"start_date": {
			Required: true,
			Kind:     forms.KindDate,
		},
	}
}

func TestValidateField(t *testing.T) {
	schema := testSchema()
	limit := decimal.NewFromInt(-5)

	tests := []struct {
		name  string
		field string
		value any
		want  string
	}{
		{"missing required", "name", "", "Name is required"},
		{"whitespace is empty", "name", "   ", "Name is required"},
		{"present required", "name", "Acme", ""},
		{"bad email", "email", "not-an-email", "Enter a valid email"},
		{"good email", "email", "billing@acme.example", ""},
		{"optional empty email", "email", "", ""},
		{"negative number", "credit_limit", limit, "Must be a positive number"},
		{"negative number pointer", "credit_limit", &limit, "Must be a positive number"},
		{"zero passes minimum", "credit_limit", decimal.Zero, ""},
		{"unruled field ignored", "notes", "anything", ""},
		{"date from string", "start_date", "2026-03-01", ""},
		{"garbage date", "start_date", "not-a-date", "Enter a valid date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := schema.ValidateField(tt.field, tt.value); got != tt.want {
				t.Errorf("ValidateField(%s) = %q, want %q", tt.field, got, tt.want)
			}
		})
	}
}

func TestValidateAccumulates(t *testing.T) {
	schema := testSchema()
	limit := decimal.NewFromInt(-1)

	v := schema.Validate(map[string]any{
		"name":         "",
		"email":        "bogus",
		"credit_limit": limit,
		"start_date":   dates.New(2026, 3, 1),
	})

	want := forms.Violations{
		"name":         "Name is required",
		"email":        "Enter a valid email",
		"credit_limit": "Must be a positive number",
	}
	if len(v) != len(want) {
		t.Fatalf("got %d violations %v, want %d", len(v), v, len(want))
	}
	for field, msg := range want {
		if v[field] != msg {
			t.Errorf("%s = %q, want %q", field, v[field], msg)
		}
	}
}

func TestViolationsMergeKeepsExisting(t *testing.T) {
	v := forms.Violations{"file": "Please select a file to upload"}
	v.Merge(forms.Violations{
		"file": "other message",
		"name": "Name is required",
	})

	if v["file"] != "Please select a file to upload" {
		t.Errorf("merge overwrote existing entry: %q", v["file"])
	}
	if v["name"] != "Name is required" {
		t.Errorf("merge dropped new entry: %q", v["name"])
	}
}

func TestErrorListsFields(t *testing.T) {
	err := &forms.Error{Violations: forms.Violations{
		"name":  "Name is required",
		"email": "Enter a valid email",
	}}
	want := "validation failed: email, name"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
