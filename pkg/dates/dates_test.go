package dates_test

import (
	"encoding/json"
	"testing"

	"github.com/tidewater-labs/backoffice/pkg/dates"
)

func TestParse(t *testing.T) {
	d, err := dates.Parse("2026-03-15")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if d.String() != "2026-03-15" {
		t.Errorf("String = %q", d.String())
	}

	if _, err := dates.Parse("15/03/2026"); err == nil {
		t.Error("expected error for non-wire layout")
	}
}

func TestMarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		d    dates.Date
		want string
	}{
		{"set date", dates.New(2026, 3, 15), `"2026-03-15"`},
		{"zero date is null", dates.Date{}, "null"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.d)
			if err != nil {
				t.Fatalf("Marshal: %v", err)
			}
			if string(data) != tt.want {
				t.Errorf("got %s, want %s", data, tt.want)
			}
		})
	}
}

func TestUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"wire date", `"2026-03-15"`, "2026-03-15"},
		{"timestamp truncated", `"2026-03-15T14:30:00Z"`, "2026-03-15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d dates.Date
			if err := json.Unmarshal([]byte(tt.in), &d); err != nil {
				t.Fatalf("Unmarshal: %v", err)
			}
			if d.String() != tt.want {
				t.Errorf("got %s, want %s", d, tt.want)
			}
		})
	}

	t.Run("null is zero", func(t *testing.T) {
		var d dates.Date
		if err := json.Unmarshal([]byte("null"), &d); err != nil {
			t.Fatalf("Unmarshal: %v", err)
		}
		if !d.IsZero() {
			t.Errorf("got %v, want zero", d)
		}
	})
}
