package pagination_test

import (
	"testing"

	"github.com/tidewater-labs/backoffice/pkg/pagination"
)

var cfg = pagination.Config{DefaultPageSize: 10, MaxPageSize: 100}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		in       pagination.PageRequest
		wantPage int
		wantSize int
	}{
		{"zero value gets defaults", pagination.PageRequest{}, 0, 10},
		{"negative page clamps to zero", pagination.PageRequest{Page: -3, Size: 25}, 0, 25},
		{"oversized page size clamps to max", pagination.PageRequest{Page: 1, Size: 500}, 1, 100},
		{"valid request unchanged", pagination.PageRequest{Page: 4, Size: 50}, 4, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.in.Normalize(cfg)
			if tt.in.Page != tt.wantPage || tt.in.Size != tt.wantSize {
				t.Errorf("got page=%d size=%d, want page=%d size=%d",
					tt.in.Page, tt.in.Size, tt.wantPage, tt.wantSize)
			}
		})
	}
}

func TestQuery(t *testing.T) {
	r := pagination.PageRequest{Page: 2, Size: 10}
	q := r.Query()

	if got := q.Get("skip"); got != "20" {
		t.Errorf("skip = %s, want 20", got)
	}
	if got := q.Get("limit"); got != "10" {
		t.Errorf("limit = %s, want 10", got)
	}
}

func TestEstimateTotal(t *testing.T) {
	tests := []struct {
		name     string
		page     pagination.PageRequest
		received int
		want     int
	}{
		{"empty first page", pagination.PageRequest{Page: 0, Size: 10}, 0, 0},
		{"partial first page", pagination.PageRequest{Page: 0, Size: 10}, 3, 3},
		{"full first page", pagination.PageRequest{Page: 0, Size: 10}, 10, 10},
		{"later page counts skipped records", pagination.PageRequest{Page: 2, Size: 10}, 5, 25},
		{"empty later page keeps skip count", pagination.PageRequest{Page: 3, Size: 10}, 0, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pagination.EstimateTotal(tt.page, tt.received); got != tt.want {
				t.Errorf("EstimateTotal = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestLastPage(t *testing.T) {
	r := pagination.PageRequest{Page: 0, Size: 10}

	if pagination.LastPage(r, 10) {
		t.Error("full page reported as last")
	}
	if !pagination.LastPage(r, 7) {
		t.Error("short page not reported as last")
	}
}

func TestConfigFinalize(t *testing.T) {
	var c pagination.Config
	if err := c.Finalize(); err != nil {
		t.Fatalf("Finalize: %v", err)
	}
	if c.DefaultPageSize != 10 || c.MaxPageSize != 100 {
		t.Errorf("defaults = %d/%d, want 10/100", c.DefaultPageSize, c.MaxPageSize)
	}
}
