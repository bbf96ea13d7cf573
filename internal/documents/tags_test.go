package documents_test

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/tidewater-labs/backoffice/internal/documents"
)

func TestParseTags(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want documents.Tags
	}{
		{"empty", "", nil},
		{"single", "legal", documents.Tags{"legal"}},
		{"plain list", "legal,2026,urgent", documents.Tags{"legal", "2026", "urgent"}},
		{"whitespace trimmed", " legal , urgent ", documents.Tags{"legal", "urgent"}},
		{"empty segments dropped", "legal,,urgent,", documents.Tags{"legal", "urgent"}},
		{"escaped comma", `a\,b,c`, documents.Tags{"a,b", "c"}},
		{"escaped backslash", `a\\b`, documents.Tags{`a\b`}},
		{"trailing backslash literal", `a\`, documents.Tags{`a\`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := documents.ParseTags(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseTags(%q) = %#v, want %#v", tt.in, got, tt.want)
			}
		})
	}
}

func TestTagsRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		tags documents.Tags
	}{
		{"plain", documents.Tags{"legal", "2026"}},
		{"embedded comma", documents.Tags{"a,b", "c"}},
		{"embedded backslash", documents.Tags{`a\b`, "c"}},
		{"both", documents.Tags{`a\,b`, "c,d"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := documents.ParseTags(tt.tags.String()); !reflect.DeepEqual(got, tt.tags) {
				t.Errorf("round trip of %#v gave %#v (wire %q)", tt.tags, got, tt.tags.String())
			}
		})
	}
}

func TestTagsJSON(t *testing.T) {
	data, err := json.Marshal(documents.Tags{"a,b", "c"})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(data) != `"a\\,b,c"` {
		t.Errorf("wire = %s", data)
	}

	var tags documents.Tags
	if err := json.Unmarshal(data, &tags); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !reflect.DeepEqual(tags, documents.Tags{"a,b", "c"}) {
		t.Errorf("decoded = %#v", tags)
	}

	if err := json.Unmarshal([]byte("null"), &tags); err != nil {
		t.Fatalf("Unmarshal null: %v", err)
	}
	if tags != nil {
		t.Errorf("null decoded to %#v", tags)
	}
}
