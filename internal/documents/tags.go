package documents

import (
	"encoding/json"
	"strings"
)

// Tags is an ordered sequence of document tags. The wire format remains a
// single comma-joined string, but embedded commas are backslash-escaped in
// both directions so a tag like "a,b" survives the round trip.
type Tags []string

// ParseTags splits the wire string into tags, honoring escaped commas and
// backslashes. Empty segments are dropped.
func ParseTags(s string) Tags {
	if s == "" {
		return nil
	}

	var tags Tags
	var current strings.Builder
	escaped := false

	for _, r := range s {
		switch {
		case escaped:
			current.WriteRune(r)
			escaped = false
		case r == '\\':
			escaped = true
		case r == ',':
			if tag := strings.TrimSpace(current.String()); tag != "" {
				tags = append(tags, tag)
			}
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}
	if escaped {
		current.WriteRune('\\')
	}
	if tag := strings.TrimSpace(current.String()); tag != "" {
		tags = append(tags, tag)
	}
	return tags
}

// String joins the tags into the wire format, escaping backslashes and
// embedded commas.
func (t Tags) String() string {
	if len(t) == 0 {
		return ""
	}

	escaped := make([]string, len(t))
	for i, tag := range t {
		tag = strings.ReplaceAll(tag, `\`, `\\`)
		tag = strings.ReplaceAll(tag, ",", `\,`)
		escaped[i] = tag
	}
	return strings.Join(escaped, ",")
}

// MarshalJSON encodes the tags as the comma-joined wire string.
func (t Tags) MarshalJSON() ([]byte, error) {
	if len(t) == 0 {
		return []byte("null"), nil
	}
	return json.Marshal(t.String())
}

// UnmarshalJSON accepts the comma-joined wire string or null.
func (t *Tags) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*t = nil
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*t = ParseTags(s)
	return nil
}
