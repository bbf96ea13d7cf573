// Package forms provides schema-declared field validation for form
// controllers. A Schema maps field names to rules (required, value kind,
// numeric minimum); validation produces a Violations map keyed by field.
// Validation always runs before submission and blocks it entirely, so no
// network call is ever issued for a draft that fails a recognized rule.
package forms

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tidewater-labs/backoffice/pkg/dates"
)

// Violations maps field names to human-readable validation messages.
type Violations map[string]string

// Empty reports whether no field failed validation.
func (v Violations) Empty() bool { return len(v) == 0 }

// Fields returns the violated field names in sorted order.
func (v Violations) Fields() []string {
	fields := make([]string, 0, len(v))
	for f := range v {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}

// Merge copies violations from other, keeping existing entries on conflict.
func (v Violations) Merge(other Violations) {
	for field, msg := range other {
		if _, ok := v[field]; !ok {
			v[field] = msg
		}
	}
}

// Error is the failure returned when a draft does not pass its schema.
// It is produced before any request is built.
type Error struct {
	Violations Violations
}

func (e *Error) Error() string {
	return fmt.Sprintf("validation failed: %s", strings.Join(e.Violations.Fields(), ", "))
}

// Kind identifies the expected value type of a field.
type Kind string

// Field kinds.
const (
	KindString Kind = "string"
	KindNumber Kind = "number"
	KindEmail  Kind = "email"
	KindDate   Kind = "date"
)

// Rule declares the constraints of one field. Message fields override the
// generic defaults; the original UI shows field-specific wording such as
// "Name is required" or "Must be a positive number".
type Rule struct {
	Required bool
	Kind     Kind
	Min      *decimal.Decimal

	RequiredMessage string
	InvalidMessage  string
	MinMessage      string
}

// Schema maps field names to their rules. Fields without a rule are not
// validated; unrecognized fields in a draft are ignored.
type Schema map[string]Rule

// ValidateField checks a single field value against its rule, returning an
// empty string when the value passes or the field has no rule. Used for
// field-level (blur) validation.
func (s Schema) ValidateField(field string, value any) string {
	rule, ok := s[field]
	if !ok {
		return ""
	}
	return rule.check(field, value)
}

// Validate checks every schema field against the given values and returns
// the accumulated violations. Missing values are treated as empty.
func (s Schema) Validate(values map[string]any) Violations {
	v := Violations{}
	for field, rule := range s {
		if msg := rule.check(field, values[field]); msg != "" {
			v[field] = msg
		}
	}
	return v
}

func (r Rule) check(field string, value any) string {
	if isEmpty(value) {
		if r.Required {
			return r.requiredMessage(field)
		}
		return ""
	}

	switch r.Kind {
	case KindEmail:
		if s, ok := value.(string); ok && !emailPattern.MatchString(s) {
			return r.invalidMessage("Enter a valid email")
		}
	case KindNumber:
		n, ok := asDecimal(value)
		if !ok {
			return r.invalidMessage("Must be a number")
		}
		if r.Min != nil && n.LessThan(*r.Min) {
			if r.MinMessage != "" {
				return r.MinMessage
			}
			return fmt.Sprintf("Must be at least %s", r.Min.String())
		}
	case KindDate:
		if !isDate(value) {
			return r.invalidMessage("Enter a valid date")
		}
	}
	return ""
}

func (r Rule) requiredMessage(field string) string {
	if r.RequiredMessage != "" {
		return r.RequiredMessage
	}
	return fmt.Sprintf("%s is required", field)
}

func (r Rule) invalidMessage(fallback string) string {
	if r.InvalidMessage != "" {
		return r.InvalidMessage
	}
	return fallback
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func isEmpty(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	case *string:
		return v == nil || strings.TrimSpace(*v) == ""
	case int:
		return v == 0
	case int64:
		return v == 0
	case *int64:
		return v == nil
	case decimal.Decimal:
		return false
	case *decimal.Decimal:
		return v == nil
	case dates.Date:
		return v.IsZero()
	case *dates.Date:
		return v == nil || v.IsZero()
	case time.Time:
		return v.IsZero()
	case *time.Time:
		return v == nil || v.IsZero()
	default:
		return false
	}
}

func asDecimal(value any) (decimal.Decimal, bool) {
	switch v := value.(type) {
	case decimal.Decimal:
		return v, true
	case *decimal.Decimal:
		if v == nil {
			return decimal.Decimal{}, false
		}
		return *v, true
	case int:
		return decimal.NewFromInt(int64(v)), true
	case int64:
		return decimal.NewFromInt(v), true
	case float64:
		return decimal.NewFromFloat(v), true
	case string:
		n, err := decimal.NewFromString(v)
		return n, err == nil
	default:
		return decimal.Decimal{}, false
	}
}

func isDate(value any) bool {
	switch v := value.(type) {
	case dates.Date, *dates.Date, time.Time, *time.Time:
		return true
	case string:
		_, err := dates.Parse(v)
		return err == nil
	default:
		return false
	}
}
