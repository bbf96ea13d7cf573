package views

import (
	"context"
	"log/slog"
	"sync"

	"github.com/tidewater-labs/backoffice/pkg/forms"
)

// SaveFunc submits a complete draft and returns the saved record. The
// payload is always the full record, never a diff; create-versus-update is
// the entity package's concern.
type SaveFunc[T any] func(ctx context.Context, draft T) (*T, error)

// FormConfig wires a form controller to its schema and save path.
type FormConfig[T any] struct {
	// Schema declares the per-field rules checked on blur and on submit.
	Schema forms.Schema

	// Fields extracts the validated values from a draft, keyed the way
	// the schema is keyed.
	Fields func(draft T) map[string]any

	// Check optionally adds cross-field or non-schema violations, such as
	// a required file payload.
	Check func(draft T) forms.Violations

	// Save submits the draft.
	Save SaveFunc[T]

	// Failure is the fixed user-facing message stored when Save fails.
	Failure string

	Logger *slog.Logger
}

// Form drives a create/edit form: it holds the draft record, validates it
// against the schema, and submits the full payload. A nil return from
// Submit is the completion signal the caller awaits before navigating
// away; there is no timed delay.
type Form[T any] struct {
	mu   sync.Mutex
	life lifetime
	cfg  FormConfig[T]

	draft      T
	violations forms.Violations
	message    string
	saved      *T
}

// NewForm creates a form controller seeded with the zero draft. Callers
// seed defaults (create mode) or a fetched record (edit mode) via Seed.
func NewForm[T any](cfg FormConfig[T]) *Form[T] {
	return &Form[T]{
		life: newLifetime(),
		cfg:  cfg,
	}
}

// Seed replaces the draft, clearing any prior violations and messages.
func (f *Form[T]) Seed(draft T) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.draft = draft
	f.violations = nil
	f.message = ""
	f.saved = nil
}

// Edit applies a mutation to the draft in place.
func (f *Form[T]) Edit(mutate func(draft *T)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	mutate(&f.draft)
}

// Draft returns a copy of the current draft.
func (f *Form[T]) Draft() T {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft
}

// ValidateField runs the single-field (blur) validation and returns the
// violation message, empty when the field passes.
func (f *Form[T]) ValidateField(field string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	values := f.cfg.Fields(f.draft)
	return f.cfg.Schema.ValidateField(field, values[field])
}

// Submit validates the whole draft and, when it passes, sends the full
// payload. A validation failure returns *forms.Error before any request
// is built. A save failure stores the fixed failure message and keeps the
// draft, including its edited values, intact. A nil return means the
// record was saved; Saved exposes the server's response.
func (f *Form[T]) Submit() error {
	f.mu.Lock()
	draft := f.draft
	ctx := f.life.ctx

	violations := f.cfg.Schema.Validate(f.cfg.Fields(draft))
	if f.cfg.Check != nil {
		violations.Merge(f.cfg.Check(draft))
	}
	if !violations.Empty() {
		f.violations = violations
		f.mu.Unlock()
		return &forms.Error{Violations: violations}
	}
	f.violations = nil
	f.mu.Unlock()

	saved, err := f.cfg.Save(ctx, draft)

	f.mu.Lock()
	defer f.mu.Unlock()

	if ctx.Err() != nil {
		return nil
	}

	if err != nil {
		f.cfg.Logger.Error("form save failed", "error", err)
		f.message = f.cfg.Failure
		return err
	}

	f.saved = saved
	f.message = ""
	return nil
}

// Violations returns the violations of the last failed validation.
func (f *Form[T]) Violations() forms.Violations {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.violations
}

// Message returns the fixed failure message of the last failed save.
func (f *Form[T]) Message() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.message
}

// Saved returns the server's saved record after a successful submit.
func (f *Form[T]) Saved() *T {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.saved
}

// Close cancels the view lifetime.
func (f *Form[T]) Close() {
	f.life.close()
}
