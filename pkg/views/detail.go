package views

import (
	"context"
	"log/slog"
	"sync"
)

// DetailConfig wires a detail controller to its resource client. Fetch
// loads the primary entity; Dependents optionally loads its dependent
// collection (e.g. a document's versions) and is skipped when the primary
// fetch fails. Remove deletes the entity; the caller navigates away on a
// nil return.
type DetailConfig[T, D any] struct {
	Fetch      func(ctx context.Context, id int64) (*T, error)
	Dependents func(ctx context.Context, id int64) ([]D, error)
	Remove     func(ctx context.Context, id int64) error

	// Fixed user-facing messages per operation.
	LoadFailure     string
	DeleteFailure   string
	DownloadFailure string

	Logger *slog.Logger
}

// Detail drives a detail view: one primary entity plus an optional
// dependent collection, fetched in sequence.
type Detail[T, D any] struct {
	mu   sync.Mutex
	life lifetime
	cfg  DetailConfig[T, D]

	gen        uint64
	phase      Phase
	entity     *T
	dependents []D
	message    string
}

// NewDetail creates a detail controller.
func NewDetail[T, D any](cfg DetailConfig[T, D]) *Detail[T, D] {
	return &Detail[T, D]{
		life:  newLifetime(),
		cfg:   cfg,
		phase: PhaseIdle,
	}
}

// Load fetches the entity and, on success, its dependents. A failure at
// either step yields the single fixed load message and leaves the view in
// the error phase.
func (d *Detail[T, D]) Load(id int64) error {
	d.mu.Lock()
	d.gen++
	gen := d.gen
	ctx := d.life.ctx
	d.phase = PhaseLoading
	d.mu.Unlock()

	entity, err := d.cfg.Fetch(ctx, id)

	var deps []D
	if err == nil && d.cfg.Dependents != nil {
		deps, err = d.cfg.Dependents(ctx, id)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if gen != d.gen || ctx.Err() != nil {
		return nil
	}

	if err != nil {
		d.cfg.Logger.Error("detail load failed", "id", id, "error", err)
		d.phase = PhaseError
		d.entity = nil
		d.dependents = nil
		d.message = d.cfg.LoadFailure
		return err
	}

	d.phase = PhaseLoaded
	d.entity = entity
	d.dependents = deps
	d.message = ""
	return nil
}

// Delete removes the entity. On a nil return the caller should navigate
// away; on failure the fixed delete message is stored and the view stays.
func (d *Detail[T, D]) Delete(id int64) error {
	d.mu.Lock()
	ctx := d.life.ctx
	d.mu.Unlock()

	if err := d.cfg.Remove(ctx, id); err != nil {
		d.mu.Lock()
		defer d.mu.Unlock()
		d.cfg.Logger.Error("detail delete failed", "id", id, "error", err)
		d.message = d.cfg.DeleteFailure
		return err
	}
	return nil
}

// Download runs the byte-transfer collaborator under the view lifetime.
// The actual transfer is external to the controller; only failure mapping
// to the fixed download message happens here.
func (d *Detail[T, D]) Download(transfer func(ctx context.Context) error) error {
	d.mu.Lock()
	ctx := d.life.ctx
	d.mu.Unlock()

	if err := transfer(ctx); err != nil {
		d.mu.Lock()
		defer d.mu.Unlock()
		d.cfg.Logger.Error("download failed", "error", err)
		d.message = d.cfg.DownloadFailure
		return err
	}
	return nil
}

// Phase returns the current display state.
func (d *Detail[T, D]) Phase() Phase {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.phase
}

// Entity returns the loaded entity, nil unless PhaseLoaded.
func (d *Detail[T, D]) Entity() *T {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.entity
}

// Dependents returns the loaded dependent collection.
func (d *Detail[T, D]) Dependents() []D {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.dependents
}

// Message returns the user-facing error message, if any.
func (d *Detail[T, D]) Message() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.message
}

// Close cancels the view lifetime.
func (d *Detail[T, D]) Close() {
	d.life.close()
}
