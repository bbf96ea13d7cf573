package views

import (
	"context"
	"log/slog"
	"sync"

	"github.com/tidewater-labs/backoffice/pkg/pagination"
)

// Source fetches one page of records for a list view.
type Source[T any] func(ctx context.Context, page pagination.PageRequest) ([]T, error)

// List drives a paginated list view over {loading, loaded, error}. On every
// load the previous items are replaced: a failed load clears them rather
// than keeping stale rows visible.
//
// The total count is an estimate. The API returns no true total, so the
// controller reports skipped + received as a best-effort lower bound.
type List[T any] struct {
	mu   sync.Mutex
	life lifetime

	source  Source[T]
	failure string
	logger  *slog.Logger
	cfg     pagination.Config

	gen     uint64
	page    pagination.PageRequest
	phase   Phase
	items   []T
	total   int
	message string
}

// NewList creates a list controller. failure is the fixed user-facing
// message shown when any load fails; server error detail is logged, never
// displayed.
func NewList[T any](source Source[T], failure string, cfg pagination.Config, logger *slog.Logger) *List[T] {
	page := pagination.PageRequest{}
	page.Normalize(cfg)

	return &List[T]{
		life:    newLifetime(),
		source:  source,
		failure: failure,
		logger:  logger.With("controller", "list"),
		cfg:     cfg,
		page:    page,
		phase:   PhaseIdle,
	}
}

// Load fetches the current page. The returned error mirrors the stored
// error state; callers rendering from controller state may ignore it.
func (l *List[T]) Load() error {
	l.mu.Lock()
	l.gen++
	gen := l.gen
	page := l.page
	ctx := l.life.ctx
	l.phase = PhaseLoading
	l.mu.Unlock()

	items, err := l.source(ctx, page)

	l.mu.Lock()
	defer l.mu.Unlock()

	// A newer load or Close superseded this response; drop it.
	if gen != l.gen || ctx.Err() != nil {
		return nil
	}

	if err != nil {
		l.logger.Error("list load failed", "page", page.Page, "size", page.Size, "error", err)
		l.phase = PhaseError
		l.items = nil
		l.total = 0
		l.message = l.failure
		return err
	}

	l.phase = PhaseLoaded
	l.items = items
	l.total = pagination.EstimateTotal(page, len(items))
	l.message = ""
	return nil
}

// GoTo moves to the given zero-based page and reloads.
func (l *List[T]) GoTo(page int) error {
	l.mu.Lock()
	l.page.Page = page
	l.page.Normalize(l.cfg)
	l.mu.Unlock()
	return l.Load()
}

// Resize changes the page size, resets to the first page, and reloads.
func (l *List[T]) Resize(size int) error {
	l.mu.Lock()
	l.page.Size = size
	l.page.Page = 0
	l.page.Normalize(l.cfg)
	l.mu.Unlock()
	return l.Load()
}

// Phase returns the current display state.
func (l *List[T]) Phase() Phase {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.phase
}

// Items returns the records of the current page.
func (l *List[T]) Items() []T {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.items
}

// Empty reports whether the view loaded successfully with no records.
func (l *List[T]) Empty() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.phase == PhaseLoaded && len(l.items) == 0
}

// Total returns the estimated total record count.
func (l *List[T]) Total() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.total
}

// Page returns the current page request.
func (l *List[T]) Page() pagination.PageRequest {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.page
}

// Message returns the user-facing error message, empty unless PhaseError.
func (l *List[T]) Message() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.message
}

// Close cancels the view lifetime; in-flight loads are abandoned and their
// late responses discarded.
func (l *List[T]) Close() {
	l.life.close()
}
