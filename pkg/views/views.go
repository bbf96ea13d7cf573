// Package views provides the generic view controllers behind every list,
// detail, and form screen. Controllers hold transient UI state (phase,
// current records, error message), call a resource client, and expose the
// derived state for rendering; rendering itself lives with the caller.
//
// Every controller owns a lifetime context created at construction and
// cancelled by Close. Outstanding calls are issued under that context, and
// responses that lose a race with a newer load or a closed view are
// discarded rather than applied to stale state.
package views

import "context"

// Phase is the display state of a controller.
type Phase string

// Controller phases.
const (
	PhaseIdle    Phase = "idle"
	PhaseLoading Phase = "loading"
	PhaseLoaded  Phase = "loaded"
	PhaseError   Phase = "error"
)

type lifetime struct {
	ctx    context.Context
	cancel context.CancelFunc
}

func newLifetime() lifetime {
	ctx, cancel := context.WithCancel(context.Background())
	return lifetime{ctx: ctx, cancel: cancel}
}

func (l lifetime) close() {
	l.cancel()
}
