// Package session persists questionnaire sessions behind a pluggable Store:
// an in-memory map for tests and the interactive CLI, sqlite or postgres for
// the server.
package session

import (
	"context"
	"time"

	"github.com/rotisserie/eris"

	"github.com/kevinvandever/reservoir-mvp-sub000/internal/model"
)

// ErrNotFound is returned when a session ID does not exist (or has been
// swept for idleness).
var ErrNotFound = eris.New("session: not found")

// IdleTimeout is how long a session may sit untouched before the sweep
// discards it.
const IdleTimeout = 30 * time.Minute

// Store is the persistence interface for questionnaire sessions.
type Store interface {
	// Create allocates a new empty session positioned at the given section.
	Create(ctx context.Context, start model.SectionID) (*model.Session, error)

	// Get returns the session with the given ID or ErrNotFound.
	Get(ctx context.Context, id string) (*model.Session, error)

	// Save persists the full session state.
	Save(ctx context.Context, sess *model.Session) error

	// Delete removes a session. Deleting a missing session is a no-op.
	Delete(ctx context.Context, id string) error

	// DeleteIdle removes sessions not updated within the given window and
	// returns how many were removed.
	DeleteIdle(ctx context.Context, olderThan time.Duration) (int, error)

	// Close releases underlying resources.
	Close() error
}
