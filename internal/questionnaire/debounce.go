package questionnaire

import (
	"sync"
	"time"
)

// duplicateWindow is the span inside which an identical payload for the
// same session is treated as a double submission.
const duplicateWindow = 2 * time.Second

// sweepInterval bounds how often opportunistic idle sweeps run.
const sweepInterval = time.Minute

// debounce guards against double submissions from a chatty UI: one turn in
// flight per session, and identical payloads within duplicateWindow are
// rejected. Writes are already scoped to a single session's own store row,
// so this is debouncing rather than general concurrency control.
type debounce struct {
	mu        sync.Mutex
	inFlight  map[string]bool
	lastSeen  map[string]lastPayload
	lastSweep time.Time
	nowFunc   func() time.Time
}

type lastPayload struct {
	payload string
	at      time.Time
}

func newDebounce() *debounce {
	return &debounce{
		inFlight: make(map[string]bool),
		lastSeen: make(map[string]lastPayload),
		nowFunc:  time.Now,
	}
}

// enter registers a turn, returning ErrDuplicateRequest when the session
// already has a turn in flight or just saw the same payload.
func (d *debounce) enter(sessionID, payload string) error {
	if sessionID == "" {
		return nil // new sessions cannot collide
	}
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.inFlight[sessionID] {
		return ErrDuplicateRequest
	}
	now := d.nowFunc()
	if last, ok := d.lastSeen[sessionID]; ok {
		if payload != "" && last.payload == payload && now.Sub(last.at) < duplicateWindow {
			return ErrDuplicateRequest
		}
	}

	d.inFlight[sessionID] = true
	d.lastSeen[sessionID] = lastPayload{payload: payload, at: now}
	return nil
}

func (d *debounce) leave(sessionID string) {
	if sessionID == "" {
		return
	}
	d.mu.Lock()
	delete(d.inFlight, sessionID)
	d.mu.Unlock()
}

// shouldSweep reports whether enough time has passed for another
// opportunistic idle sweep, and marks the sweep as taken.
func (d *debounce) shouldSweep() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	now := d.nowFunc()
	if now.Sub(d.lastSweep) < sweepInterval {
		return false
	}
	d.lastSweep = now
	return true
}
