// Package tracker provides per-record in-flight operation tracking.
//
// The dashboard may run several long backend calls at once (a delete on one
// company, an import on another). Each operation kind tracks its own set of
// record keys, so the completion of one operation never disturbs the in-flight
// state of an unrelated record, and a duplicate submission for a key that is
// already in flight is rejected instead of issuing a second backend call.
package tracker

import "sync"

// Kind names an operation category. Kinds track independently: the same key
// may be in flight under two different kinds at once.
type Kind string

// Operation kinds used by the dashboard.
const (
	KindDelete Kind = "delete"
	KindImport Kind = "import"
)

// Tracker maps (kind, key) pairs to an idle/in-flight state.
// The zero value is not usable; call New.
type Tracker struct {
	inflight map[Kind]map[string]struct{}
	mu       sync.Mutex
}

// New creates an empty tracker.
func New() *Tracker {
	return &Tracker{inflight: make(map[Kind]map[string]struct{})}
}

// Start transitions (kind, key) from idle to in-flight.
// Returns false without side effects when the pair is already in flight.
func (t *Tracker) Start(kind Kind, key string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	keys, ok := t.inflight[kind]
	if !ok {
		keys = make(map[string]struct{})
		t.inflight[kind] = keys
	}
	if _, busy := keys[key]; busy {
		return false
	}
	keys[key] = struct{}{}
	return true
}

// Finish transitions (kind, key) back to idle.
// Finishing an idle pair is a no-op, so callers can defer it unconditionally.
func (t *Tracker) Finish(kind Kind, key string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if keys, ok := t.inflight[kind]; ok {
		delete(keys, key)
		if len(keys) == 0 {
			delete(t.inflight, kind)
		}
	}
}

// InFlight reports whether (kind, key) is currently in flight.
func (t *Tracker) InFlight(kind Kind, key string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	_, busy := t.inflight[kind][key]
	return busy
}

// Count returns the number of in-flight keys for a kind.
func (t *Tracker) Count(kind Kind) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return len(t.inflight[kind])
}
