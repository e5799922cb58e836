package session

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrNoProvider is returned when a request context carries no session handle.
// It signals a wiring mistake, not a visitor error.
var ErrNoProvider = errors.New("session: no provider in context")

type entry struct {
	state   State
	touched time.Time
}

// Store keeps one State per session id in memory.
type Store struct {
	mu      sync.RWMutex
	entries map[string]*entry
	ttl     time.Duration
	now     func() time.Time
}

// NewStore builds a Store that forgets sessions idle for longer than ttl.
// A non-positive ttl keeps sessions until process exit.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		entries: make(map[string]*entry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// WithClock overrides the time source.
func (s *Store) WithClock(now func() time.Time) *Store {
	if now != nil {
		s.now = now
	}
	return s
}

// Get returns the state for id, or a fresh state when none exists.
func (s *Store) Get(id string) State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if e, ok := s.entries[id]; ok && !s.expired(e) {
		return e.state
	}
	return NewState()
}

// Update applies fn to the current state of id and stores the result.
// Concurrent updates to one id are serialized; the last one wins.
func (s *Store) Update(id string, fn func(State) State) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[id]
	if !ok || s.expired(e) {
		e = &entry{state: NewState()}
		s.entries[id] = e
	}
	e.state = fn(e.state)
	e.touched = s.now()
	return e.state
}

// Touch marks id as active without changing its state.
func (s *Store) Touch(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.entries[id]; ok {
		e.touched = s.now()
	}
}

// Delete forgets id.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, id)
}

// Len returns the number of stored sessions, expired ones included.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Sweep removes expired sessions and returns how many were dropped.
func (s *Store) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, e := range s.entries {
		if s.expired(e) {
			delete(s.entries, id)
			removed++
		}
	}
	return removed
}

// RunJanitor sweeps every interval until ctx is done.
func (s *Store) RunJanitor(ctx context.Context, interval time.Duration, onSweep func(removed int)) {
	if interval <= 0 || s.ttl <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Sweep(); n > 0 && onSweep != nil {
				onSweep(n)
			}
		}
	}
}

func (s *Store) expired(e *entry) bool {
	return s.ttl > 0 && s.now().Sub(e.touched) > s.ttl
}

// Handle binds one session id to its store.
type Handle struct {
	id    string
	store *Store
}

// NewHandle returns a handle for id.
func NewHandle(store *Store, id string) Handle {
	return Handle{id: id, store: store}
}

// ID returns the session id.
func (h Handle) ID() string { return h.id }

// State returns the current state.
func (h Handle) State() State { return h.store.Get(h.id) }

// Update applies fn atomically and returns the new state.
func (h Handle) Update(fn func(State) State) State { return h.store.Update(h.id, fn) }

// End drops the session. Later reads of the same id start from a fresh State.
func (h Handle) End() { h.store.Delete(h.id) }

type handleKey struct{}

// WithHandle returns a context carrying h.
func WithHandle(ctx context.Context, h Handle) context.Context {
	return context.WithValue(ctx, handleKey{}, h)
}

// FromContext returns the handle provisioned for the request. It fails with
// ErrNoProvider instead of inventing an empty session.
func FromContext(ctx context.Context) (Handle, error) {
	h, ok := ctx.Value(handleKey{}).(Handle)
	if !ok || h.store == nil {
		return Handle{}, ErrNoProvider
	}
	return h, nil
}
