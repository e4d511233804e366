package session

import (
	"context"
	"sync"
	"time"
)

// defaultCleanupInterval is how often the janitor sweeps expired sessions.
const defaultCleanupInterval = time.Minute

// MemoryStore is an in-memory session store with periodic expiry cleanup.
// It is meant for development and tests; production deployments use the
// Redis store so sessions survive restarts.
type MemoryStore struct {
	byToken map[string]*Session
	byID    map[string]string // session ID -> current token
	done    chan struct{}
	mu      sync.Mutex
	closed  bool
}

// NewMemoryStore creates a memory store and starts its cleanup janitor.
// Call Close to stop the janitor.
func NewMemoryStore() *MemoryStore {
	m := &MemoryStore{
		byToken: make(map[string]*Session),
		byID:    make(map[string]string),
		done:    make(chan struct{}),
	}
	go m.janitor()
	return m
}

// Create persists a new session.
func (m *MemoryStore) Create(_ context.Context, s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	cp := *s
	m.byToken[s.Token] = &cp
	m.byID[s.ID] = s.Token
	return nil
}

// Get retrieves a session by its token.
func (m *MemoryStore) Get(_ context.Context, token string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.byToken[token]
	if !ok {
		return nil, ErrNotFound
	}
	if s.IsExpired() {
		delete(m.byToken, token)
		delete(m.byID, s.ID)
		return nil, ErrExpired
	}

	cp := *s
	return &cp, nil
}

// Update saves changes to an existing session, re-indexing it when the token
// rotated.
func (m *MemoryStore) Update(_ context.Context, s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if oldToken, ok := m.byID[s.ID]; ok && oldToken != s.Token {
		delete(m.byToken, oldToken)
	}

	cp := *s
	cp.LastActiveAt = time.Now()
	m.byToken[s.Token] = &cp
	m.byID[s.ID] = s.Token
	return nil
}

// Delete removes a session by its ID.
func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if token, ok := m.byID[id]; ok {
		delete(m.byToken, token)
		delete(m.byID, id)
	}
	return nil
}

// Close stops the cleanup janitor.
func (m *MemoryStore) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.closed {
		m.closed = true
		close(m.done)
	}
}

func (m *MemoryStore) janitor() {
	ticker := time.NewTicker(defaultCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-m.done:
			return
		case <-ticker.C:
			m.sweep()
		}
	}
}

func (m *MemoryStore) sweep() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for token, s := range m.byToken {
		if s.IsExpired() {
			delete(m.byToken, token)
			delete(m.byID, s.ID)
		}
	}
}
