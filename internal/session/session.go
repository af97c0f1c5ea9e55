// Package session abstracts the mutable login-state bag the web client keeps
// in browser storage. The server keeps its own copy keyed by bearer token so
// logout can revoke a session without waiting for the JWT to expire. The core
// quote and registration packages never touch this.
package session

import "sync"

// Well-known session keys, mirroring what the client persists.
const (
	KeyToken      = "token"
	KeyIsLoggedIn = "isLoggedIn"
	KeyDriverID   = "driverId"
	KeyUserMobile = "userMobile"
)

// Context is injected into whatever orchestration layer needs login state.
type Context interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Clear()
}

// Store tracks one Context per bearer token.
type Store interface {
	Session(token string) Context
	Revoke(token string)
	Active(token string) bool
}

type memoryContext struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewContext returns an empty in-memory session context.
func NewContext() Context {
	return &memoryContext{values: make(map[string]string)}
}

func (c *memoryContext) Get(key string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.values[key]
	return v, ok
}

func (c *memoryContext) Set(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[key] = value
}

func (c *memoryContext) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values = make(map[string]string)
}

type memoryStore struct {
	mu       sync.RWMutex
	sessions map[string]Context
}

// NewMemoryStore returns a process-local session store.
func NewMemoryStore() Store {
	return &memoryStore{sessions: make(map[string]Context)}
}

func (s *memoryStore) Session(token string) Context {
	s.mu.Lock()
	defer s.mu.Unlock()
	if ctx, ok := s.sessions[token]; ok {
		return ctx
	}
	ctx := NewContext()
	s.sessions[token] = ctx
	return ctx
}

func (s *memoryStore) Revoke(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if ctx, ok := s.sessions[token]; ok {
		ctx.Clear()
		delete(s.sessions, token)
	}
}

func (s *memoryStore) Active(token string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.sessions[token]
	return ok
}
