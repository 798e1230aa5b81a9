package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store holds live sessions in memory. Sessions only exist for the lifetime of
// the process; an unknown ID is treated as an unattributed session by callers.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Context
}

// NewStore creates an empty session store.
func NewStore() *Store {
	return &Store{
		sessions: make(map[string]*Context),
	}
}

// Create registers a new session with the attribution captured at page load.
func (s *Store) Create(marketer string) *Context {
	ctx := &Context{
		ID:        uuid.New().String(),
		Marketer:  marketer,
		CreatedAt: time.Now().UTC(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[ctx.ID] = ctx

	return ctx
}

// Get returns the session for the given ID, if it exists.
func (s *Store) Get(id string) (*Context, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx, ok := s.sessions[id]
	return ctx, ok
}
