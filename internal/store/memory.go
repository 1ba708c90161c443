// internal/store/memory.go
//
// In-memory round store.
//
// Characteristics:
//   - Stores *game.Session values keyed by Session.ID.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - Get returns a copy; changes go through Update, which holds the write lock
//     for the whole callback so submissions to one round never overlap.
//   - State is lost when the process restarts.

package store

import (
	"context"
	"errors"
	"sync"

	"github.com/robalobadob/wordscramble/apps/go-server/internal/game"
)

// ErrNotFound is returned when no round has the requested ID.
var ErrNotFound = errors.New("round not found")

// Store defines the persistence interface for rounds.
type Store interface {
	// Save adds or replaces a round.
	Save(ctx context.Context, s *game.Session) error

	// Get returns a copy of the round with the given ID.
	Get(ctx context.Context, id string) (*game.Session, error)

	// Update runs fn on the stored round while holding the write lock.
	// The error from fn is returned unchanged.
	Update(ctx context.Context, id string, fn func(*game.Session) error) error

	// Delete removes a round. Missing IDs are not an error.
	Delete(ctx context.Context, id string) error

	// Len reports how many rounds are stored.
	Len() int
}

type memory struct {
	mu     sync.RWMutex
	rounds map[string]*game.Session
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{rounds: make(map[string]*game.Session)}
}

func (m *memory) Save(ctx context.Context, s *game.Session) error {
	if s == nil || s.ID == "" {
		return errors.New("store: round without ID")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rounds[s.ID] = s.Clone()
	return nil
}

func (m *memory) Get(ctx context.Context, id string) (*game.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.rounds[id]; ok {
		return s.Clone(), nil
	}
	return nil, ErrNotFound
}

func (m *memory) Update(ctx context.Context, id string, fn func(*game.Session) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.rounds[id]
	if !ok {
		return ErrNotFound
	}
	return fn(s)
}

func (m *memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.rounds, id)
	return nil
}

func (m *memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.rounds)
}
