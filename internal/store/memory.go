// internal/store/memory.go
//
// In-memory round storage for the round service.
// Rounds are ephemeral: state is lost when the process restarts.
//
// Characteristics:
//   - Entries keyed by round ID in a map guarded by an RWMutex.
//   - Update runs the caller's mutation under the write lock, so each round
//     has a single writer at a time (game.Round itself is not synchronised).
//   - Get returns ErrNotFound for unknown IDs and for entries past ExpiresAt.
//   - Expired entries are dropped when touched and swept on Save, at most
//     once per sweepEvery.

package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/robalobadob/wordhunt/internal/game"
	"github.com/robalobadob/wordhunt/internal/gesture"
)

var ErrNotFound = errors.New("round not found")

// Entry is everything the service keeps per round: the game state and the
// pointer tracker value for clients that stream raw samples.
// A zero ExpiresAt never expires.
type Entry struct {
	Round     *game.Round
	Gesture   gesture.State
	ExpiresAt time.Time
}

func (e *Entry) expired(now time.Time) bool {
	return !e.ExpiresAt.IsZero() && !now.Before(e.ExpiresAt)
}

const sweepEvery = time.Minute

// Store defines the persistence interface for rounds.
type Store interface {
	// Save inserts or replaces the entry for e.Round.ID.
	Save(ctx context.Context, e *Entry) error

	// Get retrieves an entry by round ID.
	Get(ctx context.Context, id string) (*Entry, error)

	// Update runs fn on the stored entry with exclusive access.
	// fn's error is returned unchanged.
	Update(ctx context.Context, id string, fn func(e *Entry) error) error
}

type memory struct {
	mu        sync.RWMutex
	rounds    map[string]*Entry
	now       func() time.Time
	lastSweep time.Time
}

// NewMemoryStore constructs an empty in-memory Store.
func NewMemoryStore() Store {
	return &memory{rounds: make(map[string]*Entry), now: time.Now}
}

func (m *memory) Save(ctx context.Context, e *Entry) error {
	if e == nil || e.Round == nil {
		return errors.New("store: entry without round")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if now := m.now(); now.Sub(m.lastSweep) >= sweepEvery {
		m.sweep(now)
	}
	m.rounds[e.Round.ID] = e
	return nil
}

// sweep drops expired entries. Callers hold the write lock.
func (m *memory) sweep(now time.Time) {
	for id, e := range m.rounds {
		if e.expired(now) {
			delete(m.rounds, id)
		}
	}
	m.lastSweep = now
}

// Get returns the stored entry. Callers must not mutate it outside Update.
func (m *memory) Get(ctx context.Context, id string) (*Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if e, ok := m.rounds[id]; ok && !e.expired(m.now()) {
		return e, nil
	}
	return nil, ErrNotFound
}

func (m *memory) Update(ctx context.Context, id string, fn func(e *Entry) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.rounds[id]
	if !ok {
		return ErrNotFound
	}
	if e.expired(m.now()) {
		delete(m.rounds, id)
		return ErrNotFound
	}
	return fn(e)
}
