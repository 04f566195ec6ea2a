// internal/store/memory.go
//
// In-memory session store for the HTTP host.
//
// Characteristics:
//   - Sessions are keyed by ID in a map guarded by an RWMutex.
//   - Each Session carries its own mutex; callers hold it around Evaluate so
//     one evaluator never sees concurrent calls.
//   - State is lost when the process restarts.

package store

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"sync"
	"time"

	"github.com/robalobadob/shapeguess/internal/game"
)

// ErrNotFound is returned by Get and Delete for unknown session IDs.
var ErrNotFound = errors.New("session not found")

// Session pairs an evaluator with the identity a client uses to reach it.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu   sync.Mutex
	eval *game.Evaluator
}

// NewSession creates a session with a fresh evaluator and random ID.
func NewSession() *Session {
	return &Session{ID: randomID(), CreatedAt: time.Now().UTC(), eval: game.New()}
}

// Evaluate runs one guess line through the session's evaluator while
// holding the session lock. It also returns the bad-guess count observed
// after the call.
func (s *Session) Evaluate(line string) (game.Result, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, err := s.eval.Evaluate(line)
	return r, s.eval.BadGuesses(), err
}

// Store defines the persistence interface for sessions.
type Store interface {
	Save(ctx context.Context, s *Session) error
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
	Len() int
}

type memory struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{sessions: make(map[string]*Session)}
}

func (m *memory) Save(ctx context.Context, s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s
	return nil
}

func (m *memory) Get(ctx context.Context, id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.sessions[id]; ok {
		return s, nil
	}
	return nil, ErrNotFound
}

func (m *memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; !ok {
		return ErrNotFound
	}
	delete(m.sessions, id)
	return nil
}

func (m *memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// randomID returns a compact 16-hex-char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
