package memory

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/bravo-menu-api/internal/application/auth"
)

var _ auth.SessionStore = (*SessionStore)(nil)

// SessionStore sesiones en memoria con expiración; se usa cuando no hay Redis configurado.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]sessionEntry
	now      func() time.Time
}

type sessionEntry struct {
	s       auth.Session
	expires time.Time
}

// NewSessionStore construye el almacén.
func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]sessionEntry), now: time.Now}
}

func (st *SessionStore) Save(_ context.Context, s *auth.Session, ttl time.Duration) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.sessions[s.ID] = sessionEntry{s: *s, expires: st.now().Add(ttl)}
	return nil
}

func (st *SessionStore) Get(_ context.Context, id string) (*auth.Session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	e, ok := st.sessions[id]
	if !ok {
		return nil, nil
	}
	if !st.now().Before(e.expires) {
		delete(st.sessions, id)
		return nil, nil
	}
	s := e.s
	return &s, nil
}

func (st *SessionStore) Delete(_ context.Context, id string) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, id)
	return nil
}
