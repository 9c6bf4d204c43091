package server

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/me/gosched/internal/registry"
)

// session binds a job registry to an API session. The engine itself is
// single-threaded; the mutex only serializes HTTP access to the registry.
type session struct {
	ID        string    `json:"id"`
	Capacity  int       `json:"capacity"`
	CreatedAt time.Time `json:"created_at"`

	mu       sync.Mutex
	registry *registry.Registry
}

// sessionStore is the in-memory collection of live sessions.
type sessionStore struct {
	mu              sync.Mutex
	sessions        map[string]*session
	defaultCapacity int
}

func newSessionStore(defaultCapacity int) *sessionStore {
	return &sessionStore{
		sessions:        make(map[string]*session),
		defaultCapacity: defaultCapacity,
	}
}

// create builds a session with its own registry. capacity <= 0 means the
// configured default.
func (st *sessionStore) create(capacity int) *session {
	if capacity <= 0 {
		capacity = st.defaultCapacity
	}
	sess := &session{
		ID:        "sess_" + uuid.New().String()[:8],
		Capacity:  capacity,
		CreatedAt: time.Now().UTC(),
		registry:  registry.New(capacity),
	}

	st.mu.Lock()
	st.sessions[sess.ID] = sess
	st.mu.Unlock()
	return sess
}

func (st *sessionStore) get(id string) *session {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.sessions[id]
}

// delete removes a session; reports whether it existed.
func (st *sessionStore) delete(id string) bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	if _, ok := st.sessions[id]; !ok {
		return false
	}
	delete(st.sessions, id)
	return true
}
