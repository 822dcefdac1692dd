package conversation

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
)

// SessionCreator mints new chat session ids on the server.
type SessionCreator interface {
	CreateChat(ctx context.Context) (string, error)
}

// Registry owns every session of the running client, in creation order. The
// active session is tracked by id only, never by handle.
type Registry struct {
	creator          SessionCreator
	defaultDeepThink bool

	sessions    []*Session
	sessionByID map[string]*Session
	activeID    string
}

// NewRegistry instantiates an empty registry.
func NewRegistry(creator SessionCreator, defaultDeepThink bool) *Registry {
	return &Registry{
		creator:          creator,
		defaultDeepThink: defaultDeepThink,
		sessionByID:      map[string]*Session{},
	}
}

// Create requests a new session id from the server, registers the session
// under a sequential display name and makes it the active one. On failure the
// registry is left untouched; the caller may simply retry.
func (r *Registry) Create(ctx context.Context) (*Session, error) {
	id, err := r.creator.CreateChat(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "creating chat session")
	}

	return r.Register(id), nil
}

// Register records a session under a server-issued id and makes it the active
// one. It exists so callers that run session creation off the event loop can
// keep all registry mutation on it.
func (r *Registry) Register(id string) *Session {
	session := newSession(id, fmt.Sprintf("Chat %d", len(r.sessions)+1), r.defaultDeepThink)
	r.sessions = append(r.sessions, session)
	r.sessionByID[session.ID] = session
	r.activeID = session.ID
	return session
}

// Sessions returns a snapshot of all sessions, insertion order = creation order.
func (r *Registry) Sessions() []*Session {
	sessions := make([]*Session, len(r.sessions))
	copy(sessions, r.sessions)
	return sessions
}

// Get returns the session with the given id.
func (r *Registry) Get(id string) (*Session, bool) {
	session, ok := r.sessionByID[id]
	return session, ok
}

// Active returns the active session, or nil if the registry holds none.
func (r *Registry) Active() *Session {
	return r.sessionByID[r.activeID]
}

// SetActive moves the active-session pointer. It mutates no session data, so
// switching to the already-active session is a no-op.
func (r *Registry) SetActive(id string) error {
	if _, ok := r.sessionByID[id]; !ok {
		return errors.Errorf("unknown session id %q", id)
	}
	r.activeID = id
	return nil
}

// ActivateNext cycles the active pointer to the next session in creation
// order, wrapping around. It returns the newly active session, or nil if the
// registry is empty.
func (r *Registry) ActivateNext() *Session {
	if len(r.sessions) == 0 {
		return nil
	}
	for i, session := range r.sessions {
		if session.ID == r.activeID {
			next := r.sessions[(i+1)%len(r.sessions)]
			r.activeID = next.ID
			return next
		}
	}
	r.activeID = r.sessions[0].ID
	return r.sessions[0]
}
