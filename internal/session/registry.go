package session

import (
	"errors"
	"sync"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/lexigraph/backend/pkg/textproc"
)

// ErrSessionLimit is returned by Create when the registry already holds the
// configured maximum number of live sessions.
var ErrSessionLimit = errors.New("session limit reached")

// Session pairs one processor with the mutex that serializes access to it.
// The processor itself is single-threaded; concurrent HTTP requests against
// the same session are serialized here so every read observes a fully
// rebuilt cache.
type Session struct {
	ID string

	mu        sync.Mutex
	processor *textproc.Processor
}

// Do runs fn with exclusive access to the session's processor.
func (s *Session) Do(fn func(p *textproc.Processor)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.processor)
}

// Registry tracks the live processor sessions of one server process.
// Sessions hold no persistent state; they exist only until deleted or until
// the process exits.
type Registry struct {
	mu          sync.RWMutex
	sessions    map[string]*Session
	maxSessions int
}

// NewRegistryParams defines the configuration parameters for creating a new
// Registry.
//
// MaxSessions caps the number of live sessions; zero or negative means
// unlimited.
type NewRegistryParams struct {
	MaxSessions int
}

// NewRegistry creates an empty session registry.
func NewRegistry(params NewRegistryParams) *Registry {
	return &Registry{
		sessions:    make(map[string]*Session),
		maxSessions: params.MaxSessions,
	}
}

// Create registers a new session with a fresh processor and returns it.
func (r *Registry) Create() (*Session, error) {
	id, err := gonanoid.New()
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.maxSessions > 0 && len(r.sessions) >= r.maxSessions {
		return nil, ErrSessionLimit
	}

	s := &Session{
		ID:        id,
		processor: textproc.NewProcessor(textproc.NewProcessorParams{}),
	}
	r.sessions[id] = s

	return s, nil
}

// Get returns the session with the given ID, if it exists.
func (r *Registry) Get(id string) (*Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[id]
	return s, ok
}

// Delete removes the session with the given ID and reports whether it
// existed.
func (r *Registry) Delete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.sessions[id]
	delete(r.sessions, id)
	return ok
}

// Count returns the number of live sessions.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.sessions)
}
