package service

import "sync"

// SessionRegistry maps user identifiers to their active quiz session.
// The mutex guards only the map itself; sessions carry their own locks,
// so events for different users never contend here beyond the map access.
type SessionRegistry struct {
	mu       sync.RWMutex
	sessions map[int64]*QuizSession
}

// NewSessionRegistry creates an empty registry
func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{
		sessions: make(map[int64]*QuizSession),
	}
}

// Get returns the user's active session, if any
func (r *SessionRegistry) Get(userID int64) (*QuizSession, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[userID]
	return s, ok
}

// Put stores a session for the user and returns the one it replaced, if any
func (r *SessionRegistry) Put(userID int64, s *QuizSession) *QuizSession {
	r.mu.Lock()
	defer r.mu.Unlock()
	prev := r.sessions[userID]
	r.sessions[userID] = s
	return prev
}

// Remove deletes the user's entry, but only if s is still the registered
// session. A session finishing concurrently with a restart must not evict
// the replacement. Removing an absent user is a no-op.
func (r *SessionRegistry) Remove(userID int64, s *QuizSession) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.sessions[userID] == s {
		delete(r.sessions, userID)
	}
}

// Len returns the number of active sessions
func (r *SessionRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
