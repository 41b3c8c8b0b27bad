package session

import (
	"log"
	"sync"
	"time"
)

const (
	cleanupInterval = 5 * time.Minute
	idleThreshold   = 2 * time.Hour
)

// Store - in-memory session registry keyed by session id
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewStore() *Store {
	return &Store{
		sessions: make(map[string]*Session),
	}
}

// GetOrCreate - fetch the session for id, creating a fresh one on first use
func (st *Store) GetOrCreate(id string) *Session {
	st.mu.RLock()
	s, ok := st.sessions[id]
	st.mu.RUnlock()
	if ok {
		return s
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	if s, ok := st.sessions[id]; ok {
		return s
	}
	s = newSession(id)
	st.sessions[id] = s
	log.Printf("🆕 [Session] Created session %s (active: %d)", id, len(st.sessions))
	return s
}

// Get - fetch an existing session without creating one
func (st *Store) Get(id string) (*Session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[id]
	return s, ok
}

// Delete - drop a session
func (st *Store) Delete(id string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, id)
}

// Count - number of live sessions
func (st *Store) Count() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// StartCleanup - periodically drop sessions idle past the threshold.
// Sessions with an operation in flight are spared.
func (st *Store) StartCleanup() {
	go func() {
		ticker := time.NewTicker(cleanupInterval)
		defer ticker.Stop()

		for range ticker.C {
			st.cleanupIdle(time.Now())
		}
	}()

	log.Printf("🔄 [Session] Started cleanup routine (every %s, idle after %s)", cleanupInterval, idleThreshold)
}

func (st *Store) cleanupIdle(now time.Time) {
	st.mu.Lock()
	defer st.mu.Unlock()

	cleaned := 0
	for id, s := range st.sessions {
		s.mu.Lock()
		idle := now.Sub(s.LastActive) > idleThreshold && !s.busy
		s.mu.Unlock()

		if idle {
			delete(st.sessions, id)
			cleaned++
		}
	}

	if cleaned > 0 {
		log.Printf("🗑️ [Session] Cleaned up %d idle sessions (active: %d)", cleaned, len(st.sessions))
	}
}
