package httpapi

import (
	"errors"
	"sync"
	"time"

	"github.com/bnema/geoquiz-cli/internal/application"
)

var ErrSessionNotFound = errors.New("session not found")

const (
	DefaultMaxSessions    = 1000
	DefaultSessionIdleTTL = 30 * time.Minute
)

type StoreOptions struct {
	// MaxSessions caps live sessions; the least recently used one is evicted
	// when a new session would exceed it.
	MaxSessions int
	// IdleTTL drops sessions untouched for longer than this.
	IdleTTL time.Duration
	Now     func() time.Time
}

// SessionStore keeps live sessions in memory. State is lost on restart.
type SessionStore struct {
	mu          sync.RWMutex
	sessions    map[string]*sessionEntry
	maxSessions int
	idleTTL     time.Duration
	now         func() time.Time
}

// sessionEntry serializes access to one session; application.Session is
// single-caller.
type sessionEntry struct {
	mu       sync.Mutex
	session  *application.Session
	lastSeen time.Time
}

func NewSessionStore(opts StoreOptions) *SessionStore {
	if opts.MaxSessions <= 0 {
		opts.MaxSessions = DefaultMaxSessions
	}
	if opts.IdleTTL <= 0 {
		opts.IdleTTL = DefaultSessionIdleTTL
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &SessionStore{
		sessions:    make(map[string]*sessionEntry),
		maxSessions: opts.MaxSessions,
		idleTTL:     opts.IdleTTL,
		now:         opts.Now,
	}
}

func (s *SessionStore) Put(session *application.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.evictIdleLocked(now)
	for len(s.sessions) >= s.maxSessions {
		s.evictOldestLocked()
	}
	s.sessions[session.ID()] = &sessionEntry{session: session, lastSeen: now}
}

// With runs fn while holding the session's lock.
func (s *SessionStore) With(id string, fn func(*application.Session) error) error {
	now := s.now()

	s.mu.Lock()
	entry, ok := s.sessions[id]
	if ok && now.Sub(entry.lastSeen) > s.idleTTL {
		delete(s.sessions, id)
		ok = false
	}
	if ok {
		entry.lastSeen = now
	}
	s.mu.Unlock()
	if !ok {
		return ErrSessionNotFound
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	return fn(entry.session)
}

func (s *SessionStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func (s *SessionStore) evictIdleLocked(now time.Time) {
	for id, entry := range s.sessions {
		if now.Sub(entry.lastSeen) > s.idleTTL {
			delete(s.sessions, id)
		}
	}
}

func (s *SessionStore) evictOldestLocked() {
	var (
		oldestID string
		oldest   time.Time
	)
	for id, entry := range s.sessions {
		if oldestID == "" || entry.lastSeen.Before(oldest) {
			oldestID, oldest = id, entry.lastSeen
		}
	}
	delete(s.sessions, oldestID)
}
