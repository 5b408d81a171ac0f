package state

import (
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"

	"storefront/internal/domain"
)

// SessionStore holds at most one authenticated session.
type SessionStore struct {
	mu      sync.RWMutex
	session *domain.Session
	now     func() time.Time
	p       persister
	log     *logrus.Logger
}

func NewSessionStore(store domain.StateStore, logger *logrus.Logger) *SessionStore {
	return newSessionStore(store, logger, time.Now)
}

func newSessionStore(store domain.StateStore, logger *logrus.Logger, now func() time.Time) *SessionStore {
	s := &SessionStore{
		now: now,
		p:   persister{store: store, key: keySession, log: logger},
		log: logger,
	}

	var persisted domain.Session
	if !s.p.load(&persisted) {
		return s
	}
	switch {
	case !persisted.Valid():
		logger.Warn("State: persisted session is incomplete, starting logged out")
	case tokenExpired(persisted.AccessToken, now()):
		logger.Infof("State: persisted session for %s has expired, starting logged out", persisted.Email)
		s.p.clear()
	default:
		s.session = &persisted
		logger.Infof("State: restored session for %s (admin=%t)", persisted.Email, persisted.IsAdmin)
	}
	return s
}

// Login replaces the current session; nothing from the previous one survives.
func (s *SessionStore) Login(session domain.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = &session
	s.p.save(session)
	s.log.Infof("State: session started for %s (admin=%t)", session.Email, session.IsAdmin)
}

func (s *SessionStore) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session != nil {
		s.log.Infof("State: session ended for %s", s.session.Email)
	}
	s.session = nil
	s.p.clear()
}

// Current reports no session once the access token has expired, and drops
// the expired session.
func (s *SessionStore) Current() (domain.Session, bool) {
	s.mu.RLock()
	session := s.session
	s.mu.RUnlock()
	if session == nil {
		return domain.Session{}, false
	}
	if tokenExpired(session.AccessToken, s.now()) {
		s.expire(session)
		return domain.Session{}, false
	}
	return *session, true
}

func (s *SessionStore) expire(stale *domain.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session != stale {
		return
	}
	s.session = nil
	s.p.clear()
	s.log.Infof("State: session for %s expired, logged out", stale.Email)
}

func (s *SessionStore) IsAdmin() bool {
	session, ok := s.Current()
	return ok && session.IsAdmin
}

// AccessToken is empty when nobody is logged in.
func (s *SessionStore) AccessToken() string {
	session, _ := s.Current()
	return session.AccessToken
}

// tokenExpired only judges tokens that parse as JWTs carrying an exp claim;
// opaque tokens are left to the backend.
func tokenExpired(token string, now time.Time) bool {
	if token == "" {
		return false
	}
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return false
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return !claims.ExpiresAt.After(now)
}
