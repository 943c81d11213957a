package config

import (
	"sync"

	"github.com/vidscope/vidscope-desktop/internal/model"
)

// Session is the explicit, injected holder of per-login state: the
// bearer token and the signed-in user. It replaces module-level globals;
// it is initialized once at session start and torn down at logout.
type Session struct {
	mu         sync.RWMutex
	token      string
	user       *model.User
	mobileView bool
}

// NewSession creates an empty, signed-out session
func NewSession() *Session {
	return &Session{}
}

// Begin installs the credentials and user for a fresh login
func (s *Session) Begin(token string, user *model.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.user = user
}

// End clears all per-login state at logout
func (s *Session) End() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.user = nil
}

// Active reports whether a user is signed in
func (s *Session) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}

// Token returns the current bearer token, empty when signed out. Its
// signature matches api.TokenSource so it plugs into the client directly.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns the signed-in user, or false when signed out
func (s *Session) User() (*model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user, s.user != nil
}

// UserID returns the signed-in user's id, empty when signed out
func (s *Session) UserID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return ""
	}
	return s.user.ID
}

// SetMobileView toggles the mobile layout flag for this session
func (s *Session) SetMobileView(mobile bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mobileView = mobile
}

// MobileView reports whether the mobile layout is active
func (s *Session) MobileView() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mobileView
}
