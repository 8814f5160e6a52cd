package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/yigit/alumnihub/internal/pkg/apperrors"
)

// Session binds an opaque token to an authenticated user
type Session struct {
	Token     string
	UserID    string
	CreatedAt time.Time
}

// SessionStore issues and resolves opaque session tokens. Tokens carry no
// claims; the binding lives here and dies with the process or on logout.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewSessionStore creates an empty session store
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*Session),
	}
}

// Issue creates a new session for the user and returns its token
func (s *SessionStore) Issue(userID string) (string, error) {
	token, err := generateToken()
	if err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[token] = &Session{
		Token:     token,
		UserID:    userID,
		CreatedAt: time.Now(),
	}
	return token, nil
}

// Resolve returns the user ID bound to the token
func (s *SessionStore) Resolve(token string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[token]
	if !ok {
		return "", apperrors.ErrNotAuthenticated
	}
	return session.UserID, nil
}

// Revoke removes the session bound to the token. Revoking an unknown token
// is a no-op.
func (s *SessionStore) Revoke(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, token)
}

// RevokeAllForUser removes every session bound to the user, so deactivating
// an account also ends its live logins.
func (s *SessionStore) RevokeAllForUser(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for token, session := range s.sessions {
		if session.UserID == userID {
			delete(s.sessions, token)
		}
	}
}

// generateToken builds an opaque token from a UUID plus random bytes
func generateToken() (string, error) {
	random := make([]byte, 16)
	if _, err := rand.Read(random); err != nil {
		return "", err
	}
	return uuid.NewString() + "." + hex.EncodeToString(random), nil
}
