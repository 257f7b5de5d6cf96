package client

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"sync"
)

// Session holds the caller's authentication state: the bearer token and the
// profile returned at login. A Session is injected into the Client rather
// than kept in package state, so independent clients never share tokens.
//
// With a backing file the session survives process restarts; without one it
// is memory-only.
type Session struct {
	mu    sync.RWMutex
	token string
	user  *User
	path  string
}

type sessionFile struct {
	Token string `json:"token"`
	User  *User  `json:"user,omitempty"`
}

// NewSession returns an in-memory session.
func NewSession() *Session {
	return &Session{}
}

// NewPersistentSession returns a session backed by the file at path. An
// existing file is loaded; a missing file starts an anonymous session.
func NewPersistentSession(path string) (*Session, error) {
	s := &Session{path: path}

	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, err
	}

	var f sessionFile
	if err := json.Unmarshal(raw, &f); err != nil {
		// A corrupt session file is not fatal, start anonymous.
		return s, nil
	}
	s.token = f.Token
	s.user = f.User
	return s, nil
}

// Token returns the current bearer token, or "" when anonymous.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns the cached profile, or nil when anonymous.
func (s *Session) User() *User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// IsAuthenticated reports whether a token is held.
func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != ""
}

func (s *Session) set(token string, user *User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.user = user
	s.persist()
}

// Clear drops the token and profile, returning the session to anonymous.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.user = nil
	s.persist()
}

// persist writes the current state to the backing file. Callers hold s.mu.
func (s *Session) persist() {
	if s.path == "" {
		return
	}
	if s.token == "" {
		os.Remove(s.path)
		return
	}
	raw, err := json.Marshal(sessionFile{Token: s.token, User: s.user})
	if err != nil {
		return
	}
	_ = os.WriteFile(s.path, raw, 0o600)
}
