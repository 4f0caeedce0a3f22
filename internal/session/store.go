// Package session holds the console's authentication state: a three-state
// machine over a single persisted bearer token. The store is constructor-
// injected everywhere it is consumed, never reached as a package global.
package session

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"
)

// State is the session lifecycle state.
type State int

const (
	// StateAnonymous means no valid token is held.
	StateAnonymous State = iota
	// StateAuthenticating means a login exchange is in flight.
	StateAuthenticating
	// StateAuthenticated means a token is held and persisted.
	StateAuthenticated
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case StateAnonymous:
		return "anonymous"
	case StateAuthenticating:
		return "authenticating"
	case StateAuthenticated:
		return "authenticated"
	}
	return "unknown"
}

// ErrLoginFailed is returned for every failed login, network or rejected
// credentials alike. The backend's detail is deliberately not echoed: a
// login form that distinguishes unknown user from bad password leaks
// account existence.
var ErrLoginFailed = errors.New("credenciais inválidas")

// ErrLoginInFlight is returned when a login is submitted while another
// one is still being exchanged.
var ErrLoginInFlight = errors.New("login already in progress")

// Authenticator exchanges credentials for a bearer token.
type Authenticator interface {
	Login(ctx context.Context, username, password string) (string, error)
}

// Store is the session state machine. The token and the authenticated
// flag change together under one mutex, so they can never disagree.
type Store struct {
	mu    sync.Mutex
	state State
	token string
	file  *TokenFile
	log   *zap.Logger
}

// NewStore constructs a Store over the given token file.
func NewStore(file *TokenFile, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{
		state: StateAnonymous,
		file:  file,
		log:   log,
	}
}

// Load rehydrates the session from the persisted token. A present token
// enters StateAuthenticated without server validation; the first call that
// fails with 401 corrects a stale token via Invalidate.
func (s *Store) Load() error {
	token, err := s.file.Load()
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if token != "" {
		s.token = token
		s.state = StateAuthenticated
		s.log.Info("session rehydrated from persisted token")
	}
	return nil
}

// Login drives Anonymous → Authenticating → Authenticated (or back to
// Anonymous). Every failure surfaces as ErrLoginFailed; the underlying
// cause is logged, not returned.
func (s *Store) Login(ctx context.Context, auth Authenticator, username, password string) error {
	s.mu.Lock()
	if s.state == StateAuthenticating {
		s.mu.Unlock()
		return ErrLoginInFlight
	}
	s.state = StateAuthenticating
	s.token = ""
	s.mu.Unlock()

	token, err := auth.Login(ctx, username, password)
	if err != nil || token == "" {
		s.mu.Lock()
		s.state = StateAnonymous
		if clearErr := s.file.Clear(); clearErr != nil {
			s.log.Error("could not clear persisted token", zap.Error(clearErr))
		}
		s.mu.Unlock()
		s.log.Warn("login failed", zap.Error(err))
		return ErrLoginFailed
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.file.Save(token); err != nil {
		s.state = StateAnonymous
		s.log.Error("could not persist token", zap.Error(err))
		return ErrLoginFailed
	}
	s.token = token
	s.state = StateAuthenticated
	s.log.Info("login succeeded", zap.String("username", username))
	return nil
}

// Logout clears the session and the persisted token.
func (s *Store) Logout() {
	s.clear("logout")
}

// Invalidate is the global 401 path: the backend no longer accepts the
// token, so the session is over regardless of which call noticed.
func (s *Store) Invalidate() {
	s.clear("token rejected by backend")
}

func (s *Store) clear(reason string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateAnonymous && s.token == "" {
		return
	}
	s.token = ""
	s.state = StateAnonymous
	if err := s.file.Clear(); err != nil {
		s.log.Error("could not clear persisted token", zap.Error(err))
	}
	s.log.Info("session cleared", zap.String("reason", reason))
}

// Token returns the current bearer token, empty while not authenticated.
// It implements api.TokenSource.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// IsAuthenticated reports whether a token is currently held.
func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state == StateAuthenticated
}

// State returns the current lifecycle state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}
