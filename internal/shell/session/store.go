// Package session implements the authentication context the shell runs on:
// one store owns the current user, every mutation goes through its
// operations, and consumers subscribe for change notification instead of
// reading ambient globals.
package session

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/bookhaven/lms-backend/model"
	"github.com/bookhaven/lms-backend/util"
)

// Credentials is the login input
type Credentials struct {
	Username string
	Password string
}

// RegisterFields is the registration input
type RegisterFields struct {
	Username string
	Name     string
	Email    string
	Password string
}

// LoginResult reports the outcome of a login operation
type LoginResult struct {
	Success    bool
	RedirectTo string
}

// Service is the backend the store delegates to. Implementations live in
// internal/services; tests substitute fakes.
type Service interface {
	Login(ctx context.Context, creds Credentials) (*model.User, string, error)
	Register(ctx context.Context, fields RegisterFields) error
	Logout(ctx context.Context) error
	ForgotPassword(ctx context.Context, email string) error
	// CurrentUser restores an existing session, if any. A nil user with a
	// nil error means "no session" and is not a failure.
	CurrentUser(ctx context.Context) (*model.User, error)
}

// Snapshot is an immutable view of the session state handed to subscribers
type Snapshot struct {
	User            *model.User
	IsAuthenticated bool
	AuthInitialized bool
	Loading         bool
	Error           string
}

// Store holds the session state. All fields are private; reads go through
// Snapshot and writes through the exported operations.
type Store struct {
	mu          sync.RWMutex
	svc         Service
	user        *model.User
	initialized bool
	loading     bool
	lastError   string
	subscribers map[uuid.UUID]func(Snapshot)
}

// NewStore creates a session store backed by svc
func NewStore(svc Service) *Store {
	return &Store{
		svc:         svc,
		subscribers: make(map[uuid.UUID]func(Snapshot)),
	}
}

// Subscribe registers fn to run after every state change. The returned
// cancel function removes the subscription; callers must invoke it when
// their component unmounts.
func (s *Store) Subscribe(fn func(Snapshot)) (cancel func()) {
	id := uuid.New()

	s.mu.Lock()
	s.subscribers[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subscribers, id)
		s.mu.Unlock()
	}
}

// Snapshot returns the current session state
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() Snapshot {
	var user *model.User
	if s.user != nil {
		cp := *s.user
		user = &cp
	}
	return Snapshot{
		User:            user,
		IsAuthenticated: s.user != nil,
		AuthInitialized: s.initialized,
		Loading:         s.loading,
		Error:           s.lastError,
	}
}

func (s *Store) notify() {
	s.mu.RLock()
	snap := s.snapshotLocked()
	fns := make([]func(Snapshot), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		fns = append(fns, fn)
	}
	s.mu.RUnlock()

	for _, fn := range fns {
		fn(snap)
	}
}

// Init restores any existing session and marks the store initialized.
// Role-dependent UI stays blank until this has run once.
func (s *Store) Init(ctx context.Context) {
	user, err := s.svc.CurrentUser(ctx)
	if err != nil {
		util.Logger.Warn("session restore failed", zap.Error(err))
	}

	s.mu.Lock()
	if err == nil {
		s.user = user
	}
	s.initialized = true
	s.mu.Unlock()
	s.notify()
}

// Login runs the login operation. A failure lands in the error banner
// state; it is never returned as a Go error to the caller.
func (s *Store) Login(ctx context.Context, creds Credentials) LoginResult {
	s.setLoading(true)

	user, redirectTo, err := s.svc.Login(ctx, creds)

	s.mu.Lock()
	s.loading = false
	if err != nil {
		s.lastError = err.Error()
		s.mu.Unlock()
		s.notify()
		return LoginResult{}
	}
	s.user = user
	s.lastError = ""
	s.mu.Unlock()
	s.notify()

	return LoginResult{Success: true, RedirectTo: redirectTo}
}

// Register runs the registration operation
func (s *Store) Register(ctx context.Context, fields RegisterFields) bool {
	s.setLoading(true)

	err := s.svc.Register(ctx, fields)

	s.mu.Lock()
	s.loading = false
	if err != nil {
		s.lastError = err.Error()
	} else {
		s.lastError = ""
	}
	s.mu.Unlock()
	s.notify()

	return err == nil
}

// Logout clears the session. The local user is cleared even when the
// backend call fails; the failure is logged and returned so callers can
// unlock their own guards.
func (s *Store) Logout(ctx context.Context) error {
	err := s.svc.Logout(ctx)
	if err != nil {
		util.Logger.Error("logout failed", zap.Error(err))
		return err
	}

	s.mu.Lock()
	s.user = nil
	s.lastError = ""
	s.mu.Unlock()
	s.notify()
	return nil
}

// ForgotPassword starts the reset flow for an email
func (s *Store) ForgotPassword(ctx context.Context, email string) bool {
	s.setLoading(true)

	err := s.svc.ForgotPassword(ctx, email)

	s.mu.Lock()
	s.loading = false
	if err != nil {
		s.lastError = err.Error()
	} else {
		s.lastError = ""
	}
	s.mu.Unlock()
	s.notify()

	return err == nil
}

// ClearError drops the error banner
func (s *Store) ClearError() {
	s.mu.Lock()
	changed := s.lastError != ""
	s.lastError = ""
	s.mu.Unlock()
	if changed {
		s.notify()
	}
}

func (s *Store) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
	s.notify()
}
