// Package store - in-memory data store for the BookHaven LMS. The system
// runs on seeded sample data for the lifetime of the process; nothing is
// persisted across restarts.
package store

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/bookhaven/lms-backend/model"
)

// Sentinel errors returned by store operations
var (
	ErrNotFound = errors.New("store: not found")
	ErrConflict = errors.New("store: already exists")
)

// Store holds every in-memory collection behind one mutex. Reads copy
// records out so callers can never mutate shared state in place.
type Store struct {
	mu          sync.RWMutex
	users       map[string]*model.User // keyed by lowercase username
	books       []*model.Book
	faqs        []*model.FAQEntry
	loans       []*model.Loan
	resetTokens map[string]*model.ResetToken
	nextID      int
}

var (
	storeOnce sync.Once
	theStore  *Store
)

// Initialize returns the process-wide store, seeding it on first use
func Initialize() *Store {
	storeOnce.Do(func() {
		theStore = New()
		theStore.Seed()
	})
	return theStore
}

// New creates an empty store
func New() *Store {
	return &Store{
		users:       make(map[string]*model.User),
		resetTokens: make(map[string]*model.ResetToken),
		nextID:      1,
	}
}

func (s *Store) newID(prefix string) string {
	id := fmt.Sprintf("%s-%04d", prefix, s.nextID)
	s.nextID++
	return id
}

// ============================================================================
// USERS
// ============================================================================

// GetUserByUsername looks a user up by username, case-insensitively
func (s *Store) GetUserByUsername(username string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[strings.ToLower(username)]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *u
	return &cp, nil
}

// GetUserByEmail looks a user up by email, case-insensitively
func (s *Store) GetUserByEmail(email string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

// CreateUser inserts a new user; username and email must be unused
func (s *Store) CreateUser(user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := strings.ToLower(user.Username)
	if _, ok := s.users[key]; ok {
		return ErrConflict
	}
	for _, u := range s.users {
		if strings.EqualFold(u.Email, user.Email) {
			return ErrConflict
		}
	}

	if user.ID == "" {
		user.ID = s.newID("usr")
	}
	cp := *user
	s.users[key] = &cp
	return nil
}

// UpdateUser replaces the stored record for user.Username
func (s *Store) UpdateUser(user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := strings.ToLower(user.Username)
	if _, ok := s.users[key]; !ok {
		return ErrNotFound
	}
	cp := *user
	cp.UpdatedAt = time.Now()
	s.users[key] = &cp
	return nil
}

// DeleteUser removes a user by username
func (s *Store) DeleteUser(username string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := strings.ToLower(username)
	if _, ok := s.users[key]; !ok {
		return ErrNotFound
	}
	delete(s.users, key)
	return nil
}

// ListUsers returns all users sorted by username
func (s *Store) ListUsers() []*model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]*model.User, 0, len(s.users))
	for _, u := range s.users {
		cp := *u
		users = append(users, &cp)
	}
	sortUsers(users)
	return users
}

func sortUsers(users []*model.User) {
	for i := 1; i < len(users); i++ {
		for j := i; j > 0 && users[j].Username < users[j-1].Username; j-- {
			users[j], users[j-1] = users[j-1], users[j]
		}
	}
}

// ============================================================================
// CATALOG
// ============================================================================

// AddBook appends a catalog entry
func (s *Store) AddBook(b *model.Book) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if b.ID == "" {
		b.ID = s.newID("bk")
	}
	cp := *b
	s.books = append(s.books, &cp)
}

// Books returns a copy of the catalog
func (s *Store) Books() []*model.Book {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*model.Book, 0, len(s.books))
	for _, b := range s.books {
		cp := *b
		out = append(out, &cp)
	}
	return out
}

// AddFAQ appends an FAQ entry
func (s *Store) AddFAQ(f *model.FAQEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if f.ID == "" {
		f.ID = s.newID("faq")
	}
	cp := *f
	s.faqs = append(s.faqs, &cp)
}

// FAQs returns a copy of all FAQ entries
func (s *Store) FAQs() []*model.FAQEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*model.FAQEntry, 0, len(s.faqs))
	for _, f := range s.faqs {
		cp := *f
		out = append(out, &cp)
	}
	return out
}

// AddLoan appends a loan record
func (s *Store) AddLoan(l *model.Loan) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if l.ID == "" {
		l.ID = s.newID("loan")
	}
	cp := *l
	s.loans = append(s.loans, &cp)
}

// LoansForUser returns all loans belonging to userID
func (s *Store) LoansForUser(userID string) []*model.Loan {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*model.Loan
	for _, l := range s.loans {
		if l.UserID == userID {
			cp := *l
			out = append(out, &cp)
		}
	}
	return out
}

// Loans returns every loan record
func (s *Store) Loans() []*model.Loan {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*model.Loan, 0, len(s.loans))
	for _, l := range s.loans {
		cp := *l
		out = append(out, &cp)
	}
	return out
}

// ============================================================================
// RESET TOKENS
// ============================================================================

// PutResetToken stores a pending password-reset token
func (s *Store) PutResetToken(t *model.ResetToken) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *t
	s.resetTokens[t.Token] = &cp
}

// ConsumeResetToken removes and returns a token if present and unexpired
func (s *Store) ConsumeResetToken(token string) (*model.ResetToken, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.resetTokens[token]
	if !ok {
		return nil, ErrNotFound
	}
	delete(s.resetTokens, token)
	if t.IsExpired() {
		return nil, ErrNotFound
	}
	cp := *t
	return &cp, nil
}
