// Package model - catalog and circulation records
package model

import "time"

// Book represents one catalog entry
type Book struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Author          string `json:"author"`
	Genre           string `json:"genre"`
	ISBN            string `json:"isbn"`
	Year            int    `json:"year"`
	CopiesTotal     int    `json:"copies_total"`
	CopiesAvailable int    `json:"copies_available"`
}

// Available reports whether at least one copy can be borrowed
func (b *Book) Available() bool {
	return b.CopiesAvailable > 0
}

// FAQEntry is one question/answer pair shown on the FAQ page
type FAQEntry struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category"`
}

// Loan statuses
const (
	LoanStatusActive   = "active"
	LoanStatusReturned = "returned"
	LoanStatusOverdue  = "overdue"
)

// Loan represents one borrow record in a user's history
type Loan struct {
	ID         string     `json:"id"`
	UserID     string     `json:"user_id"`
	BookID     string     `json:"book_id"`
	BookTitle  string     `json:"book_title"`
	BorrowedAt time.Time  `json:"borrowed_at"`
	DueAt      time.Time  `json:"due_at"`
	ReturnedAt *time.Time `json:"returned_at,omitempty"`
	Status     string     `json:"status"` // active, returned, overdue
}

// EffectiveStatus recomputes the status against the clock so overdue
// loans report as overdue even if stored as active
func (l *Loan) EffectiveStatus(now time.Time) string {
	if l.ReturnedAt != nil {
		return LoanStatusReturned
	}
	if now.After(l.DueAt) {
		return LoanStatusOverdue
	}
	return LoanStatusActive
}

// ResetToken is a pending forgot-password token
type ResetToken struct {
	Token     string    `json:"token"`
	Username  string    `json:"username"`
	ExpiresAt time.Time `json:"expires_at"`
}

// IsExpired checks if the reset token has expired
func (t *ResetToken) IsExpired() bool {
	return time.Now().After(t.ExpiresAt)
}
