// Package dashboard implements the resolvers for the role dashboards.
package dashboard

import (
	"fmt"
	"time"

	"github.com/bookhaven/lms-backend/model"
	"github.com/bookhaven/lms-backend/store"
)

// ResolveOverview computes the counts for the dashboard top cards
func ResolveOverview(db *store.Store) (map[string]interface{}, error) {
	now := time.Now()
	active, overdue := 0, 0
	for _, l := range db.Loans() {
		switch l.EffectiveStatus(now) {
		case model.LoanStatusActive:
			active++
		case model.LoanStatusOverdue:
			overdue++
		}
	}

	members := 0
	for _, u := range db.ListUsers() {
		if u.Role == model.RoleUser {
			members++
		}
	}

	return map[string]interface{}{
		"total_books":   len(db.Books()),
		"total_members": members,
		"active_loans":  active,
		"overdue_loans": overdue,
	}, nil
}

// ResolveLoanHistory returns the caller's borrow history, optionally
// filtered by effective status and a date window on the borrow time.
func ResolveLoanHistory(db *store.Store, username, status string, from, to time.Time) ([]map[string]interface{}, error) {
	if username == "" {
		return nil, fmt.Errorf("authentication required")
	}

	user, err := db.GetUserByUsername(username)
	if err != nil {
		return nil, fmt.Errorf("unknown user")
	}

	now := time.Now()
	results := []map[string]interface{}{}
	for _, l := range db.LoansForUser(user.ID) {
		effective := l.EffectiveStatus(now)
		if status != "" && effective != status {
			continue
		}
		if !from.IsZero() && l.BorrowedAt.Before(from) {
			continue
		}
		if !to.IsZero() && l.BorrowedAt.After(to) {
			continue
		}

		row := map[string]interface{}{
			"id":          l.ID,
			"book_title":  l.BookTitle,
			"borrowed_at": l.BorrowedAt.Format(time.RFC3339),
			"due_at":      l.DueAt.Format(time.RFC3339),
			"status":      effective,
		}
		if l.ReturnedAt != nil {
			row["returned_at"] = l.ReturnedAt.Format(time.RFC3339)
		}
		results = append(results, row)
	}

	return results, nil
}
