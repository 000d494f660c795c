package store

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/bookhaven/lms-backend/model"
)

// Seed populates the store with sample users, catalog, FAQs and history.
// Passwords are hashed at boot so no precomputed hashes are checked in.
func (s *Store) Seed() {
	now := time.Now()

	seedUser := func(username, name, email, password string, role model.Role) {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return
		}
		u := model.NewUser(username, role)
		u.Name = name
		u.Email = email
		u.PasswordHash = string(hash)
		_ = s.CreateUser(u)
	}

	seedUser("admin", "Ada Marsh", "admin@bookhaven.example", "admin123!", model.RoleAdmin)
	seedUser("lisa.shelver", "Lisa Shelver", "lisa@bookhaven.example", "stacks2024", model.RoleLibrarian)
	seedUser("reader1", "Rowan Page", "rowan@readers.example", "turnpage", model.RoleUser)
	seedUser("reader2", "Quinn Folio", "quinn@readers.example", "bookworm", model.RoleUser)

	books := []*model.Book{
		{Title: "The Left Hand of Darkness", Author: "Ursula K. Le Guin", Genre: "Science Fiction", ISBN: "978-0441478125", Year: 1969, CopiesTotal: 4, CopiesAvailable: 2},
		{Title: "A Wizard of Earthsea", Author: "Ursula K. Le Guin", Genre: "Fantasy", ISBN: "978-0547773742", Year: 1968, CopiesTotal: 3, CopiesAvailable: 3},
		{Title: "Snow Crash", Author: "Neal Stephenson", Genre: "Science Fiction", ISBN: "978-0553380958", Year: 1992, CopiesTotal: 2, CopiesAvailable: 0},
		{Title: "The Name of the Rose", Author: "Umberto Eco", Genre: "Mystery", ISBN: "978-0544176560", Year: 1980, CopiesTotal: 5, CopiesAvailable: 4},
		{Title: "Piranesi", Author: "Susanna Clarke", Genre: "Fantasy", ISBN: "978-1635575637", Year: 2020, CopiesTotal: 3, CopiesAvailable: 1},
		{Title: "The Design of Everyday Things", Author: "Don Norman", Genre: "Nonfiction", ISBN: "978-0465050659", Year: 1988, CopiesTotal: 2, CopiesAvailable: 2},
		{Title: "Pachinko", Author: "Min Jin Lee", Genre: "Historical Fiction", ISBN: "978-1455563920", Year: 2017, CopiesTotal: 4, CopiesAvailable: 4},
	}
	for _, b := range books {
		s.AddBook(b)
	}

	faqs := []*model.FAQEntry{
		{Question: "How many books can I borrow at once?", Answer: "Members may have up to five books out at a time.", Category: "borrowing"},
		{Question: "How long is the loan period?", Answer: "Loans run for 21 days and can be renewed twice online.", Category: "borrowing"},
		{Question: "What happens if I return a book late?", Answer: "A fine of 0.25 per day accrues per overdue item.", Category: "fines"},
		{Question: "How do I reserve a book that is checked out?", Answer: "Open the book's page and choose Reserve; you will be notified when it is back.", Category: "reservations"},
		{Question: "Can I suggest a purchase?", Answer: "Yes, use the contact form and a librarian will review the suggestion.", Category: "catalog"},
		{Question: "How do I reset my password?", Answer: "Use the Forgot password link on the sign-in dialog.", Category: "account"},
	}
	for _, f := range faqs {
		s.AddFAQ(f)
	}

	reader, err := s.GetUserByUsername("reader1")
	if err != nil {
		return
	}
	returned := now.AddDate(0, 0, -10)
	loans := []*model.Loan{
		{UserID: reader.ID, BookID: "bk-0007", BookTitle: "Snow Crash", BorrowedAt: now.AddDate(0, 0, -30), DueAt: now.AddDate(0, 0, -9), ReturnedAt: &returned, Status: model.LoanStatusReturned},
		{UserID: reader.ID, BookID: "bk-0005", BookTitle: "The Left Hand of Darkness", BorrowedAt: now.AddDate(0, 0, -14), DueAt: now.AddDate(0, 0, 7), Status: model.LoanStatusActive},
		{UserID: reader.ID, BookID: "bk-0009", BookTitle: "Piranesi", BorrowedAt: now.AddDate(0, 0, -28), DueAt: now.AddDate(0, 0, -7), Status: model.LoanStatusActive},
	}
	for _, l := range loans {
		s.AddLoan(l)
	}
}
