package model

import (
	"time"

	"github.com/google/uuid"

	bookmodel "library-backend/internal/domains/book/model"
)

// Loan records one lending of a book to a customer. Many loans may reference
// the same book over time, but at most one of them may be active. Returned is
// tri-state on purpose: nil and false both count as "not returned".
type Loan struct {
	ID       uuid.UUID `json:"id"`
	BookID   uuid.UUID `json:"book_id"`
	Customer string    `json:"customer"`
	LoanDate time.Time `json:"loan_date"`
	Returned *bool     `json:"returned"`

	// Book is populated by queries that join the catalog.
	Book *bookmodel.Book `json:"book,omitempty"`
}

// IsReturned reports whether the loan has been closed.
func (l *Loan) IsReturned() bool {
	return l.Returned != nil && *l.Returned
}
