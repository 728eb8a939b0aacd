package service

import (
	"context"

	"github.com/google/uuid"

	bookmodel "library-backend/internal/domains/book/model"
	"library-backend/internal/domains/loan/model"
	"library-backend/internal/shared"
)

// ServiceInterface owns the loan lifecycle: creation under the
// one-active-loan-per-book rule, returns, queries and the overdue set.
type ServiceInterface interface {
	// Create persists a new loan. The caller stamps the loan date; the
	// service does not default it. Fails with model.ErrBookAlreadyLoaned when
	// the book already has an active loan, with nothing persisted.
	Create(ctx context.Context, loan *model.Loan) (*model.Loan, error)

	// GetByID returns the loan or model.ErrLoanNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Loan, error)

	// Update persists the given loan state unconditionally. Used to mark a
	// return; the active-loan rule is not re-checked, so a returned loan can
	// be reopened.
	Update(ctx context.Context, loan *model.Loan) error

	// Find returns loans matching the isbn OR the customer of the filter.
	Find(ctx context.Context, filter model.LoanFilter, page shared.PageRequest) ([]model.Loan, shared.PageMeta, error)

	// GetLoansByBook returns a page of loans for one book.
	GetLoansByBook(ctx context.Context, book *bookmodel.Book, page shared.PageRequest) ([]model.Loan, shared.PageMeta, error)

	// GetAllLateLoans returns every overdue loan: loan date strictly older
	// than today minus the loan period, and not returned.
	GetAllLateLoans(ctx context.Context) ([]model.Loan, error)
}
