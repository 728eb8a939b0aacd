package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"library-backend/internal/domains/loan/model"
	"library-backend/internal/shared"
)

// RepositoryInterface is the loan ledger contract the loan service depends on.
type RepositoryInterface interface {
	// ExistsActiveByBook reports whether the book has a loan with returned
	// null or false.
	ExistsActiveByBook(ctx context.Context, bookID uuid.UUID) (bool, error)

	// GetByID returns the loan (book joined) or model.ErrLoanNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Loan, error)

	// Create persists a new loan and returns it with its assigned id. A
	// concurrent active loan on the same book surfaces as
	// model.ErrBookAlreadyLoaned via the partial unique index.
	Create(ctx context.Context, loan *model.Loan) (*model.Loan, error)

	// Update overwrites customer, loan date and returned flag.
	Update(ctx context.Context, loan *model.Loan) error

	// FindByISBNOrCustomer returns loans whose book has the given isbn OR
	// whose customer equals the given customer, plus the total match count.
	FindByISBNOrCustomer(ctx context.Context, isbn, customer string, page shared.PageRequest) ([]model.Loan, int, error)

	// FindByBook returns loans for one book in store-assigned order.
	FindByBook(ctx context.Context, bookID uuid.UUID, page shared.PageRequest) ([]model.Loan, int, error)

	// FindOverdue returns every loan with loan date strictly before threshold
	// that has not been returned. Unpaginated; consumed by the worker only.
	FindOverdue(ctx context.Context, threshold time.Time) ([]model.Loan, error)
}
