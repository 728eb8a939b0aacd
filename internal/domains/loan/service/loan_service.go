package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	bookmodel "library-backend/internal/domains/book/model"
	"library-backend/internal/domains/loan/model"
	"library-backend/internal/domains/loan/repository"
	"library-backend/internal/shared"
)

// loanDays is the lending period. A loan becomes overdue once its loan date
// is strictly older than today minus this many days.
const loanDays = 4

// LoanService - implements ServiceInterface
type LoanService struct {
	repo repository.RepositoryInterface

	// now is swapped in tests to pin the overdue threshold.
	now func() time.Time
}

func NewService(repo repository.RepositoryInterface) ServiceInterface {
	return &LoanService{
		repo: repo,
		now:  time.Now,
	}
}

func (s *LoanService) Create(ctx context.Context, loan *model.Loan) (*model.Loan, error) {
	if loan == nil || loan.BookID == uuid.Nil || loan.Customer == "" || loan.LoanDate.IsZero() {
		return nil, model.ErrIncompleteLoan
	}

	active, err := s.repo.ExistsActiveByBook(ctx, loan.BookID)
	if err != nil {
		return nil, fmt.Errorf("failed to check active loan: %w", err)
	}
	if active {
		return nil, model.ErrBookAlreadyLoaned
	}

	// The check above can race with a concurrent loan; the ledger's partial
	// unique index rejects the loser and the repository maps that rejection
	// to the same ErrBookAlreadyLoaned.
	return s.repo.Create(ctx, loan)
}

func (s *LoanService) GetByID(ctx context.Context, id uuid.UUID) (*model.Loan, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *LoanService) Update(ctx context.Context, loan *model.Loan) error {
	if loan == nil || loan.ID == uuid.Nil {
		return model.ErrMissingLoanID
	}

	return s.repo.Update(ctx, loan)
}

func (s *LoanService) Find(ctx context.Context, filter model.LoanFilter, page shared.PageRequest) ([]model.Loan, shared.PageMeta, error) {
	loans, total, err := s.repo.FindByISBNOrCustomer(ctx, filter.ISBN, filter.Customer, page)
	if err != nil {
		return nil, shared.PageMeta{}, fmt.Errorf("failed to find loans: %w", err)
	}

	return loans, shared.NewPageMeta(page, total), nil
}

func (s *LoanService) GetLoansByBook(ctx context.Context, book *bookmodel.Book, page shared.PageRequest) ([]model.Loan, shared.PageMeta, error) {
	if book == nil || book.ID == uuid.Nil {
		return nil, shared.PageMeta{}, bookmodel.ErrMissingBookID
	}

	loans, total, err := s.repo.FindByBook(ctx, book.ID, page)
	if err != nil {
		return nil, shared.PageMeta{}, fmt.Errorf("failed to find loans by book: %w", err)
	}

	return loans, shared.NewPageMeta(page, total), nil
}

func (s *LoanService) GetAllLateLoans(ctx context.Context) ([]model.Loan, error) {
	// Loan dates are calendar dates, so the threshold is too.
	y, m, d := s.now().Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	threshold := today.AddDate(0, 0, -loanDays)

	loans, err := s.repo.FindOverdue(ctx, threshold)
	if err != nil {
		return nil, fmt.Errorf("failed to find overdue loans: %w", err)
	}
	return loans, nil
}
