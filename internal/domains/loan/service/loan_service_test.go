package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bookmodel "library-backend/internal/domains/book/model"
	"library-backend/internal/domains/loan/model"
	"library-backend/internal/shared"
)

// fakeLoanRepo is an in-memory ledger enforcing the same one-active-loan rule
// as the partial unique index.
type fakeLoanRepo struct {
	loans []model.Loan
}

func (f *fakeLoanRepo) ExistsActiveByBook(_ context.Context, bookID uuid.UUID) (bool, error) {
	for i := range f.loans {
		if f.loans[i].BookID == bookID && !f.loans[i].IsReturned() {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeLoanRepo) GetByID(_ context.Context, id uuid.UUID) (*model.Loan, error) {
	for i := range f.loans {
		if f.loans[i].ID == id {
			found := f.loans[i]
			return &found, nil
		}
	}
	return nil, model.ErrLoanNotFound
}

func (f *fakeLoanRepo) Create(_ context.Context, loan *model.Loan) (*model.Loan, error) {
	for i := range f.loans {
		if f.loans[i].BookID == loan.BookID && !f.loans[i].IsReturned() {
			return nil, model.ErrBookAlreadyLoaned
		}
	}
	created := *loan
	created.ID = uuid.New()
	f.loans = append(f.loans, created)
	return &created, nil
}

func (f *fakeLoanRepo) Update(_ context.Context, loan *model.Loan) error {
	for i := range f.loans {
		if f.loans[i].ID == loan.ID {
			f.loans[i] = *loan
			return nil
		}
	}
	return model.ErrLoanNotFound
}

func (f *fakeLoanRepo) FindByISBNOrCustomer(_ context.Context, isbn, customer string, page shared.PageRequest) ([]model.Loan, int, error) {
	var matched []model.Loan
	for _, l := range f.loans {
		if (l.Book != nil && l.Book.ISBN == isbn) || l.Customer == customer {
			matched = append(matched, l)
		}
	}
	return pageOf(matched, page), len(matched), nil
}

func (f *fakeLoanRepo) FindByBook(_ context.Context, bookID uuid.UUID, page shared.PageRequest) ([]model.Loan, int, error) {
	var matched []model.Loan
	for _, l := range f.loans {
		if l.BookID == bookID {
			matched = append(matched, l)
		}
	}
	return pageOf(matched, page), len(matched), nil
}

func (f *fakeLoanRepo) FindOverdue(_ context.Context, threshold time.Time) ([]model.Loan, error) {
	var matched []model.Loan
	for _, l := range f.loans {
		if l.LoanDate.Before(threshold) && !l.IsReturned() {
			matched = append(matched, l)
		}
	}
	return matched, nil
}

func pageOf(loans []model.Loan, page shared.PageRequest) []model.Loan {
	start := page.Offset()
	if start > len(loans) {
		start = len(loans)
	}
	end := start + page.Size
	if end > len(loans) {
		end = len(loans)
	}
	return loans[start:end]
}

func newTestLoanService(now time.Time) (*fakeLoanRepo, *LoanService) {
	repo := &fakeLoanRepo{}
	return repo, &LoanService{
		repo: repo,
		now:  func() time.Time { return now },
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func boolPtr(v bool) *bool { return &v }

func TestCreateRejectsIncompleteLoan(t *testing.T) {
	repo, svc := newTestLoanService(date(2026, 8, 29))
	ctx := context.Background()

	cases := []model.Loan{
		{Customer: "joao@example.com", LoanDate: date(2026, 8, 29)},
		{BookID: uuid.New(), LoanDate: date(2026, 8, 29)},
		{BookID: uuid.New(), Customer: "joao@example.com"},
	}
	for _, loan := range cases {
		_, err := svc.Create(ctx, &loan)
		assert.ErrorIs(t, err, model.ErrIncompleteLoan)
	}
	assert.Empty(t, repo.loans, "nothing may be persisted for an incomplete loan")
}

func TestCreateRejectsSecondActiveLoan(t *testing.T) {
	repo, svc := newTestLoanService(date(2026, 8, 29))
	ctx := context.Background()
	bookID := uuid.New()

	_, err := svc.Create(ctx, &model.Loan{BookID: bookID, Customer: "joao@example.com", LoanDate: date(2026, 8, 29)})
	require.NoError(t, err)

	_, err = svc.Create(ctx, &model.Loan{BookID: bookID, Customer: "maria@example.com", LoanDate: date(2026, 8, 29)})
	assert.ErrorIs(t, err, model.ErrBookAlreadyLoaned)
	assert.Len(t, repo.loans, 1, "the rejected loan must leave no partial write")
}

func TestCreateAllowsNewLoanAfterReturn(t *testing.T) {
	_, svc := newTestLoanService(date(2026, 8, 29))
	ctx := context.Background()
	bookID := uuid.New()

	first, err := svc.Create(ctx, &model.Loan{BookID: bookID, Customer: "joao@example.com", LoanDate: date(2026, 8, 20)})
	require.NoError(t, err)

	first.Returned = boolPtr(true)
	require.NoError(t, svc.Update(ctx, first))

	_, err = svc.Create(ctx, &model.Loan{BookID: bookID, Customer: "maria@example.com", LoanDate: date(2026, 8, 29)})
	assert.NoError(t, err)
}

func TestReturnedFalseStillBlocksBook(t *testing.T) {
	_, svc := newTestLoanService(date(2026, 8, 29))
	ctx := context.Background()
	bookID := uuid.New()

	first, err := svc.Create(ctx, &model.Loan{BookID: bookID, Customer: "joao@example.com", LoanDate: date(2026, 8, 20)})
	require.NoError(t, err)

	// An explicit false is as active as a nil.
	first.Returned = boolPtr(false)
	require.NoError(t, svc.Update(ctx, first))

	_, err = svc.Create(ctx, &model.Loan{BookID: bookID, Customer: "maria@example.com", LoanDate: date(2026, 8, 29)})
	assert.ErrorIs(t, err, model.ErrBookAlreadyLoaned)
}

func TestUpdateRequiresID(t *testing.T) {
	_, svc := newTestLoanService(date(2026, 8, 29))

	err := svc.Update(context.Background(), &model.Loan{Customer: "joao@example.com"})
	assert.ErrorIs(t, err, model.ErrMissingLoanID)
}

func TestGetLoansByBookRequiresID(t *testing.T) {
	_, svc := newTestLoanService(date(2026, 8, 29))

	_, _, err := svc.GetLoansByBook(context.Background(), &bookmodel.Book{}, shared.PageRequest{Page: 0, Size: 10})
	assert.ErrorIs(t, err, bookmodel.ErrMissingBookID)
}

func TestFindMatchesISBNOrCustomer(t *testing.T) {
	repo, svc := newTestLoanService(date(2026, 8, 29))
	ctx := context.Background()

	bookA := &bookmodel.Book{ID: uuid.New(), ISBN: "123"}
	bookB := &bookmodel.Book{ID: uuid.New(), ISBN: "999"}
	repo.loans = []model.Loan{
		{ID: uuid.New(), BookID: bookA.ID, Customer: "alice@example.com", LoanDate: date(2026, 8, 1), Book: bookA},
		{ID: uuid.New(), BookID: bookB.ID, Customer: "bob@example.com", LoanDate: date(2026, 8, 2), Book: bookB},
	}

	// Either side of the filter matching is enough, so one hit per side
	// returns both loans.
	loans, meta, err := svc.Find(ctx, model.LoanFilter{ISBN: "123", Customer: "bob@example.com"}, shared.PageRequest{Page: 0, Size: 10})
	require.NoError(t, err)
	assert.Len(t, loans, 2)
	assert.Equal(t, 2, meta.TotalElements)

	// Both sides are always bound; a half-matching filter still needs an
	// exact hit on one of them.
	loans, _, err = svc.Find(ctx, model.LoanFilter{ISBN: "123", Customer: "nobody@example.com"}, shared.PageRequest{Page: 0, Size: 10})
	require.NoError(t, err)
	assert.Len(t, loans, 1)
	assert.Equal(t, "alice@example.com", loans[0].Customer)
}

func TestFindEchoesRequestedPage(t *testing.T) {
	repo, svc := newTestLoanService(date(2026, 8, 29))

	book := &bookmodel.Book{ID: uuid.New(), ISBN: "123"}
	repo.loans = []model.Loan{
		{ID: uuid.New(), BookID: book.ID, Customer: "alice@example.com", LoanDate: date(2026, 8, 1), Book: book},
	}

	loans, meta, err := svc.Find(context.Background(), model.LoanFilter{ISBN: "123"}, shared.PageRequest{Page: 0, Size: 10})
	require.NoError(t, err)
	assert.Len(t, loans, 1)
	assert.Equal(t, 0, meta.Page)
	assert.Equal(t, 10, meta.Size)
	assert.Equal(t, 1, meta.TotalElements)
}

func TestGetAllLateLoansThreshold(t *testing.T) {
	repo, svc := newTestLoanService(date(2026, 8, 29))
	ctx := context.Background()

	overdue := model.Loan{ID: uuid.New(), BookID: uuid.New(), Customer: "late@example.com", LoanDate: date(2026, 8, 24)}
	onBoundary := model.Loan{ID: uuid.New(), BookID: uuid.New(), Customer: "boundary@example.com", LoanDate: date(2026, 8, 25)}
	fresh := model.Loan{ID: uuid.New(), BookID: uuid.New(), Customer: "fresh@example.com", LoanDate: date(2026, 8, 29)}
	returnedLate := model.Loan{ID: uuid.New(), BookID: uuid.New(), Customer: "done@example.com", LoanDate: date(2026, 8, 10), Returned: boolPtr(true)}
	repo.loans = []model.Loan{overdue, onBoundary, fresh, returnedLate}

	late, err := svc.GetAllLateLoans(ctx)
	require.NoError(t, err)

	// Exactly loanDays old sits on the threshold and is not yet late; the
	// comparison is strict.
	require.Len(t, late, 1)
	assert.Equal(t, "late@example.com", late[0].Customer)
}

func TestGetAllLateLoansIgnoresTimeOfDay(t *testing.T) {
	repo, svc := newTestLoanService(time.Date(2026, 8, 29, 23, 45, 0, 0, time.UTC))

	repo.loans = []model.Loan{
		{ID: uuid.New(), BookID: uuid.New(), Customer: "boundary@example.com", LoanDate: date(2026, 8, 25)},
	}

	late, err := svc.GetAllLateLoans(context.Background())
	require.NoError(t, err)
	assert.Empty(t, late, "the threshold is a calendar date, not an instant")
}
