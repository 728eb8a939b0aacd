package job

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bookmodel "library-backend/internal/domains/book/model"
	"library-backend/internal/domains/loan/model"
	"library-backend/internal/shared"
)

// fakeLoanService returns a canned late-loan set; nothing else is exercised
// by the job.
type fakeLoanService struct {
	lateLoans []model.Loan
	lateErr   error
}

func (f *fakeLoanService) Create(context.Context, *model.Loan) (*model.Loan, error) {
	return nil, nil
}

func (f *fakeLoanService) GetByID(context.Context, uuid.UUID) (*model.Loan, error) {
	return nil, model.ErrLoanNotFound
}

func (f *fakeLoanService) Update(context.Context, *model.Loan) error { return nil }

func (f *fakeLoanService) Find(context.Context, model.LoanFilter, shared.PageRequest) ([]model.Loan, shared.PageMeta, error) {
	return nil, shared.PageMeta{}, nil
}

func (f *fakeLoanService) GetLoansByBook(context.Context, *bookmodel.Book, shared.PageRequest) ([]model.Loan, shared.PageMeta, error) {
	return nil, shared.PageMeta{}, nil
}

func (f *fakeLoanService) GetAllLateLoans(context.Context) ([]model.Loan, error) {
	return f.lateLoans, f.lateErr
}

type fakeNotifier struct {
	sent    [][]string
	message string
	err     error
}

func (f *fakeNotifier) Send(_ context.Context, message string, recipients []string) error {
	f.message = message
	f.sent = append(f.sent, recipients)
	return f.err
}

func lateLoan(customer string) model.Loan {
	return model.Loan{
		ID:       uuid.New(),
		BookID:   uuid.New(),
		Customer: customer,
		LoanDate: time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC),
	}
}

func notifyTask(t *testing.T) *asynq.Task {
	t.Helper()
	return asynq.NewTask(shared.TypeNotifyLateLoans, nil)
}

func TestProcessTaskSendsOneMailToAllCustomers(t *testing.T) {
	svc := &fakeLoanService{lateLoans: []model.Loan{
		lateLoan("alice@example.com"),
		lateLoan("bob@example.com"),
		lateLoan("alice@example.com"),
	}}
	notifier := &fakeNotifier{}
	handler := NewNotifyLateLoansHandler(svc, notifier, "You have an overdue book loan!")

	err := handler.ProcessTask(context.Background(), notifyTask(t))
	require.NoError(t, err)

	// One call for the whole batch; a customer with two overdue loans is
	// listed twice.
	require.Len(t, notifier.sent, 1)
	assert.Equal(t, []string{"alice@example.com", "bob@example.com", "alice@example.com"}, notifier.sent[0])
	assert.Equal(t, "You have an overdue book loan!", notifier.message)
}

func TestProcessTaskSkipsWhenNothingIsLate(t *testing.T) {
	notifier := &fakeNotifier{}
	handler := NewNotifyLateLoansHandler(&fakeLoanService{}, notifier, "msg")

	err := handler.ProcessTask(context.Background(), notifyTask(t))
	require.NoError(t, err)
	assert.Empty(t, notifier.sent)
}

func TestProcessTaskPropagatesCollectionFailure(t *testing.T) {
	svc := &fakeLoanService{lateErr: errors.New("ledger unavailable")}
	notifier := &fakeNotifier{}
	handler := NewNotifyLateLoansHandler(svc, notifier, "msg")

	err := handler.ProcessTask(context.Background(), notifyTask(t))
	assert.Error(t, err)
	assert.Empty(t, notifier.sent)
}

func TestProcessTaskPropagatesSendFailure(t *testing.T) {
	svc := &fakeLoanService{lateLoans: []model.Loan{lateLoan("alice@example.com")}}
	notifier := &fakeNotifier{err: errors.New("smtp down")}
	handler := NewNotifyLateLoansHandler(svc, notifier, "msg")

	err := handler.ProcessTask(context.Background(), notifyTask(t))
	assert.ErrorContains(t, err, "smtp down")
}
