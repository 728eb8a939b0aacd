package job

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"library-backend/internal/domains/loan/service"
	"library-backend/internal/infrastructure/email"
)

// NotifyLateLoansHandler runs once per scheduler tick: collect the overdue
// loans and mail every customer on them. Each overdue loan contributes one
// recipient entry; the list is intentionally not deduplicated, so a customer
// holding two overdue books is addressed twice.
type NotifyLateLoansHandler struct {
	loanService service.ServiceInterface
	notifier    email.Notifier
	message     string
}

func NewNotifyLateLoansHandler(loanService service.ServiceInterface, notifier email.Notifier, message string) *NotifyLateLoansHandler {
	return &NotifyLateLoansHandler{
		loanService: loanService,
		notifier:    notifier,
		message:     message,
	}
}

func (h *NotifyLateLoansHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	loans, err := h.loanService.GetAllLateLoans(ctx)
	if err != nil {
		return fmt.Errorf("collect late loans: %w", err)
	}

	recipients := make([]string, 0, len(loans))
	for _, loan := range loans {
		recipients = append(recipients, loan.Customer)
	}

	if len(recipients) == 0 {
		log.Info().Msg("No late loans, skipping notification")
		return nil
	}

	// One outbound call for the whole recipient list. The task is registered
	// with MaxRetry 0, so a failure here waits for the next tick.
	if err := h.notifier.Send(ctx, h.message, recipients); err != nil {
		return fmt.Errorf("send late loan notification: %w", err)
	}

	log.Info().
		Int("late_loans", len(loans)).
		Int("recipients", len(recipients)).
		Msg("Late loan notification sent")

	return nil
}
