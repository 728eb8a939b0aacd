package main

import (
	"github.com/hibiken/asynq"

	loanJob "library-backend/internal/domains/loan/job"
	"library-backend/internal/infrastructure/email"
	"library-backend/internal/shared"
	"library-backend/pkg/container"
)

// HandlerRegistry holds all job handlers
type HandlerRegistry struct {
	notifyLateLoans *loanJob.NotifyLateLoansHandler
}

// initializeHandlers creates all job handlers with their dependencies
func initializeHandlers(c *container.Container, cfg *Config) *HandlerRegistry {
	notifier := email.NewSMTPNotifier(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPFrom)

	return &HandlerRegistry{
		notifyLateLoans: loanJob.NewNotifyLateLoansHandler(
			c.LoanService,
			notifier,
			cfg.LateLoanMessage,
		),
	}
}

// RegisterHandlers registers all handlers with the mux
func (h *HandlerRegistry) RegisterHandlers(mux *asynq.ServeMux) {
	mux.HandleFunc(shared.TypeNotifyLateLoans, h.notifyLateLoans.ProcessTask)
}
