package email

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
)

const lateLoanSubject = "Overdue book loan"

type smtpNotifier struct {
	smtpAddr string
	smtpFrom string
}

// NewSMTPNotifier returns a Notifier that sends plain-text mail through the
// configured SMTP relay. One call produces one mail addressed to every
// recipient at once.
func NewSMTPNotifier(smtpHost, smtpPort, from string) Notifier {
	return &smtpNotifier{
		smtpAddr: smtpHost + ":" + smtpPort,
		smtpFrom: from,
	}
}

func (s *smtpNotifier) Send(ctx context.Context, message string, recipients []string) error {
	if len(recipients) == 0 {
		return fmt.Errorf("no recipients")
	}

	msg := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
		s.smtpFrom, strings.Join(recipients, ", "), lateLoanSubject, message))

	if err := smtp.SendMail(s.smtpAddr, nil, s.smtpFrom, recipients, msg); err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}

	return nil
}
