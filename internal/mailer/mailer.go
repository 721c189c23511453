// Package mailer delivers account emails.
package mailer

import (
	"context"

	"github.com/sirupsen/logrus"
)

type Mailer interface {
	SendPasswordReset(ctx context.Context, email, token string) error
}

// LogMailer writes messages to the log instead of sending them.
// Deployments without an SMTP relay use it.
type LogMailer struct {
	log logrus.FieldLogger
}

func NewLogMailer(log logrus.FieldLogger) *LogMailer {
	return &LogMailer{log: log}
}

func (m *LogMailer) SendPasswordReset(_ context.Context, email, token string) error {
	m.log.WithFields(logrus.Fields{
		"to":          email,
		"reset_token": token,
	}).Info("password reset instructions")
	return nil
}
