// Package notify delivers reservation notifications. The lifecycle engine
// speaks to a Sender; delivery failures are logged by the caller and never
// surfaced to the interactive loop.
package notify

import (
	"context"

	"github.com/acortes/libreserve/internal/logging"
)

// Sender delivers a single message to a recipient. Implementations may fail;
// callers decide whether to retry on a later pass.
type Sender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// LogSender writes notifications to the log instead of delivering them. Used
// when no SMTP host is configured or notifications are disabled; a "send" via
// LogSender counts as dispatched.
type LogSender struct {
	logger logging.Logger
}

func NewLogSender(logger logging.Logger) *LogSender {
	return &LogSender{logger: logger}
}

func (s *LogSender) Send(ctx context.Context, to, subject, body string) error {
	s.logger.Info(ctx, "notification (mail disabled)", "to", to, "subject", subject)
	return nil
}
