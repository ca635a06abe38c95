package notifications

import (
	"context"

	"go.uber.org/zap"
)

// LogMailer records the full intended message instead of sending it. It is
// the operating mode for deployments without mail credentials: submissions
// are still accepted and the would-be emails stay visible to operators.
type LogMailer struct {
	logger *zap.Logger
}

// NewLogMailer creates a LogMailer writing through the given logger.
func NewLogMailer(logger *zap.Logger) *LogMailer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogMailer{logger: logger}
}

// Send logs the message and reports success.
func (mailer *LogMailer) Send(ctx context.Context, message OutboundMessage) error {
	mailer.logger.Info("email_not_sent_logging_instead",
		zap.String("from", message.FromAddress),
		zap.String("to", message.ToAddress),
		zap.String("reply_to", message.ReplyToAddress),
		zap.String("subject", message.Subject),
		zap.String("body", message.HTMLBody),
	)
	return nil
}
