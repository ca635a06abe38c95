package notifications

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

const (
	// TransportNameSMTP selects the authenticated SMTP transport.
	TransportNameSMTP = "smtp"
	// TransportNameResend selects the Resend hosted mailbox API transport.
	TransportNameResend = "resend"
	// TransportNameLog selects the log-only transport.
	TransportNameLog = "log"

	logEventMailTransportSelected = "mail_transport_selected"
	logEventMailTransportDegraded = "mail_transport_degraded"
	logFieldTransport             = "transport"
)

// ErrUnknownMailTransport indicates the configured transport name is not recognized.
var ErrUnknownMailTransport = errors.New("notifications: unknown mail transport")

// TransportConfig captures the transport choice and the credentials for each
// concrete implementation.
type TransportConfig struct {
	TransportName string
	SMTP          SMTPConfig
	ResendAPIKey  string
}

// NewMailer selects and constructs the configured transport. An empty
// transport name selects the log-only mailer. A named transport with
// incomplete credentials degrades to the log-only mailer with a warning so a
// misconfigured deployment keeps accepting submissions.
func NewMailer(logger *zap.Logger, configuration TransportConfig) (Mailer, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	transportName := strings.ToLower(strings.TrimSpace(configuration.TransportName))
	if transportName == "" {
		transportName = TransportNameLog
	}

	switch transportName {
	case TransportNameLog:
		logger.Info(logEventMailTransportSelected, zap.String(logFieldTransport, TransportNameLog))
		return NewLogMailer(logger), nil
	case TransportNameSMTP:
		mailer, mailerErr := NewSMTPMailer(configuration.SMTP)
		if mailerErr != nil {
			logger.Warn(logEventMailTransportDegraded, zap.String(logFieldTransport, TransportNameSMTP), zap.Error(mailerErr))
			return NewLogMailer(logger), nil
		}
		logger.Info(logEventMailTransportSelected, zap.String(logFieldTransport, TransportNameSMTP))
		return mailer, nil
	case TransportNameResend:
		mailer, mailerErr := NewResendMailer(configuration.ResendAPIKey)
		if mailerErr != nil {
			logger.Warn(logEventMailTransportDegraded, zap.String(logFieldTransport, TransportNameResend), zap.Error(mailerErr))
			return NewLogMailer(logger), nil
		}
		logger.Info(logEventMailTransportSelected, zap.String(logFieldTransport, TransportNameResend))
		return mailer, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownMailTransport, transportName)
	}
}
