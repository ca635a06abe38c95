package notifications_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/louis833/Donnachy-Electrical/internal/notifications"
)

func TestNewMailerDefaultsToLogTransport(t *testing.T) {
	mailer, mailerErr := notifications.NewMailer(zap.NewNop(), notifications.TransportConfig{})
	require.NoError(t, mailerErr)
	require.IsType(t, &notifications.LogMailer{}, mailer)
}

func TestNewMailerRejectsUnknownTransport(t *testing.T) {
	_, mailerErr := notifications.NewMailer(zap.NewNop(), notifications.TransportConfig{TransportName: "carrier-pigeon"})
	require.ErrorIs(t, mailerErr, notifications.ErrUnknownMailTransport)
}

func TestNewMailerDegradesToLogWhenSMTPCredentialsMissing(t *testing.T) {
	observedCore, observedLogs := observer.New(zap.InfoLevel)

	mailer, mailerErr := notifications.NewMailer(zap.New(observedCore), notifications.TransportConfig{
		TransportName: notifications.TransportNameSMTP,
	})
	require.NoError(t, mailerErr)
	require.IsType(t, &notifications.LogMailer{}, mailer)
	require.Equal(t, 1, observedLogs.FilterMessage("mail_transport_degraded").Len())
}

func TestNewMailerDegradesToLogWhenResendKeyMissing(t *testing.T) {
	mailer, mailerErr := notifications.NewMailer(zap.NewNop(), notifications.TransportConfig{
		TransportName: notifications.TransportNameResend,
	})
	require.NoError(t, mailerErr)
	require.IsType(t, &notifications.LogMailer{}, mailer)
}

func TestNewMailerBuildsSMTPTransportWithFullCredentials(t *testing.T) {
	mailer, mailerErr := notifications.NewMailer(zap.NewNop(), notifications.TransportConfig{
		TransportName: notifications.TransportNameSMTP,
		SMTP: notifications.SMTPConfig{
			Host:     "smtp.example.com",
			Port:     587,
			Username: "mailer",
			Password: "secret",
		},
	})
	require.NoError(t, mailerErr)
	require.IsType(t, &notifications.SMTPMailer{}, mailer)
}

func TestNewMailerBuildsResendTransportWithAPIKey(t *testing.T) {
	mailer, mailerErr := notifications.NewMailer(zap.NewNop(), notifications.TransportConfig{
		TransportName: notifications.TransportNameResend,
		ResendAPIKey:  "re_test_key",
	})
	require.NoError(t, mailerErr)
	require.IsType(t, &notifications.ResendMailer{}, mailer)
}

func TestLogMailerRecordsFullMessageAndSucceeds(t *testing.T) {
	observedCore, observedLogs := observer.New(zap.InfoLevel)
	mailer := notifications.NewLogMailer(zap.New(observedCore))

	sendErr := mailer.Send(context.Background(), notifications.OutboundMessage{
		FromAddress: "noreply@donnachyelectrical.com.au",
		ToAddress:   "scott@donnachyelectrical.com.au",
		Subject:     "New Solar Quote Request - Other",
		HTMLBody:    "<p>body</p>",
	})
	require.NoError(t, sendErr)

	logged := observedLogs.FilterMessage("email_not_sent_logging_instead")
	require.Equal(t, 1, logged.Len())
	loggedFields := logged.All()[0].ContextMap()
	require.Equal(t, "scott@donnachyelectrical.com.au", loggedFields["to"])
	require.Equal(t, "New Solar Quote Request - Other", loggedFields["subject"])
}
