package notifications

import (
	"context"
	"errors"
	"fmt"
	"strings"

	gomail "github.com/wneessen/go-mail"
)

const defaultSMTPPort = 587

var (
	ErrMissingSMTPHost     = errors.New("notifications: smtp host is required")
	ErrMissingSMTPUsername = errors.New("notifications: smtp username is required")
	ErrMissingSMTPPassword = errors.New("notifications: smtp password is required")
)

// SMTPConfig captures connection settings for the SMTP transport.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
}

// SMTPMailer delivers messages over authenticated SMTP with mandatory
// STARTTLS.
type SMTPMailer struct {
	host     string
	port     int
	username string
	password string
}

// NewSMTPMailer creates an SMTPMailer from the given configuration.
func NewSMTPMailer(configuration SMTPConfig) (*SMTPMailer, error) {
	host := strings.TrimSpace(configuration.Host)
	if host == "" {
		return nil, ErrMissingSMTPHost
	}
	username := strings.TrimSpace(configuration.Username)
	if username == "" {
		return nil, ErrMissingSMTPUsername
	}
	if configuration.Password == "" {
		return nil, ErrMissingSMTPPassword
	}

	port := configuration.Port
	if port <= 0 {
		port = defaultSMTPPort
	}

	return &SMTPMailer{
		host:     host,
		port:     port,
		username: username,
		password: configuration.Password,
	}, nil
}

// Send delivers one message. A fresh connection is dialed per send; the
// contact form's volume does not warrant connection pooling.
func (mailer *SMTPMailer) Send(ctx context.Context, message OutboundMessage) error {
	outbound := gomail.NewMsg()
	if fromErr := outbound.From(message.FromAddress); fromErr != nil {
		return fmt.Errorf("smtp mailer: from address: %w", fromErr)
	}
	if toErr := outbound.To(message.ToAddress); toErr != nil {
		return fmt.Errorf("smtp mailer: to address: %w", toErr)
	}
	if message.ReplyToAddress != "" {
		if replyToErr := outbound.ReplyTo(message.ReplyToAddress); replyToErr != nil {
			return fmt.Errorf("smtp mailer: reply-to address: %w", replyToErr)
		}
	}
	outbound.Subject(message.Subject)
	outbound.SetBodyString(gomail.TypeTextHTML, message.HTMLBody)

	client, clientErr := gomail.NewClient(
		mailer.host,
		gomail.WithPort(mailer.port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(mailer.username),
		gomail.WithPassword(mailer.password),
		gomail.WithTLSPolicy(gomail.TLSMandatory),
	)
	if clientErr != nil {
		return fmt.Errorf("smtp mailer: client: %w", clientErr)
	}

	if sendErr := client.DialAndSendWithContext(ctx, outbound); sendErr != nil {
		return fmt.Errorf("smtp mailer: send: %w", sendErr)
	}
	return nil
}
