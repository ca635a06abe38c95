package notifications

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/resend/resend-go/v2"
)

var ErrMissingResendAPIKey = errors.New("notifications: resend api key is required")

// ResendMailer delivers messages through the Resend hosted mailbox API.
type ResendMailer struct {
	client *resend.Client
}

// NewResendMailer creates a ResendMailer authenticated with the given API key.
func NewResendMailer(apiKey string) (*ResendMailer, error) {
	trimmedKey := strings.TrimSpace(apiKey)
	if trimmedKey == "" {
		return nil, ErrMissingResendAPIKey
	}
	return &ResendMailer{client: resend.NewClient(trimmedKey)}, nil
}

// Send delivers one message through the hosted API.
func (mailer *ResendMailer) Send(ctx context.Context, message OutboundMessage) error {
	request := &resend.SendEmailRequest{
		From:    message.FromAddress,
		To:      []string{message.ToAddress},
		Subject: message.Subject,
		Html:    message.HTMLBody,
	}
	if message.ReplyToAddress != "" {
		request.ReplyTo = message.ReplyToAddress
	}

	if _, sendErr := mailer.client.Emails.SendWithContext(ctx, request); sendErr != nil {
		return fmt.Errorf("resend mailer: send: %w", sendErr)
	}
	return nil
}
