package notifications

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/louis833/Donnachy-Electrical/internal/model"
)

const defaultOperationTimeout = 30 * time.Second

var (
	ErrMissingMailer        = errors.New("notifications: mailer is required")
	ErrMissingSenderAddress = errors.New("notifications: sender address is required")
	ErrMissingOwnerAddress  = errors.New("notifications: owner address is required")
)

// NotifierConfig captures the addressing and branding used in both messages.
type NotifierConfig struct {
	SenderAddress    string
	OwnerAddress     string
	BusinessName     string
	BusinessPhone    string
	OperationTimeout time.Duration
}

// ContactNotifier renders and dispatches the two notification messages for a
// contact submission. Both operations read only from the submission they are
// given and never retry internally; transport failures surface to the caller.
type ContactNotifier struct {
	mailer           Mailer
	senderAddress    string
	ownerAddress     string
	businessName     string
	businessPhone    string
	operationTimeout time.Duration
}

// NewContactNotifier creates a ContactNotifier over the given transport.
func NewContactNotifier(mailer Mailer, configuration NotifierConfig) (*ContactNotifier, error) {
	if mailer == nil {
		return nil, ErrMissingMailer
	}

	senderAddress := strings.TrimSpace(configuration.SenderAddress)
	if senderAddress == "" {
		return nil, ErrMissingSenderAddress
	}

	ownerAddress := strings.TrimSpace(configuration.OwnerAddress)
	if ownerAddress == "" {
		return nil, ErrMissingOwnerAddress
	}

	operationTimeout := configuration.OperationTimeout
	if operationTimeout <= 0 {
		operationTimeout = defaultOperationTimeout
	}

	return &ContactNotifier{
		mailer:           mailer,
		senderAddress:    senderAddress,
		ownerAddress:     ownerAddress,
		businessName:     strings.TrimSpace(configuration.BusinessName),
		businessPhone:    strings.TrimSpace(configuration.BusinessPhone),
		operationTimeout: operationTimeout,
	}, nil
}

// NotifyOwner sends the new-submission alert to the configured business
// address. The reply-to is set to the submitter so the business can respond
// directly.
func (notifier *ContactNotifier) NotifyOwner(ctx context.Context, submission model.ContactSubmission) error {
	messageBody, renderErr := RenderOwnerMessageBody(notifier.businessName, submission)
	if renderErr != nil {
		return renderErr
	}

	message := OutboundMessage{
		FromAddress:    notifier.senderAddress,
		ToAddress:      notifier.ownerAddress,
		ReplyToAddress: submission.Email,
		Subject:        OwnerMessageSubject(submission),
		HTMLBody:       messageBody,
	}

	return notifier.dispatch(ctx, message)
}

// NotifyCustomer sends the receipt acknowledgment to the submitter's own
// address.
func (notifier *ContactNotifier) NotifyCustomer(ctx context.Context, submission model.ContactSubmission) error {
	messageBody, renderErr := RenderCustomerMessageBody(notifier.businessName, notifier.businessPhone, submission)
	if renderErr != nil {
		return renderErr
	}

	message := OutboundMessage{
		FromAddress: notifier.senderAddress,
		ToAddress:   submission.Email,
		Subject:     CustomerMessageSubject(notifier.businessName),
		HTMLBody:    messageBody,
	}

	return notifier.dispatch(ctx, message)
}

func (notifier *ContactNotifier) dispatch(ctx context.Context, message OutboundMessage) error {
	sendCtx, cancel := context.WithTimeout(ctx, notifier.operationTimeout)
	defer cancel()

	if sendErr := notifier.mailer.Send(sendCtx, message); sendErr != nil {
		return fmt.Errorf("notifications: send to %s: %w", message.ToAddress, sendErr)
	}
	return nil
}
