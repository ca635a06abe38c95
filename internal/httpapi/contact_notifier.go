package httpapi

import (
	"context"

	"github.com/louis833/Donnachy-Electrical/internal/model"
)

// ContactNotifier dispatches the two notification messages for a stored
// contact submission. Either send may fail independently; callers catch and
// log each failure without affecting the HTTP outcome.
type ContactNotifier interface {
	NotifyOwner(ctx context.Context, submission model.ContactSubmission) error
	NotifyCustomer(ctx context.Context, submission model.ContactSubmission) error
}

type noopContactNotifier struct{}

func (noopContactNotifier) NotifyOwner(ctx context.Context, submission model.ContactSubmission) error {
	return nil
}

func (noopContactNotifier) NotifyCustomer(ctx context.Context, submission model.ContactSubmission) error {
	return nil
}

func resolveContactNotifier(notifier ContactNotifier) ContactNotifier {
	if notifier == nil {
		return noopContactNotifier{}
	}
	return notifier
}
