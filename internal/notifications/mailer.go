package notifications

import "context"

// OutboundMessage is a single rendered email ready for dispatch.
type OutboundMessage struct {
	FromAddress    string
	ToAddress      string
	ReplyToAddress string
	Subject        string
	HTMLBody       string
}

// Mailer dispatches a rendered message through one concrete transport. The
// transport is chosen once at startup; call sites never branch on it.
type Mailer interface {
	Send(ctx context.Context, message OutboundMessage) error
}
