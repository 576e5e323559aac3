package notification

import (
	"context"

	"github.com/rs/zerolog/log"
)

// Channel delivers one message to a set of recipients. What a recipient is
// depends on the channel: email addresses for SMTP, topic names for FCM.
type Channel interface {
	Send(ctx context.Context, recipients []string, subject, body string) error
}

// Message is a rendered notification ready for a Channel.
type Message struct {
	To      []string
	Subject string
	Body    string
}

// disabledChannel drops messages when a channel is not configured.
type disabledChannel struct {
	name string
}

func (d disabledChannel) Send(_ context.Context, recipients []string, subject, _ string) error {
	log.Debug().Str("channel", d.name).Strs("to", recipients).Str("subject", subject).Msg("channel disabled, message dropped")
	return nil
}
