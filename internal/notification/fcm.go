package notification

import (
	"context"
	"errors"
	"fmt"

	"firebase.google.com/go/v4/messaging"
	"github.com/rs/zerolog/log"
)

// topicSender is the part of *messaging.Client used here.
type topicSender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

// FCMChannel implements Channel by pushing to FCM topics. Staff devices
// subscribe to the configured topic from the admin app.
type FCMChannel struct {
	client topicSender
}

// NewFCMChannel wraps client, or returns a no-op channel when FCM is not initialized.
func NewFCMChannel(client *messaging.Client) Channel {
	if client == nil {
		log.Warn().Msg("⚠️ FCM not initialized, staff pushes disabled")
		return disabledChannel{name: "fcm"}
	}
	return &FCMChannel{client: client}
}

// Send pushes one notification per topic in recipients.
func (f *FCMChannel) Send(ctx context.Context, recipients []string, subject, body string) error {
	if len(recipients) == 0 {
		return fmt.Errorf("no FCM topics provided")
	}

	var errs []error
	for _, topic := range recipients {
		message := &messaging.Message{
			Topic: topic,
			Notification: &messaging.Notification{
				Title: subject,
				Body:  body,
			},
			Android: &messaging.AndroidConfig{
				Priority: "high",
				Notification: &messaging.AndroidNotification{
					ChannelID:    "submissions",
					DefaultSound: true,
				},
			},
			Webpush: &messaging.WebpushConfig{
				Notification: &messaging.WebpushNotification{
					Title: subject,
					Body:  body,
					Icon:  "/icon-192x192.png",
				},
			},
		}

		response, err := f.client.Send(ctx, message)
		if err != nil {
			errs = append(errs, fmt.Errorf("topic %s: %w", topic, err))
			continue
		}
		log.Info().Str("topic", topic).Str("message_id", response).Msg("✅ FCM topic message sent")
	}
	return errors.Join(errs...)
}
