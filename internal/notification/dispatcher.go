package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/dclhub/dcl-hub-backend/internal/events"
)

// Dispatcher turns submission events into confirmation emails and staff pushes.
type Dispatcher struct {
	sub        events.Subscriber
	email      Channel
	push       Channel
	staffTopic string
}

func NewDispatcher(sub events.Subscriber, email, push Channel, staffTopic string) *Dispatcher {
	return &Dispatcher{sub: sub, email: email, push: push, staffTopic: staffTopic}
}

// Run consumes submission events until ctx is cancelled or the subscription closes.
func (d *Dispatcher) Run(ctx context.Context) error {
	ch, cancel, err := d.sub.Subscribe(events.TopicAllSubmissions)
	if err != nil {
		return fmt.Errorf("subscribing to %s: %w", events.TopicAllSubmissions, err)
	}
	defer cancel()

	log.Info().Str("pattern", events.TopicAllSubmissions).Msg("🔔 Notification dispatcher started")
	for {
		select {
		case <-ctx.Done():
			return nil
		case data, ok := <-ch:
			if !ok {
				return nil
			}
			var ev events.SubmissionCreated
			if err := json.Unmarshal(data, &ev); err != nil {
				log.Error().Err(err).Msg("❌ Undecodable submission event")
				continue
			}
			d.Handle(ctx, ev)
		}
	}
}

// Handle sends the notifications for one event. Channel failures are logged, not retried.
func (d *Dispatcher) Handle(ctx context.Context, ev events.SubmissionCreated) {
	confirmation, staff, err := Compose(ev, d.staffTopic)
	if err != nil {
		log.Error().Err(err).Str("key", ev.Key).Msg("❌ Composing notification failed")
		return
	}
	if confirmation != nil && d.email != nil {
		if err := d.email.Send(ctx, confirmation.To, confirmation.Subject, confirmation.Body); err != nil {
			log.Error().Err(err).Str("key", ev.Key).Msg("❌ Confirmation email failed")
		}
	}
	if staff != nil && d.push != nil {
		if err := d.push.Send(ctx, staff.To, staff.Subject, staff.Body); err != nil {
			log.Error().Err(err).Str("key", ev.Key).Msg("❌ Staff push failed")
		}
	}
}
