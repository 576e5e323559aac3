package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Event topic constants
const (
	TopicEventRegistrationCreated = "submission.event_registration.created"
	TopicDonationCreated          = "submission.donation.created"
	TopicVolunteerCreated         = "submission.volunteer.created"
	TopicPartnershipCreated       = "submission.partnership.created"
	TopicContactCreated           = "submission.contact.created"

	// TopicAllSubmissions matches every submission topic.
	TopicAllSubmissions = "submission.>"
)

// SubmissionCreated is published after a submission record has been written.
type SubmissionCreated struct {
	Topic     string          `json:"topic"`
	Kind      string          `json:"kind"` // key prefix, e.g. "donation"
	ID        string          `json:"id"`
	Key       string          `json:"key"`
	Record    json.RawMessage `json:"record"`
	CreatedAt time.Time       `json:"createdAt"`
}

// NewSubmissionCreated builds the event for a record stored under "<kind>:<id>".
func NewSubmissionCreated(kind, id string, record any) (SubmissionCreated, error) {
	data, err := json.Marshal(record)
	if err != nil {
		return SubmissionCreated{}, fmt.Errorf("marshaling %s record: %w", kind, err)
	}
	return SubmissionCreated{
		Topic:     "submission." + kind + ".created",
		Kind:      kind,
		ID:        id,
		Key:       kind + ":" + id,
		Record:    data,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// Publisher is the interface for emitting events.
type Publisher interface {
	Publish(ctx context.Context, topic string, event any) error
	Close() error
}

// Subscriber receives events from the event bus.
type Subscriber interface {
	// Subscribe delivers raw event payloads for topics matching pattern on the
	// returned channel. Call the returned cancel function to unsubscribe and
	// close the channel.
	Subscribe(pattern string) (<-chan []byte, func(), error)
	Close() error
}

// MatchTopic reports whether topic matches a NATS-style pattern where "*"
// matches one dot-separated token and a trailing ">" matches one or more.
func MatchTopic(pattern, topic string) bool {
	pt := strings.Split(pattern, ".")
	tt := strings.Split(topic, ".")
	for i, p := range pt {
		if p == ">" {
			return i == len(pt)-1 && len(tt) > i
		}
		if i >= len(tt) {
			return false
		}
		if p != "*" && p != tt[i] {
			return false
		}
	}
	return len(pt) == len(tt)
}
