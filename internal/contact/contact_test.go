package contact

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/dclhub/dcl-hub-backend/internal/events"
	"github.com/dclhub/dcl-hub-backend/internal/idgen"
	"github.com/dclhub/dcl-hub-backend/internal/kvstore"
	"github.com/dclhub/dcl-hub-backend/internal/submission"
)

func TestSubmitPublishesEvent(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	bus := events.NewLocalBus()
	ch, cancel, _ := bus.Subscribe(events.TopicContactCreated)
	defer cancel()

	svc := NewService(NewRepository(store), idgen.NanoID{}, submission.NewRecorder(nil, bus))
	msg, err := svc.Submit(ctx, CreateMessageRequest{Name: "Sam", Email: "sam@example.org", Subject: "Hi", Message: "Hello"}, "")
	if err != nil {
		t.Fatalf("Submit() error: %v", err)
	}
	if msg.Status != StatusUnread {
		t.Errorf("Status = %q, want unread", msg.Status)
	}
	if !strings.HasPrefix(msg.ID, IDPrefix) {
		t.Errorf("ID = %q, want prefix %q", msg.ID, IDPrefix)
	}

	var ev events.SubmissionCreated
	if err := json.Unmarshal(<-ch, &ev); err != nil {
		t.Fatalf("decode event: %v", err)
	}
	if ev.Key != "contact:"+msg.ID || ev.Topic != events.TopicContactCreated {
		t.Errorf("event = %+v", ev)
	}
	var record Message
	if err := json.Unmarshal(ev.Record, &record); err != nil || record.Subject != "Hi" {
		t.Errorf("event record = %s (%v)", ev.Record, err)
	}
}

func TestListCountMatchesWrites(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewRepository(kvstore.NewMemoryStore()), idgen.NanoID{}, nil)
	for i := 0; i < 7; i++ {
		if _, err := svc.Submit(ctx, CreateMessageRequest{Name: "n", Email: "e", Subject: "s", Message: "m"}, ""); err != nil {
			t.Fatalf("Submit() error: %v", err)
		}
	}
	list, err := svc.ListMessages(ctx)
	if err != nil {
		t.Fatalf("ListMessages() error: %v", err)
	}
	if len(list) != 7 {
		t.Errorf("len = %d, want 7", len(list))
	}
}

func TestSubmitIDFailure(t *testing.T) {
	store := kvstore.NewMemoryStore()
	ids := idgen.Func(func(string) (string, error) { return "", errors.New("entropy exhausted") })
	svc := NewService(NewRepository(store), ids, nil)
	if _, err := svc.Submit(context.Background(), CreateMessageRequest{Name: "n", Email: "e", Subject: "s", Message: "m"}, ""); err == nil {
		t.Fatal("Submit() error = nil, want failure")
	}
	if store.Len() != 0 {
		t.Errorf("store has %d keys, want 0", store.Len())
	}
}
