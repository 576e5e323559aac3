package contact

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/dclhub/dcl-hub-backend/internal/idgen"
	"github.com/dclhub/dcl-hub-backend/internal/submission"
)

type Service interface {
	Submit(ctx context.Context, req CreateMessageRequest, ip string) (*Message, error)
	ListMessages(ctx context.Context) ([]Message, error)
}

type service struct {
	repo     Repository
	ids      idgen.Generator
	recorder *submission.Recorder
	now      func() time.Time
}

func NewService(repo Repository, ids idgen.Generator, recorder *submission.Recorder) Service {
	return &service{repo: repo, ids: ids, recorder: recorder, now: time.Now}
}

// Submit stores a contact form message. New messages start unread.
func (s *service) Submit(ctx context.Context, req CreateMessageRequest, ip string) (*Message, error) {
	id, err := s.ids.New(IDPrefix)
	if err != nil {
		s.recorder.Failed(ctx, ActionCreated, "", err, ip, nil)
		return nil, err
	}

	msg := &Message{
		ID:          id,
		Name:        req.Name,
		Email:       req.Email,
		Subject:     req.Subject,
		Message:     req.Message,
		SubmittedAt: submission.Timestamp(s.now()),
		Status:      StatusUnread,
	}
	if err := s.repo.Create(ctx, msg); err != nil {
		s.recorder.Failed(ctx, ActionCreated, "", err, ip, map[string]interface{}{"subject": msg.Subject})
		return nil, fmt.Errorf("storing contact submission: %w", err)
	}

	log.Info().Str("contact_id", id).Msg("✅ Contact form submission created")
	s.recorder.Created(ctx, KeyPrefix, ActionCreated, id, msg, ip, map[string]interface{}{"subject": msg.Subject})
	return msg, nil
}

func (s *service) ListMessages(ctx context.Context) ([]Message, error) {
	return s.repo.List(ctx)
}
