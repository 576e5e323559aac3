package eventregistration

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/dclhub/dcl-hub-backend/internal/idgen"
	"github.com/dclhub/dcl-hub-backend/internal/submission"
)

type Service interface {
	Register(ctx context.Context, req CreateRegistrationRequest, ip string) (*Registration, error)
	ListByEvent(ctx context.Context, eventID string) ([]Registration, error)
	GetEventStats(ctx context.Context, eventID string) (*EventStats, error)
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

// Register stores the registration and bumps the event's registration count.
func (s *service) Register(ctx context.Context, req CreateRegistrationRequest, ip string) (*Registration, error) {
	id, err := s.ids.New(IDPrefix)
	if err != nil {
		s.recorder.Failed(ctx, ActionCreated, "", err, ip, nil)
		return nil, err
	}

	reg := &Registration{
		ID:             id,
		EventID:        req.EventID,
		FullName:       req.FullName,
		Email:          req.Email,
		Phone:          req.Phone,
		AttendanceType: req.AttendanceType,
		Organization:   req.Organization,
		RegisteredAt:   submission.Timestamp(s.now()),
	}

	details := map[string]interface{}{
		"eventId":        reg.EventID,
		"attendanceType": reg.AttendanceType,
	}
	if err := s.repo.Create(ctx, reg); err != nil {
		s.recorder.Failed(ctx, ActionCreated, "", err, ip, details)
		return nil, fmt.Errorf("storing registration: %w", err)
	}

	count, err := s.repo.IncrementCount(ctx, reg.EventID)
	if err != nil {
		s.recorder.Failed(ctx, ActionCreated, KeyPrefix+":"+id, err, ip, details)
		return nil, fmt.Errorf("updating registration count for %s: %w", reg.EventID, err)
	}
	details["registrationCount"] = count

	log.Info().Str("registration_id", id).Str("event_id", reg.EventID).Msg("✅ Event registration created")
	s.recorder.Created(ctx, KeyPrefix, ActionCreated, id, reg, ip, details)
	return reg, nil
}

func (s *service) ListByEvent(ctx context.Context, eventID string) ([]Registration, error) {
	return s.repo.ListByEvent(ctx, eventID)
}

func (s *service) GetEventStats(ctx context.Context, eventID string) (*EventStats, error) {
	count, err := s.repo.Count(ctx, eventID)
	if err != nil {
		return nil, err
	}
	return &EventStats{EventID: eventID, RegistrationCount: count}, nil
}
