package volunteer

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/dclhub/dcl-hub-backend/internal/idgen"
	"github.com/dclhub/dcl-hub-backend/internal/submission"
)

type Service interface {
	Apply(ctx context.Context, req CreateApplicationRequest, ip string) (*Application, error)
	ListApplications(ctx context.Context) ([]Application, error)
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

func (s *service) Apply(ctx context.Context, req CreateApplicationRequest, ip string) (*Application, error) {
	id, err := s.ids.New(IDPrefix)
	if err != nil {
		s.recorder.Failed(ctx, ActionCreated, "", err, ip, nil)
		return nil, err
	}

	app := &Application{
		ID:           id,
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Skills:       req.Skills,
		Availability: req.Availability,
		Message:      req.Message,
		AppliedAt:    submission.Timestamp(s.now()),
		Status:       StatusPending,
	}
	if err := s.repo.Create(ctx, app); err != nil {
		s.recorder.Failed(ctx, ActionCreated, "", err, ip, nil)
		return nil, fmt.Errorf("storing volunteer application: %w", err)
	}

	log.Info().Str("volunteer_id", id).Msg("✅ Volunteer application created")
	s.recorder.Created(ctx, KeyPrefix, ActionCreated, id, app, ip, map[string]interface{}{
		"skills":       app.Skills,
		"availability": app.Availability,
	})
	return app, nil
}

func (s *service) ListApplications(ctx context.Context) ([]Application, error) {
	return s.repo.List(ctx)
}
