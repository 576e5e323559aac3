package partnership

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/dclhub/dcl-hub-backend/internal/idgen"
	"github.com/dclhub/dcl-hub-backend/internal/submission"
)

type Service interface {
	CreateInquiry(ctx context.Context, req CreateInquiryRequest, ip string) (*Inquiry, error)
	ListInquiries(ctx context.Context) ([]Inquiry, error)
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

func (s *service) CreateInquiry(ctx context.Context, req CreateInquiryRequest, ip string) (*Inquiry, error) {
	id, err := s.ids.New(IDPrefix)
	if err != nil {
		s.recorder.Failed(ctx, ActionCreated, "", err, ip, nil)
		return nil, err
	}

	inquiry := &Inquiry{
		ID:               id,
		OrganizationName: req.OrganizationName,
		ContactPerson:    req.ContactPerson,
		Email:            req.Email,
		Phone:            req.Phone,
		PartnershipType:  req.PartnershipType,
		Message:          req.Message,
		SubmittedAt:      submission.Timestamp(s.now()),
		Status:           StatusPending,
	}
	details := map[string]interface{}{
		"organizationName": inquiry.OrganizationName,
		"partnershipType":  inquiry.PartnershipType,
	}
	if err := s.repo.Create(ctx, inquiry); err != nil {
		s.recorder.Failed(ctx, ActionCreated, "", err, ip, details)
		return nil, fmt.Errorf("storing partnership inquiry: %w", err)
	}

	log.Info().Str("partnership_id", id).Str("organization", inquiry.OrganizationName).Msg("✅ Partnership inquiry created")
	s.recorder.Created(ctx, KeyPrefix, ActionCreated, id, inquiry, ip, details)
	return inquiry, nil
}

func (s *service) ListInquiries(ctx context.Context) ([]Inquiry, error) {
	return s.repo.List(ctx)
}
