package donation

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/dclhub/dcl-hub-backend/internal/idgen"
	"github.com/dclhub/dcl-hub-backend/internal/submission"
)

// ErrInvalidAmount is returned when the amount is present but not a finite number.
var ErrInvalidAmount = errors.New("donation amount is not a number")

type Service interface {
	CreateDonation(ctx context.Context, req CreateDonationRequest, ip string) (*Donation, error)
	ListDonations(ctx context.Context) ([]Donation, error)
	GetCampaignStats(ctx context.Context, campaignID string) (*CampaignStats, error)
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

// CreateDonation stores the donation and, when a campaign is named, adds the amount
// to that campaign's running total. A failed total update still fails the call;
// the donation record is kept.
func (s *service) CreateDonation(ctx context.Context, req CreateDonationRequest, ip string) (*Donation, error) {
	amount, err := req.Amount.Float()
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return nil, ErrInvalidAmount
	}

	id, err := s.ids.New(IDPrefix)
	if err != nil {
		s.recorder.Failed(ctx, ActionCreated, "", err, ip, nil)
		return nil, err
	}

	donation := &Donation{
		ID:            id,
		Amount:        amount,
		Frequency:     req.Frequency,
		PaymentMethod: req.PaymentMethod,
		CampaignID:    req.CampaignID,
		Email:         req.Email,
		DonatedAt:     submission.Timestamp(s.now()),
		Status:        StatusCompleted,
	}

	if err := s.repo.Create(ctx, donation); err != nil {
		s.recorder.Failed(ctx, ActionCreated, "", err, ip, map[string]interface{}{"amount": amount})
		return nil, fmt.Errorf("storing donation: %w", err)
	}

	details := map[string]interface{}{
		"amount":    amount,
		"frequency": donation.Frequency,
	}
	if donation.CampaignID != "" {
		details["campaignId"] = donation.CampaignID
		total, err := s.repo.AddToCampaignTotal(ctx, donation.CampaignID, amount)
		if err != nil {
			s.recorder.Failed(ctx, ActionCreated, KeyPrefix+":"+id, err, ip, details)
			return nil, fmt.Errorf("updating campaign total %s: %w", donation.CampaignID, err)
		}
		details["campaignTotal"] = total
	}

	log.Info().Str("donation_id", id).Float64("amount", amount).Str("campaign_id", donation.CampaignID).Msg("✅ Donation created")
	s.recorder.Created(ctx, KeyPrefix, ActionCreated, id, donation, ip, details)
	return donation, nil
}

func (s *service) ListDonations(ctx context.Context) ([]Donation, error) {
	return s.repo.List(ctx)
}

// GetCampaignStats reports 0 for campaigns that never received a donation.
func (s *service) GetCampaignStats(ctx context.Context, campaignID string) (*CampaignStats, error) {
	total, err := s.repo.CampaignTotal(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	return &CampaignStats{CampaignID: campaignID, TotalRaised: total}, nil
}
