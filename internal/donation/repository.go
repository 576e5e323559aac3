package donation

import (
	"context"

	"github.com/dclhub/dcl-hub-backend/internal/kvstore"
)

type Repository interface {
	Create(ctx context.Context, donation *Donation) error
	List(ctx context.Context) ([]Donation, error)
	AddToCampaignTotal(ctx context.Context, campaignID string, amount float64) (float64, error)
	CampaignTotal(ctx context.Context, campaignID string) (float64, error)
}

type repository struct {
	donations *kvstore.Collection[Donation]
	counter   *kvstore.Counter
}

func NewRepository(store kvstore.Store, counter *kvstore.Counter) Repository {
	return &repository{
		donations: kvstore.NewCollection[Donation](store, KeyPrefix),
		counter:   counter,
	}
}

func (r *repository) Create(ctx context.Context, donation *Donation) error {
	return r.donations.Put(ctx, donation.ID, donation)
}

func (r *repository) List(ctx context.Context) ([]Donation, error) {
	return r.donations.List(ctx)
}

func (r *repository) AddToCampaignTotal(ctx context.Context, campaignID string, amount float64) (float64, error) {
	return r.counter.Add(ctx, campaignTotalKey(campaignID), amount)
}

func (r *repository) CampaignTotal(ctx context.Context, campaignID string) (float64, error) {
	return r.counter.Value(ctx, campaignTotalKey(campaignID))
}

func campaignTotalKey(campaignID string) string {
	return CampaignTotalPrefix + ":" + campaignID
}
