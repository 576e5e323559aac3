package eventregistration

import (
	"context"

	"github.com/dclhub/dcl-hub-backend/internal/kvstore"
)

type Repository interface {
	Create(ctx context.Context, reg *Registration) error
	List(ctx context.Context) ([]Registration, error)
	ListByEvent(ctx context.Context, eventID string) ([]Registration, error)
	IncrementCount(ctx context.Context, eventID string) (int64, error)
	Count(ctx context.Context, eventID string) (int64, error)
}

type repository struct {
	registrations *kvstore.Collection[Registration]
	counter       *kvstore.Counter
}

func NewRepository(store kvstore.Store, counter *kvstore.Counter) Repository {
	return &repository{
		registrations: kvstore.NewCollection[Registration](store, KeyPrefix),
		counter:       counter,
	}
}

func (r *repository) Create(ctx context.Context, reg *Registration) error {
	return r.registrations.Put(ctx, reg.ID, reg)
}

func (r *repository) List(ctx context.Context) ([]Registration, error) {
	return r.registrations.List(ctx)
}

// ListByEvent scans every registration and keeps those for eventID.
func (r *repository) ListByEvent(ctx context.Context, eventID string) ([]Registration, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	matched := make([]Registration, 0, len(all))
	for _, reg := range all {
		if reg.EventID == eventID {
			matched = append(matched, reg)
		}
	}
	return matched, nil
}

func (r *repository) IncrementCount(ctx context.Context, eventID string) (int64, error) {
	n, err := r.counter.Add(ctx, countKey(eventID), 1)
	return int64(n), err
}

func (r *repository) Count(ctx context.Context, eventID string) (int64, error) {
	n, err := r.counter.Value(ctx, countKey(eventID))
	return int64(n), err
}

func countKey(eventID string) string {
	return CountPrefix + ":" + eventID
}
