package partnership

import (
	"context"

	"github.com/dclhub/dcl-hub-backend/internal/kvstore"
)

type Repository interface {
	Create(ctx context.Context, inquiry *Inquiry) error
	List(ctx context.Context) ([]Inquiry, error)
}

type repository struct {
	inquiries *kvstore.Collection[Inquiry]
}

func NewRepository(store kvstore.Store) Repository {
	return &repository{inquiries: kvstore.NewCollection[Inquiry](store, KeyPrefix)}
}

func (r *repository) Create(ctx context.Context, inquiry *Inquiry) error {
	return r.inquiries.Put(ctx, inquiry.ID, inquiry)
}

func (r *repository) List(ctx context.Context) ([]Inquiry, error) {
	return r.inquiries.List(ctx)
}
