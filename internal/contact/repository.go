package contact

import (
	"context"

	"github.com/dclhub/dcl-hub-backend/internal/kvstore"
)

type Repository interface {
	Create(ctx context.Context, msg *Message) error
	List(ctx context.Context) ([]Message, error)
}

type repository struct {
	messages *kvstore.Collection[Message]
}

func NewRepository(store kvstore.Store) Repository {
	return &repository{messages: kvstore.NewCollection[Message](store, KeyPrefix)}
}

func (r *repository) Create(ctx context.Context, msg *Message) error {
	return r.messages.Put(ctx, msg.ID, msg)
}

func (r *repository) List(ctx context.Context) ([]Message, error) {
	return r.messages.List(ctx)
}
