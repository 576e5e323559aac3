package volunteer

import (
	"context"

	"github.com/dclhub/dcl-hub-backend/internal/kvstore"
)

type Repository interface {
	Create(ctx context.Context, app *Application) error
	List(ctx context.Context) ([]Application, error)
}

type repository struct {
	apps *kvstore.Collection[Application]
}

func NewRepository(store kvstore.Store) Repository {
	return &repository{apps: kvstore.NewCollection[Application](store, KeyPrefix)}
}

func (r *repository) Create(ctx context.Context, app *Application) error {
	return r.apps.Put(ctx, app.ID, app)
}

func (r *repository) List(ctx context.Context) ([]Application, error) {
	return r.apps.List(ctx)
}
