package resource

import (
	"context"
	"time"
)

// Timestamped is satisfied by every model embedding models.TimeModel.
type Timestamped interface {
	Touch(now time.Time)
}

// Repository is the storage contract for one entity collection.
// FindByID returns (nil, nil) when the document does not exist.
type Repository[T any] interface {
	ListAll(ctx context.Context) ([]T, error)
	FindByID(ctx context.Context, id string) (*T, error)
	Insert(ctx context.Context, model *T) (string, error)
	Update(ctx context.Context, id string, model *T) error
	UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error
	Delete(ctx context.Context, id string) error
}

// Usecase is the shared behavior of every entity: list with a per-collection
// cache, mutations that invalidate that cache and emit a notification event.
type Usecase[T any] interface {
	ListAll(ctx context.Context) ([]T, error)
	FindByID(ctx context.Context, id string) (*T, error)
	Create(ctx context.Context, model *T) (*T, error)
	Update(ctx context.Context, id string, model *T) (*T, error)
	UpdateFields(ctx context.Context, id string, fields map[string]interface{}) (*T, error)
	Delete(ctx context.Context, id string) error
}
