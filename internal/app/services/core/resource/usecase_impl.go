package resource

import (
	"caretray-service/internal/app/contracts"
	"caretray-service/internal/pkg/constvars"
	"caretray-service/internal/pkg/exceptions"
	"context"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/sync/singleflight"
)

type crudUsecase[T any] struct {
	repository   Repository[T]
	cache        contracts.RedisRepository
	publisher    contracts.EventPublisher
	resourceName string
	cacheTTL     time.Duration
	group        singleflight.Group
}

func NewUsecase[T any](
	repository Repository[T],
	cache contracts.RedisRepository,
	publisher contracts.EventPublisher,
	resourceName string,
	cacheTTL time.Duration,
) Usecase[T] {
	return &crudUsecase[T]{
		repository:   repository,
		cache:        cache,
		publisher:    publisher,
		resourceName: resourceName,
		cacheTTL:     cacheTTL,
	}
}

func (uc *crudUsecase[T]) cacheKey() string {
	return constvars.RedisKeyCollectionList + uc.resourceName
}

// ListAll serves the collection from Redis when possible. On a miss,
// concurrent callers are collapsed into a single Mongo query.
func (uc *crudUsecase[T]) ListAll(ctx context.Context) ([]T, error) {
	cached, err := uc.cache.Get(ctx, uc.cacheKey())
	if err == nil && cached != "" {
		var items []T
		if err := json.Unmarshal([]byte(cached), &items); err == nil {
			return items, nil
		}
	}

	result, err, _ := uc.group.Do(uc.cacheKey(), func() (interface{}, error) {
		items, err := uc.repository.ListAll(ctx)
		if err != nil {
			return nil, err
		}
		// Cache refresh is best effort; a Redis outage must not take
		// listing down with it.
		_ = uc.cache.Set(ctx, uc.cacheKey(), items, uc.cacheTTL)
		return items, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]T), nil
}

func (uc *crudUsecase[T]) FindByID(ctx context.Context, id string) (*T, error) {
	item, err := uc.repository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, exceptions.ErrResourceNotFound(uc.resourceName)
	}
	return item, nil
}

func (uc *crudUsecase[T]) Create(ctx context.Context, model *T) (*T, error) {
	if ts, ok := any(model).(Timestamped); ok {
		ts.Touch(time.Now())
	}

	id, err := uc.repository.Insert(ctx, model)
	if err != nil {
		return nil, err
	}

	uc.afterMutation(ctx, contracts.EventCreated, id, "")
	return uc.repository.FindByID(ctx, id)
}

func (uc *crudUsecase[T]) Update(ctx context.Context, id string, model *T) (*T, error) {
	existing, err := uc.repository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, exceptions.ErrResourceNotFound(uc.resourceName)
	}

	if err := uc.repository.Update(ctx, id, model); err != nil {
		return nil, err
	}

	uc.afterMutation(ctx, contracts.EventUpdated, id, "")
	return uc.repository.FindByID(ctx, id)
}

// UpdateFields patches the named fields only, leaving the rest of the
// document untouched. Status transitions go through here.
func (uc *crudUsecase[T]) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) (*T, error) {
	existing, err := uc.repository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, exceptions.ErrResourceNotFound(uc.resourceName)
	}

	if err := uc.repository.UpdateFields(ctx, id, fields); err != nil {
		return nil, err
	}

	status, _ := fields["status"].(string)
	event := contracts.EventUpdated
	if status != "" {
		event = contracts.EventStatusChanged
	}
	uc.afterMutation(ctx, event, id, status)
	return uc.repository.FindByID(ctx, id)
}

func (uc *crudUsecase[T]) Delete(ctx context.Context, id string) error {
	existing, err := uc.repository.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return exceptions.ErrResourceNotFound(uc.resourceName)
	}

	if err := uc.repository.Delete(ctx, id); err != nil {
		return err
	}

	uc.afterMutation(ctx, contracts.EventDeleted, id, "")
	return nil
}

// afterMutation drops the stale collection cache and emits a notification
// event. Both are best effort; the write already succeeded.
func (uc *crudUsecase[T]) afterMutation(ctx context.Context, event, id, status string) {
	_ = uc.cache.Delete(ctx, uc.cacheKey())
	if uc.publisher != nil {
		_ = uc.publisher.Publish(ctx, contracts.ResourceEvent{
			Event:      event,
			Resource:   uc.resourceName,
			ResourceID: id,
			Status:     status,
			OccurredAt: time.Now(),
		})
	}
}
