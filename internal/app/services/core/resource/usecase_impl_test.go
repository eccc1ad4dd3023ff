package resource

import (
	"caretray-service/internal/app/contracts"
	"caretray-service/internal/app/models"
	"caretray-service/internal/pkg/constvars"
	"caretray-service/internal/pkg/exceptions"
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MockPatientRepository struct {
	mock.Mock
}

func (m *MockPatientRepository) ListAll(ctx context.Context) ([]models.Patient, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Patient), args.Error(1)
}

func (m *MockPatientRepository) FindByID(ctx context.Context, id string) (*models.Patient, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Patient), args.Error(1)
}

func (m *MockPatientRepository) Insert(ctx context.Context, model *models.Patient) (string, error) {
	args := m.Called(ctx, model)
	return args.String(0), args.Error(1)
}

func (m *MockPatientRepository) Update(ctx context.Context, id string, model *models.Patient) error {
	args := m.Called(ctx, id, model)
	return args.Error(0)
}

func (m *MockPatientRepository) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *MockPatientRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type fakeCache struct {
	mu   sync.Mutex
	data map[string]string
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: make(map[string]string)}
}

func (c *fakeCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	return nil
}

func (c *fakeCache) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = string(raw)
	return nil
}

func (c *fakeCache) Get(ctx context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.data[key], nil
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, event contracts.ResourceEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func TestCrudUsecase_ListAll(t *testing.T) {
	ctx := context.Background()
	cacheKey := constvars.RedisKeyCollectionList + constvars.ResourcePatient

	t.Run("fills the cache on first read", func(t *testing.T) {
		mockRepo := new(MockPatientRepository)
		cache := newFakeCache()
		usecase := NewUsecase[models.Patient](mockRepo, cache, nil, constvars.ResourcePatient, time.Minute)

		stored := []models.Patient{{ID: primitive.NewObjectID(), Name: "Asha Rao"}}
		mockRepo.On("ListAll", mock.Anything).Return(stored, nil).Once()

		first, err := usecase.ListAll(ctx)
		assert.NoError(t, err)
		assert.Len(t, first, 1)
		assert.NotEmpty(t, cache.data[cacheKey])

		// Second read is answered from the cache; the repository
		// expectation above allows a single call only.
		second, err := usecase.ListAll(ctx)
		assert.NoError(t, err)
		assert.Equal(t, first, second)
		mockRepo.AssertExpectations(t)
	})

	t.Run("serves a pre-warmed cache without touching mongo", func(t *testing.T) {
		mockRepo := new(MockPatientRepository)
		cache := newFakeCache()
		usecase := NewUsecase[models.Patient](mockRepo, cache, nil, constvars.ResourcePatient, time.Minute)

		cached := []models.Patient{{Name: "Binod Thapa"}}
		assert.NoError(t, cache.Set(ctx, cacheKey, cached, time.Minute))

		items, err := usecase.ListAll(ctx)
		assert.NoError(t, err)
		assert.Len(t, items, 1)
		assert.Equal(t, "Binod Thapa", items[0].Name)
		mockRepo.AssertNotCalled(t, "ListAll")
	})
}

// slowPatientRepository counts ListAll calls and holds each one long enough
// for concurrent callers to pile up on the same cache miss.
type slowPatientRepository struct {
	MockPatientRepository
	listCalls int32
}

func (r *slowPatientRepository) ListAll(ctx context.Context) ([]models.Patient, error) {
	atomic.AddInt32(&r.listCalls, 1)
	time.Sleep(50 * time.Millisecond)
	return []models.Patient{{Name: "Asha Rao"}}, nil
}

func TestCrudUsecase_ListAll_Concurrent(t *testing.T) {
	ctx := context.Background()

	repo := new(slowPatientRepository)
	usecase := NewUsecase[models.Patient](repo, newFakeCache(), nil, constvars.ResourcePatient, time.Minute)

	const callers = 8
	var wg sync.WaitGroup
	start := make(chan struct{})
	results := make([][]models.Patient, callers)
	errs := make([]error, callers)

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			results[i], errs[i] = usecase.ListAll(ctx)
		}(i)
	}
	close(start)
	wg.Wait()

	for i := 0; i < callers; i++ {
		assert.NoError(t, errs[i])
		assert.Len(t, results[i], 1)
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&repo.listCalls),
		"concurrent cache misses must collapse into one query")
}

func TestCrudUsecase_Create(t *testing.T) {
	ctx := context.Background()
	cacheKey := constvars.RedisKeyCollectionList + constvars.ResourcePatient

	mockRepo := new(MockPatientRepository)
	cache := newFakeCache()
	publisher := new(MockPublisher)
	usecase := NewUsecase[models.Patient](mockRepo, cache, publisher, constvars.ResourcePatient, time.Minute)

	// Stale list that the create must invalidate.
	assert.NoError(t, cache.Set(ctx, cacheKey, []models.Patient{}, time.Minute))

	id := primitive.NewObjectID()
	stored := &models.Patient{ID: id, Name: "Asha Rao"}

	mockRepo.On("Insert", mock.Anything, mock.MatchedBy(func(p *models.Patient) bool {
		return !p.CreatedAt.IsZero() && !p.UpdatedAt.IsZero()
	})).Return(id.Hex(), nil)
	mockRepo.On("FindByID", mock.Anything, id.Hex()).Return(stored, nil)
	publisher.On("Publish", mock.Anything, mock.MatchedBy(func(e contracts.ResourceEvent) bool {
		return e.Event == contracts.EventCreated &&
			e.Resource == constvars.ResourcePatient &&
			e.ResourceID == id.Hex()
	})).Return(nil)

	created, err := usecase.Create(ctx, &models.Patient{Name: "Asha Rao"})
	assert.NoError(t, err)
	assert.Equal(t, id, created.ID)
	assert.Empty(t, cache.data[cacheKey], "collection cache must be dropped after a create")

	mockRepo.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestCrudUsecase_UpdateFields(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockPatientRepository)
	cache := newFakeCache()
	publisher := new(MockPublisher)
	usecase := NewUsecase[models.Patient](mockRepo, cache, publisher, constvars.ResourceMeal, time.Minute)

	id := primitive.NewObjectID()
	stored := &models.Patient{ID: id}

	mockRepo.On("FindByID", mock.Anything, id.Hex()).Return(stored, nil)
	mockRepo.On("UpdateFields", mock.Anything, id.Hex(), map[string]interface{}{"status": constvars.MealStatusCompleted}).Return(nil)
	publisher.On("Publish", mock.Anything, mock.MatchedBy(func(e contracts.ResourceEvent) bool {
		return e.Event == contracts.EventStatusChanged && e.Status == constvars.MealStatusCompleted
	})).Return(nil)

	_, err := usecase.UpdateFields(ctx, id.Hex(), map[string]interface{}{"status": constvars.MealStatusCompleted})
	assert.NoError(t, err)

	mockRepo.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestCrudUsecase_NotFound(t *testing.T) {
	ctx := context.Background()
	id := primitive.NewObjectID().Hex()

	mockRepo := new(MockPatientRepository)
	usecase := NewUsecase[models.Patient](mockRepo, newFakeCache(), nil, constvars.ResourcePatient, time.Minute)

	mockRepo.On("FindByID", mock.Anything, id).Return(nil, nil)

	t.Run("delete", func(t *testing.T) {
		err := usecase.Delete(ctx, id)
		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
		mockRepo.AssertNotCalled(t, "Delete")
	})

	t.Run("update", func(t *testing.T) {
		_, err := usecase.Update(ctx, id, &models.Patient{})
		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
		mockRepo.AssertNotCalled(t, "Update")
	})
}
