package auth

import (
	"caretray-service/internal/app/config"
	"caretray-service/internal/app/models"
	"caretray-service/internal/pkg/constvars"
	"caretray-service/internal/pkg/dto/requests"
	"caretray-service/internal/pkg/exceptions"
	"caretray-service/internal/pkg/utils"
	"context"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Insert(ctx context.Context, user *models.User) (string, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Error(1)
}

type fakeSessionStore struct {
	data map[string]string
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{data: make(map[string]string)}
}

func (s *fakeSessionStore) Delete(ctx context.Context, key string) error {
	delete(s.data, key)
	return nil
}

func (s *fakeSessionStore) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	s.data[key] = string(raw)
	return nil
}

func (s *fakeSessionStore) Get(ctx context.Context, key string) (string, error) {
	return s.data[key], nil
}

func testInternalConfig() *config.InternalConfig {
	return &config.InternalConfig{
		App: config.App{SessionExpTimeInHours: 12},
		JWT: config.JWT{Secret: "test-secret", ExpTimeInHour: 12},
	}
}

func TestAuthUsecase_Signup(t *testing.T) {
	ctx := context.Background()

	t.Run("creates an admin account with a hashed password", func(t *testing.T) {
		mockUsers := new(MockUserRepository)
		usecase := NewUsecase(mockUsers, newFakeSessionStore(), testInternalConfig())

		mockUsers.On("FindByEmail", mock.Anything, "admin@hospital.org").Return(nil, nil)
		mockUsers.On("Insert", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
			return u.Role == constvars.RoleAdmin &&
				u.Password != "Sup3r@Secret" &&
				utils.CheckPasswordHash("Sup3r@Secret", u.Password)
		})).Return(primitive.NewObjectID().Hex(), nil)

		err := usecase.Signup(ctx, &requests.Signup{
			Name:     "Admin",
			Email:    "admin@hospital.org",
			Password: "Sup3r@Secret",
		})
		assert.NoError(t, err)
		mockUsers.AssertExpectations(t)
	})

	t.Run("rejects a duplicate email", func(t *testing.T) {
		mockUsers := new(MockUserRepository)
		usecase := NewUsecase(mockUsers, newFakeSessionStore(), testInternalConfig())

		mockUsers.On("FindByEmail", mock.Anything, "admin@hospital.org").Return(&models.User{Email: "admin@hospital.org"}, nil)

		err := usecase.Signup(ctx, &requests.Signup{
			Name:     "Admin",
			Email:    "admin@hospital.org",
			Password: "Sup3r@Secret",
		})

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		mockUsers.AssertNotCalled(t, "Insert")
	})
}

func TestAuthUsecase_Login(t *testing.T) {
	ctx := context.Background()

	hashed, err := utils.HashPassword("Sup3r@Secret")
	assert.NoError(t, err)

	user := &models.User{
		ID:       primitive.NewObjectID(),
		Email:    "admin@hospital.org",
		Password: hashed,
		Role:     constvars.RoleAdmin,
	}

	t.Run("stores a session and returns a token that resolves to it", func(t *testing.T) {
		mockUsers := new(MockUserRepository)
		sessions := newFakeSessionStore()
		cfg := testInternalConfig()
		usecase := NewUsecase(mockUsers, sessions, cfg)

		mockUsers.On("FindByEmail", mock.Anything, "admin@hospital.org").Return(user, nil)

		token, session, err := usecase.Login(ctx, &requests.Login{
			Email:    "admin@hospital.org",
			Password: "Sup3r@Secret",
		})
		assert.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, constvars.RoleAdmin, session.Role)
		assert.Len(t, sessions.data, 1)

		resolved, err := usecase.ValidateToken(ctx, token)
		assert.NoError(t, err)
		assert.Equal(t, user.ID.Hex(), resolved.UserID)
	})

	t.Run("wrong password and unknown email fail the same way", func(t *testing.T) {
		mockUsers := new(MockUserRepository)
		usecase := NewUsecase(mockUsers, newFakeSessionStore(), testInternalConfig())

		mockUsers.On("FindByEmail", mock.Anything, "admin@hospital.org").Return(user, nil)
		mockUsers.On("FindByEmail", mock.Anything, "nobody@hospital.org").Return(nil, nil)

		_, _, errWrongPassword := usecase.Login(ctx, &requests.Login{Email: "admin@hospital.org", Password: "wrong"})
		_, _, errUnknownEmail := usecase.Login(ctx, &requests.Login{Email: "nobody@hospital.org", Password: "wrong"})

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, errWrongPassword, &customErr)
		assert.Equal(t, constvars.ErrClientInvalidCredentials, customErr.ClientMessage)

		assert.ErrorAs(t, errUnknownEmail, &customErr)
		assert.Equal(t, constvars.ErrClientInvalidCredentials, customErr.ClientMessage)
	})
}

func TestAuthUsecase_Logout(t *testing.T) {
	ctx := context.Background()

	t.Run("drops the stored session", func(t *testing.T) {
		mockUsers := new(MockUserRepository)
		sessions := newFakeSessionStore()
		cfg := testInternalConfig()
		usecase := NewUsecase(mockUsers, sessions, cfg)

		hashed, _ := utils.HashPassword("Sup3r@Secret")
		mockUsers.On("FindByEmail", mock.Anything, "admin@hospital.org").Return(&models.User{
			ID: primitive.NewObjectID(), Email: "admin@hospital.org", Password: hashed, Role: constvars.RoleAdmin,
		}, nil)

		token, _, err := usecase.Login(ctx, &requests.Login{Email: "admin@hospital.org", Password: "Sup3r@Secret"})
		assert.NoError(t, err)
		assert.Len(t, sessions.data, 1)

		assert.NoError(t, usecase.Logout(ctx, token))
		assert.Empty(t, sessions.data)

		_, err = usecase.ValidateToken(ctx, token)
		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode)
	})

	t.Run("garbled token is not an error", func(t *testing.T) {
		usecase := NewUsecase(new(MockUserRepository), newFakeSessionStore(), testInternalConfig())
		assert.NoError(t, usecase.Logout(ctx, "not-a-jwt"))
	})
}
