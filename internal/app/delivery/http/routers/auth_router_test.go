package routers

import (
	"bytes"
	"caretray-service/internal/app/config"
	"caretray-service/internal/app/delivery/http/middlewares"
	"caretray-service/internal/app/models"
	"caretray-service/internal/app/services/core/auth"
	"caretray-service/internal/pkg/constvars"
	"caretray-service/internal/pkg/dto/requests"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockAuthUsecase struct {
	mock.Mock
}

func (m *MockAuthUsecase) Signup(ctx context.Context, request *requests.Signup) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockAuthUsecase) Login(ctx context.Context, request *requests.Login) (string, *models.Session, error) {
	args := m.Called(ctx, request)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*models.Session), args.Error(2)
}

func (m *MockAuthUsecase) Logout(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockAuthUsecase) ValidateToken(ctx context.Context, token string) (*models.Session, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func newAuthRouter(mockUsecase *MockAuthUsecase) *chi.Mux {
	logger := zap.NewNop()
	internalConfig := &config.InternalConfig{
		App: config.App{
			MaxTimeRequestsPerSeconds: 100,
			SessionExpTimeInHours:     12,
		},
	}

	controller := auth.NewController(logger, mockUsecase, internalConfig)
	middlewareInstance := middlewares.NewMiddlewares(logger, mockUsecase, internalConfig)

	router := chi.NewRouter()
	router.Route("/auth", func(r chi.Router) {
		attachAuthRoutes(r, middlewareInstance, controller)
	})
	return router
}

func TestAuthRouter_Login(t *testing.T) {
	t.Run("valid credentials set the session cookie", func(t *testing.T) {
		mockUsecase := new(MockAuthUsecase)
		router := newAuthRouter(mockUsecase)

		session := &models.Session{UserID: "u1", Email: "admin@hospital.org", Role: constvars.RoleAdmin}
		mockUsecase.On("Login", mock.Anything, mock.AnythingOfType("*requests.Login")).Return("signed-token", session, nil)

		body, _ := json.Marshal(requests.Login{Email: "admin@hospital.org", Password: "Sup3r@Secret"})
		req := httptest.NewRequest("POST", "/auth/login", bytes.NewBuffer(body))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), constvars.RoleAdmin)

		cookies := rr.Result().Cookies()
		assert.Len(t, cookies, 1)
		assert.Equal(t, constvars.SessionCookieName, cookies[0].Name)
		assert.Equal(t, "signed-token", cookies[0].Value)
		assert.True(t, cookies[0].HttpOnly)
	})

	t.Run("missing fields are rejected before the usecase", func(t *testing.T) {
		mockUsecase := new(MockAuthUsecase)
		router := newAuthRouter(mockUsecase)

		body, _ := json.Marshal(requests.Login{Email: "admin@hospital.org"})
		req := httptest.NewRequest("POST", "/auth/login", bytes.NewBuffer(body))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockUsecase.AssertNotCalled(t, "Login")
	})
}

func TestAuthRouter_ValidateToken(t *testing.T) {
	t.Run("no cookie returns 401", func(t *testing.T) {
		mockUsecase := new(MockAuthUsecase)
		router := newAuthRouter(mockUsecase)

		req := httptest.NewRequest("GET", "/auth/validate-token", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		mockUsecase.AssertNotCalled(t, "ValidateToken")
	})

	t.Run("live session returns the user role", func(t *testing.T) {
		mockUsecase := new(MockAuthUsecase)
		router := newAuthRouter(mockUsecase)

		session := &models.Session{UserID: "u1", Role: constvars.RoleAdmin}
		mockUsecase.On("ValidateToken", mock.Anything, "signed-token").Return(session, nil)

		req := httptest.NewRequest("GET", "/auth/validate-token", nil)
		req.AddCookie(&http.Cookie{Name: constvars.SessionCookieName, Value: "signed-token"})
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), constvars.RoleAdmin)
	})
}

func TestAuthRouter_Logout(t *testing.T) {
	mockUsecase := new(MockAuthUsecase)
	router := newAuthRouter(mockUsecase)

	mockUsecase.On("Logout", mock.Anything, "signed-token").Return(nil)

	req := httptest.NewRequest("POST", "/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: constvars.SessionCookieName, Value: "signed-token"})
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	cookies := rr.Result().Cookies()
	assert.Len(t, cookies, 1)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
	mockUsecase.AssertExpectations(t)
}
