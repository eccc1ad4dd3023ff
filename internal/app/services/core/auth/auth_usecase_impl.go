package auth

import (
	"caretray-service/internal/app/config"
	"caretray-service/internal/app/contracts"
	"caretray-service/internal/app/models"
	"caretray-service/internal/pkg/constvars"
	"caretray-service/internal/pkg/dto/requests"
	"caretray-service/internal/pkg/exceptions"
	"caretray-service/internal/pkg/utils"
	"context"
	"errors"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

type authUsecase struct {
	users          UserRepository
	sessions       contracts.RedisRepository
	internalConfig *config.InternalConfig
}

func NewUsecase(users UserRepository, sessions contracts.RedisRepository, internalConfig *config.InternalConfig) Usecase {
	return &authUsecase{
		users:          users,
		sessions:       sessions,
		internalConfig: internalConfig,
	}
}

// Signup creates an admin account. Every dashboard account carries the admin
// role; staff records are data, not logins.
func (uc *authUsecase) Signup(ctx context.Context, request *requests.Signup) error {
	existing, err := uc.users.FindByEmail(ctx, request.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return exceptions.ErrEmailAlreadyExist(errors.New("email already registered"))
	}

	hashed, err := utils.HashPassword(request.Password)
	if err != nil {
		return exceptions.ErrHashPassword(err)
	}

	user := &models.User{
		Name:     request.Name,
		Email:    request.Email,
		Password: hashed,
		Role:     constvars.RoleAdmin,
	}
	user.Touch(time.Now())

	_, err = uc.users.Insert(ctx, user)
	return err
}

// Login answers both a missing account and a wrong password with the same
// invalid-credentials error, so the response does not leak which emails
// have accounts.
func (uc *authUsecase) Login(ctx context.Context, request *requests.Login) (string, *models.Session, error) {
	user, err := uc.users.FindByEmail(ctx, request.Email)
	if err != nil {
		return "", nil, err
	}
	if user == nil || !utils.CheckPasswordHash(request.Password, user.Password) {
		return "", nil, exceptions.ErrInvalidCredentials(errors.New("email or password mismatch"))
	}

	session := &models.Session{
		UserID: user.ID.Hex(),
		Email:  user.Email,
		Role:   user.Role,
	}

	sessionID := uuid.NewString()
	sessionTTL := time.Duration(uc.internalConfig.App.SessionExpTimeInHours) * time.Hour
	if err := uc.sessions.Set(ctx, constvars.RedisKeySession+sessionID, session, sessionTTL); err != nil {
		return "", nil, exceptions.ErrRedisStoreSession(err)
	}

	tokenTTL := time.Duration(uc.internalConfig.JWT.ExpTimeInHour) * time.Hour
	token, err := utils.GenerateSessionJWT(sessionID, uc.internalConfig.JWT.Secret, tokenTTL)
	if err != nil {
		return "", nil, err
	}
	return token, session, nil
}

// Logout drops the session when the token still resolves to one. A stale or
// garbled token is not an error here; the client ends up logged out either
// way.
func (uc *authUsecase) Logout(ctx context.Context, token string) error {
	sessionID, err := utils.ParseSessionJWT(token, uc.internalConfig.JWT.Secret)
	if err != nil {
		return nil
	}
	return uc.sessions.Delete(ctx, constvars.RedisKeySession+sessionID)
}

func (uc *authUsecase) ValidateToken(ctx context.Context, token string) (*models.Session, error) {
	sessionID, err := utils.ParseSessionJWT(token, uc.internalConfig.JWT.Secret)
	if err != nil {
		return nil, err
	}

	data, err := uc.sessions.Get(ctx, constvars.RedisKeySession+sessionID)
	if err != nil {
		return nil, err
	}
	if data == "" {
		return nil, exceptions.ErrSessionNotFound(errors.New("session expired or revoked"))
	}

	var session models.Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, exceptions.ErrSessionNotFound(err)
	}
	return &session, nil
}
