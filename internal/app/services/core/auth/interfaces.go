package auth

import (
	"caretray-service/internal/app/models"
	"caretray-service/internal/pkg/dto/requests"
	"context"
)

// UserRepository stores dashboard accounts. FindByEmail returns (nil, nil)
// when no account matches.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Insert(ctx context.Context, user *models.User) (string, error)
}

// Usecase implements the session lifecycle: signup, login (token minting),
// logout and token validation for the session gate.
type Usecase interface {
	Signup(ctx context.Context, request *requests.Signup) error
	Login(ctx context.Context, request *requests.Login) (string, *models.Session, error)
	Logout(ctx context.Context, token string) error
	ValidateToken(ctx context.Context, token string) (*models.Session, error)
}
