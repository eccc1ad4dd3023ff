package middlewares

import (
	"caretray-service/internal/app/config"
	"caretray-service/internal/app/services/core/auth"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	AuthUsecase    auth.Usecase
	InternalConfig *config.InternalConfig
}

func NewMiddlewares(log *zap.Logger, authUsecase auth.Usecase, internalConfig *config.InternalConfig) *Middlewares {
	return &Middlewares{
		Log:            log,
		AuthUsecase:    authUsecase,
		InternalConfig: internalConfig,
	}
}
