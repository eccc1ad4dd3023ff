package auth

import (
	"caretray-service/internal/app/config"
	"caretray-service/internal/pkg/constvars"
	"caretray-service/internal/pkg/dto/requests"
	"caretray-service/internal/pkg/dto/responses"
	"caretray-service/internal/pkg/exceptions"
	"caretray-service/internal/pkg/utils"
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const requestTimeout = 10 * time.Second

type AuthController struct {
	Log            *zap.Logger
	Usecase        Usecase
	InternalConfig *config.InternalConfig
}

func NewController(log *zap.Logger, usecase Usecase, internalConfig *config.InternalConfig) *AuthController {
	return &AuthController{
		Log:            log,
		Usecase:        usecase,
		InternalConfig: internalConfig,
	}
}

func (ctrl *AuthController) Signup(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	request := new(requests.Signup)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.respondError(w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		ctrl.respondError(w, exceptions.ErrInputValidation(err))
		return
	}

	if err := ctrl.Usecase.Signup(ctx, request); err != nil {
		ctrl.respondError(w, err)
		return
	}
	utils.BuildMessageResponse(w, constvars.StatusCreated, constvars.SignupSuccess)
}

func (ctrl *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	request := new(requests.Login)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.respondError(w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		ctrl.respondError(w, exceptions.ErrInputValidation(err))
		return
	}

	token, session, err := ctrl.Usecase.Login(ctx, request)
	if err != nil {
		ctrl.respondError(w, err)
		return
	}

	ctrl.setSessionCookie(w, token, time.Duration(ctrl.InternalConfig.App.SessionExpTimeInHours)*time.Hour)
	utils.BuildDataResponse(w, constvars.StatusOK, responses.Auth{
		Message:  constvars.LoginSuccess,
		UserRole: session.Role,
	})
}

// Logout always succeeds. The cookie is cleared even when it was missing or
// no longer maps to a live session.
func (ctrl *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	if cookie, err := r.Cookie(constvars.SessionCookieName); err == nil {
		if err := ctrl.Usecase.Logout(ctx, cookie.Value); err != nil {
			ctrl.respondError(w, err)
			return
		}
	}

	ctrl.clearSessionCookie(w)
	utils.BuildMessageResponse(w, constvars.StatusOK, constvars.LogoutSuccess)
}

// ValidateToken is what the dashboard calls on load to decide between the
// login screen and the app shell.
func (ctrl *AuthController) ValidateToken(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	cookie, err := r.Cookie(constvars.SessionCookieName)
	if err != nil {
		ctrl.respondError(w, exceptions.ErrTokenMissing(err))
		return
	}

	session, err := ctrl.Usecase.ValidateToken(ctx, cookie.Value)
	if err != nil {
		ctrl.respondError(w, err)
		return
	}
	utils.BuildDataResponse(w, constvars.StatusOK, responses.Auth{
		Message:  constvars.TokenValidateSuccess,
		UserRole: session.Role,
	})
}

func (ctrl *AuthController) setSessionCookie(w http.ResponseWriter, token string, ttl time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     constvars.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   ctrl.InternalConfig.App.Env == "production",
		SameSite: http.SameSiteLaxMode,
	})
}

func (ctrl *AuthController) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     constvars.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   ctrl.InternalConfig.App.Env == "production",
		SameSite: http.SameSiteLaxMode,
	})
}

func (ctrl *AuthController) respondError(w http.ResponseWriter, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		err = exceptions.ErrServerDeadlineExceeded(err)
	}
	utils.BuildErrorResponse(ctrl.Log, w, err)
}
