package middlewares

import (
	"caretray-service/internal/pkg/constvars"
	"caretray-service/internal/pkg/exceptions"
	"caretray-service/internal/pkg/utils"
	"context"
	"net/http"
)

// Authenticate gates every entity route. The session cookie must carry a
// token that resolves to a live redis session; the session is placed on the
// request context for downstream handlers.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(constvars.SessionCookieName)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(err))
			return
		}

		session, err := m.AuthUsecase.ValidateToken(r.Context(), cookie.Value)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.ContextSessionKey, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
