package routers

import (
	"caretray-service/internal/app/delivery/http/middlewares"
	"caretray-service/internal/app/services/core/auth"
	"time"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, m *middlewares.Middlewares, controller *auth.AuthController) {
	limiter := middlewares.NewRateLimiter(m.InternalConfig.App.MaxTimeRequestsPerSeconds, time.Second, 5*time.Minute)
	router.Use(limiter.Limit)

	router.Post("/signup", controller.Signup)
	router.Post("/login", controller.Login)
	router.Post("/logout", controller.Logout)
	router.Get("/validate-token", controller.ValidateToken)
}
