package routers

import (
	"caretray-service/internal/app/config"
	"caretray-service/internal/app/delivery/http/middlewares"
	"caretray-service/internal/app/models"
	"caretray-service/internal/app/services/core/auth"
	"caretray-service/internal/app/services/core/deliveries"
	"caretray-service/internal/app/services/core/dietcharts"
	"caretray-service/internal/app/services/core/meals"
	"caretray-service/internal/app/services/core/resource"
	"caretray-service/internal/pkg/dto/requests"
	"fmt"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	authController *auth.AuthController,
	patientController *resource.Controller[requests.Patient, models.Patient],
	dietChartController *dietcharts.DietChartController,
	pantryStaffController *resource.Controller[requests.PantryStaff, models.PantryStaff],
	deliveryStaffController *resource.Controller[requests.DeliveryStaff, models.DeliveryStaff],
	mealController *meals.MealController,
	deliveryController *deliveries.DeliveryController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   strings.Split(internalConfig.App.AllowedOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	router.Use(httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second))
	router.Use(middlewares.RequestLogger)
	router.Use(middlewares.ErrorHandler)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/auth", func(r chi.Router) {
				attachAuthRoutes(r, middlewares, authController)
			})

			// Entity routes sit behind the session gate.
			r.Group(func(r chi.Router) {
				r.Use(middlewares.Authenticate)

				r.Route("/patient", patientController.Routes)
				r.Route("/diet-charts", dietChartController.Routes)
				r.Route("/pantry-staff", pantryStaffController.Routes)
				r.Route("/delivery-personnel", deliveryStaffController.Routes)
				r.Route("/meal-preparation", mealController.Routes)
				r.Route("/meal-delivery-status", deliveryController.Routes)
			})
		})
	})
}
