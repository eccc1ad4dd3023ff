package main

import (
	"caretray-service/internal/app/config"
	"caretray-service/internal/app/delivery/http/middlewares"
	"caretray-service/internal/app/delivery/http/routers"
	"caretray-service/internal/app/drivers/database"
	"caretray-service/internal/app/drivers/logger"
	"caretray-service/internal/app/drivers/messaging"
	"caretray-service/internal/app/models"
	"caretray-service/internal/app/services/core/auth"
	"caretray-service/internal/app/services/core/deliveries"
	"caretray-service/internal/app/services/core/deliverystaff"
	"caretray-service/internal/app/services/core/dietcharts"
	"caretray-service/internal/app/services/core/meals"
	"caretray-service/internal/app/services/core/pantrystaff"
	"caretray-service/internal/app/services/core/patients"
	"caretray-service/internal/app/services/core/resource"
	"caretray-service/internal/app/services/shared/notifications"
	"caretray-service/internal/app/services/shared/redis"
	"caretray-service/internal/pkg/constvars"
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)
	defer log.Sync()

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatal("Error loading location", zap.Error(err))
	}
	time.Local = location

	mongoClient := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrapingTheApp(config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoClient,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()
	log.Info("Server started", zap.String("addr", internalConfig.App.Port))

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	log.Info("Waiting for pending requests to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) {
	log := bootstrap.Logger
	db := bootstrap.MongoDB.Database(bootstrap.DriverConfig.MongoDB.DbName)
	cacheTTL := time.Duration(bootstrap.InternalConfig.App.ListCacheTTLInSeconds) * time.Second

	// Redis
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)

	// Notifications
	publisher, err := notifications.NewRabbitMQPublisher(bootstrap.RabbitMQ, bootstrap.InternalConfig.App.NotificationQueue)
	if err != nil {
		log.Fatal("Failed to set up notification publisher", zap.Error(err))
	}

	// Auth
	userMongoRepository := auth.NewUserMongoRepository(db)
	authUsecase := auth.NewUsecase(userMongoRepository, redisRepository, bootstrap.InternalConfig)
	authController := auth.NewController(log, authUsecase, bootstrap.InternalConfig)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(log, authUsecase, bootstrap.InternalConfig)

	// Patient
	patientUsecase := patients.NewUsecase(db, redisRepository, publisher, cacheTTL)
	patientController := patients.NewController(log, patientUsecase)

	// Pantry staff
	pantryStaffUsecase := pantrystaff.NewUsecase(db, redisRepository, publisher, cacheTTL)
	pantryStaffController := pantrystaff.NewController(log, pantryStaffUsecase)

	// Delivery personnel
	deliveryStaffUsecase := deliverystaff.NewUsecase(db, redisRepository, publisher, cacheTTL)
	deliveryStaffController := deliverystaff.NewController(log, deliveryStaffUsecase)

	// Diet chart
	dietChartCrud := resource.NewUsecase(
		resource.NewMongoRepository[models.DietChart](db, constvars.MongoCollectionDietCharts),
		redisRepository, publisher, constvars.ResourceDietChart, cacheTTL,
	)
	dietChartUsecase := dietcharts.NewUsecase(dietChartCrud, patientUsecase)
	dietChartController := dietcharts.NewController(log, dietChartUsecase)

	// Meal preparation
	mealCrud := resource.NewUsecase(
		resource.NewMongoRepository[models.MealPreparation](db, constvars.MongoCollectionMeals),
		redisRepository, publisher, constvars.ResourceMeal, cacheTTL,
	)
	mealUsecase := meals.NewUsecase(mealCrud, pantryStaffUsecase, dietChartCrud, patientUsecase)
	mealController := meals.NewController(log, mealUsecase)

	// Meal delivery
	deliveryCrud := resource.NewUsecase(
		resource.NewMongoRepository[models.Delivery](db, constvars.MongoCollectionDeliveries),
		redisRepository, publisher, constvars.ResourceDelivery, cacheTTL,
	)
	deliveryUsecase := deliveries.NewUsecase(deliveryCrud, mealCrud, deliveryStaffUsecase, patientUsecase)
	deliveryController := deliveries.NewController(log, deliveryUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		authController,
		patientController,
		dietChartController,
		pantryStaffController,
		deliveryStaffController,
		mealController,
		deliveryController,
	)
}
