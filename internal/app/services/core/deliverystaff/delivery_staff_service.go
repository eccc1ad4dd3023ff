package deliverystaff

import (
	"caretray-service/internal/app/contracts"
	"caretray-service/internal/app/models"
	"caretray-service/internal/app/services/core/resource"
	"caretray-service/internal/pkg/constvars"
	"caretray-service/internal/pkg/dto/requests"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func MapRequest(request *requests.DeliveryStaff) *models.DeliveryStaff {
	return &models.DeliveryStaff{
		Name: request.Name,
		ContactInfo: models.ContactInfo{
			Phone: request.ContactInfo.Phone,
			Email: request.ContactInfo.Email,
		},
	}
}

func NewUsecase(
	db *mongo.Database,
	cache contracts.RedisRepository,
	publisher contracts.EventPublisher,
	cacheTTL time.Duration,
) resource.Usecase[models.DeliveryStaff] {
	repository := resource.NewMongoRepository[models.DeliveryStaff](db, constvars.MongoCollectionDeliveryStaff)
	return resource.NewUsecase(repository, cache, publisher, constvars.ResourceDeliveryStaff, cacheTTL)
}

func NewController(log *zap.Logger, usecase resource.Usecase[models.DeliveryStaff]) *resource.Controller[requests.DeliveryStaff, models.DeliveryStaff] {
	return resource.NewController(log, usecase, constvars.ResourceDeliveryStaff, MapRequest)
}
