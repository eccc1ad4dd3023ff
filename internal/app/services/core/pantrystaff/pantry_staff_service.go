package pantrystaff

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

func MapRequest(request *requests.PantryStaff) *models.PantryStaff {
	return &models.PantryStaff{
		Name: request.Name,
		ContactInfo: models.ContactInfo{
			Phone: request.ContactInfo.Phone,
			Email: request.ContactInfo.Email,
		},
		Location: request.Location,
	}
}

func NewUsecase(
	db *mongo.Database,
	cache contracts.RedisRepository,
	publisher contracts.EventPublisher,
	cacheTTL time.Duration,
) resource.Usecase[models.PantryStaff] {
	repository := resource.NewMongoRepository[models.PantryStaff](db, constvars.MongoCollectionPantryStaff)
	return resource.NewUsecase(repository, cache, publisher, constvars.ResourcePantryStaff, cacheTTL)
}

func NewController(log *zap.Logger, usecase resource.Usecase[models.PantryStaff]) *resource.Controller[requests.PantryStaff, models.PantryStaff] {
	return resource.NewController(log, usecase, constvars.ResourcePantryStaff, MapRequest)
}
