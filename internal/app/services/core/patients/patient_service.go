package patients

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

func MapRequest(request *requests.Patient) *models.Patient {
	contacts := make([]models.EmergencyContact, 0, len(request.EmergencyContact))
	for _, contact := range request.EmergencyContact {
		contacts = append(contacts, models.EmergencyContact{
			Name:  contact.Name,
			Phone: contact.Phone,
		})
	}

	return &models.Patient{
		Name:        request.Name,
		DOB:         request.DOB,
		Diseases:    request.Diseases,
		Allergies:   request.Allergies,
		RoomNumber:  request.RoomNumber,
		BedNumber:   request.BedNumber,
		FloorNumber: request.FloorNumber,
		Age:         request.Age,
		Gender:      request.Gender,
		ContactInfo: models.ContactInfo{
			Phone: request.ContactInfo.Phone,
			Email: request.ContactInfo.Email,
		},
		EmergencyContact: contacts,
	}
}

func NewUsecase(
	db *mongo.Database,
	cache contracts.RedisRepository,
	publisher contracts.EventPublisher,
	cacheTTL time.Duration,
) resource.Usecase[models.Patient] {
	repository := resource.NewMongoRepository[models.Patient](db, constvars.MongoCollectionPatients)
	return resource.NewUsecase(repository, cache, publisher, constvars.ResourcePatient, cacheTTL)
}

func NewController(log *zap.Logger, usecase resource.Usecase[models.Patient]) *resource.Controller[requests.Patient, models.Patient] {
	return resource.NewController(log, usecase, constvars.ResourcePatient, MapRequest)
}
