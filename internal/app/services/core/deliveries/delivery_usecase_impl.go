package deliveries

import (
	"caretray-service/internal/app/models"
	"caretray-service/internal/app/services/core/resource"
	"caretray-service/internal/pkg/constvars"
	"caretray-service/internal/pkg/dto/requests"
	"caretray-service/internal/pkg/dto/responses"
	"caretray-service/internal/pkg/exceptions"
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type deliveryUsecase struct {
	deliveries resource.Usecase[models.Delivery]
	meals      resource.Usecase[models.MealPreparation]
	personnel  resource.Usecase[models.DeliveryStaff]
	patients   resource.Usecase[models.Patient]
}

func NewUsecase(
	deliveries resource.Usecase[models.Delivery],
	meals resource.Usecase[models.MealPreparation],
	personnel resource.Usecase[models.DeliveryStaff],
	patients resource.Usecase[models.Patient],
) Usecase {
	return &deliveryUsecase{
		deliveries: deliveries,
		meals:      meals,
		personnel:  personnel,
		patients:   patients,
	}
}

func (uc *deliveryUsecase) ListPopulated(ctx context.Context) ([]responses.Delivery, error) {
	deliveries, err := uc.deliveries.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	meals, err := uc.meals.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	personnel, err := uc.personnel.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	patients, err := uc.patients.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	mealsByID := make(map[primitive.ObjectID]*models.MealPreparation, len(meals))
	for i := range meals {
		mealsByID[meals[i].ID] = &meals[i]
	}
	personnelByID := make(map[primitive.ObjectID]*models.DeliveryStaff, len(personnel))
	for i := range personnel {
		personnelByID[personnel[i].ID] = &personnel[i]
	}
	patientsByID := make(map[primitive.ObjectID]*models.Patient, len(patients))
	for i := range patients {
		patientsByID[patients[i].ID] = &patients[i]
	}

	result := make([]responses.Delivery, 0, len(deliveries))
	for _, delivery := range deliveries {
		result = append(result, responses.Delivery{
			ID:                  delivery.ID,
			MealPreparationID:   mealsByID[delivery.MealPreparationID],
			DeliveryPersonnelID: personnelByID[delivery.DeliveryPersonnelID],
			PatientID:           patientsByID[delivery.PatientID],
			DeliveryTime:        delivery.DeliveryTime,
			Status:              delivery.Status,
			CreatedAt:           delivery.CreatedAt,
			UpdatedAt:           delivery.UpdatedAt,
		})
	}
	return result, nil
}

func (uc *deliveryUsecase) Create(ctx context.Context, request *requests.Delivery) (*models.Delivery, error) {
	mealPreparationID, err := primitive.ObjectIDFromHex(request.MealPreparationID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	deliveryPersonnelID, err := primitive.ObjectIDFromHex(request.DeliveryPersonnelID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	patientID, err := primitive.ObjectIDFromHex(request.PatientID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	if _, err := uc.meals.FindByID(ctx, request.MealPreparationID); err != nil {
		return nil, err
	}
	if _, err := uc.personnel.FindByID(ctx, request.DeliveryPersonnelID); err != nil {
		return nil, err
	}
	if _, err := uc.patients.FindByID(ctx, request.PatientID); err != nil {
		return nil, err
	}

	status := request.Status
	if status == "" {
		status = constvars.DeliveryStatusPending
	}

	return uc.deliveries.Create(ctx, &models.Delivery{
		MealPreparationID:   mealPreparationID,
		DeliveryPersonnelID: deliveryPersonnelID,
		PatientID:           patientID,
		DeliveryTime:        request.DeliveryTime,
		Status:              status,
	})
}

func (uc *deliveryUsecase) UpdateStatus(ctx context.Context, id, status string) (*models.Delivery, error) {
	return uc.deliveries.UpdateFields(ctx, id, map[string]interface{}{"status": status})
}

func (uc *deliveryUsecase) Delete(ctx context.Context, id string) error {
	return uc.deliveries.Delete(ctx, id)
}
