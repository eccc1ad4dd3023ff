package meals

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

type mealUsecase struct {
	meals    resource.Usecase[models.MealPreparation]
	pantry   resource.Usecase[models.PantryStaff]
	charts   resource.Usecase[models.DietChart]
	patients resource.Usecase[models.Patient]
}

func NewUsecase(
	meals resource.Usecase[models.MealPreparation],
	pantry resource.Usecase[models.PantryStaff],
	charts resource.Usecase[models.DietChart],
	patients resource.Usecase[models.Patient],
) Usecase {
	return &mealUsecase{
		meals:    meals,
		pantry:   pantry,
		charts:   charts,
		patients: patients,
	}
}

// ListPopulated resolves the pantry staff, diet chart and patient for each
// preparation out of the cached collection lists.
func (uc *mealUsecase) ListPopulated(ctx context.Context) ([]responses.MealPreparation, error) {
	meals, err := uc.meals.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	pantry, err := uc.pantry.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	charts, err := uc.charts.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	patients, err := uc.patients.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	pantryByID := make(map[primitive.ObjectID]*models.PantryStaff, len(pantry))
	for i := range pantry {
		pantryByID[pantry[i].ID] = &pantry[i]
	}
	chartsByID := make(map[primitive.ObjectID]*models.DietChart, len(charts))
	for i := range charts {
		chartsByID[charts[i].ID] = &charts[i]
	}
	patientsByID := make(map[primitive.ObjectID]*models.Patient, len(patients))
	for i := range patients {
		patientsByID[patients[i].ID] = &patients[i]
	}

	result := make([]responses.MealPreparation, 0, len(meals))
	for _, meal := range meals {
		result = append(result, responses.MealPreparation{
			ID:            meal.ID,
			PantryStaffID: pantryByID[meal.PantryStaffID],
			DietChartID:   chartsByID[meal.DietChartID],
			PatientID:     patientsByID[meal.PatientID],
			Status:        meal.Status,
			CreatedAt:     meal.CreatedAt,
			UpdatedAt:     meal.UpdatedAt,
		})
	}
	return result, nil
}

// Create assigns a diet chart to pantry staff. All three references must
// resolve; a fresh assignment starts Pending unless the request says
// otherwise.
func (uc *mealUsecase) Create(ctx context.Context, request *requests.MealPreparation) (*models.MealPreparation, error) {
	pantryStaffID, err := primitive.ObjectIDFromHex(request.PantryStaffID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	dietChartID, err := primitive.ObjectIDFromHex(request.DietChartID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	patientID, err := primitive.ObjectIDFromHex(request.PatientID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	if _, err := uc.pantry.FindByID(ctx, request.PantryStaffID); err != nil {
		return nil, err
	}
	if _, err := uc.charts.FindByID(ctx, request.DietChartID); err != nil {
		return nil, err
	}
	if _, err := uc.patients.FindByID(ctx, request.PatientID); err != nil {
		return nil, err
	}

	status := request.Status
	if status == "" {
		status = constvars.MealStatusPending
	}

	return uc.meals.Create(ctx, &models.MealPreparation{
		PantryStaffID: pantryStaffID,
		DietChartID:   dietChartID,
		PatientID:     patientID,
		Status:        status,
	})
}

// UpdateStatus moves a preparation along Pending -> In Progress -> Completed.
// Only the status field is written.
func (uc *mealUsecase) UpdateStatus(ctx context.Context, id, status string) (*models.MealPreparation, error) {
	return uc.meals.UpdateFields(ctx, id, map[string]interface{}{"status": status})
}

func (uc *mealUsecase) Delete(ctx context.Context, id string) error {
	return uc.meals.Delete(ctx, id)
}
