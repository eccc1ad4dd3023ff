package dietcharts

import (
	"caretray-service/internal/app/models"
	"caretray-service/internal/app/services/core/resource"
	"caretray-service/internal/pkg/dto/requests"
	"caretray-service/internal/pkg/dto/responses"
	"caretray-service/internal/pkg/exceptions"
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type dietChartUsecase struct {
	charts   resource.Usecase[models.DietChart]
	patients resource.Usecase[models.Patient]
}

func NewUsecase(
	charts resource.Usecase[models.DietChart],
	patients resource.Usecase[models.Patient],
) Usecase {
	return &dietChartUsecase{
		charts:   charts,
		patients: patients,
	}
}

func mapRequest(request *requests.DietChart) (*models.DietChart, error) {
	patientID, err := primitive.ObjectIDFromHex(request.PatientID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	ingredients := make([]models.Ingredient, 0, len(request.Ingredients))
	for _, ingredient := range request.Ingredients {
		ingredients = append(ingredients, models.Ingredient{
			Ingredient: ingredient.Ingredient,
			Quantity:   ingredient.Quantity,
		})
	}

	return &models.DietChart{
		PatientID:    patientID,
		MorningMeal:  request.MorningMeal,
		EveningMeal:  request.EveningMeal,
		NightMeal:    request.NightMeal,
		Ingredients:  ingredients,
		Instructions: request.Instructions,
	}, nil
}

// ListPopulated joins each chart with its patient. The patient lookup rides
// the patient collection cache instead of issuing per-chart queries.
func (uc *dietChartUsecase) ListPopulated(ctx context.Context) ([]responses.DietChart, error) {
	charts, err := uc.charts.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	patients, err := uc.patients.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	patientsByID := make(map[primitive.ObjectID]*models.Patient, len(patients))
	for i := range patients {
		patientsByID[patients[i].ID] = &patients[i]
	}

	result := make([]responses.DietChart, 0, len(charts))
	for _, chart := range charts {
		result = append(result, responses.DietChart{
			ID:           chart.ID,
			PatientID:    responses.NewPatientRef(patientsByID[chart.PatientID]),
			MorningMeal:  chart.MorningMeal,
			EveningMeal:  chart.EveningMeal,
			NightMeal:    chart.NightMeal,
			Ingredients:  chart.Ingredients,
			Instructions: chart.Instructions,
			CreatedAt:    chart.CreatedAt,
			UpdatedAt:    chart.UpdatedAt,
		})
	}
	return result, nil
}

// Create verifies the referenced patient exists before storing the chart.
func (uc *dietChartUsecase) Create(ctx context.Context, request *requests.DietChart) (*models.DietChart, error) {
	model, err := mapRequest(request)
	if err != nil {
		return nil, err
	}
	if _, err := uc.patients.FindByID(ctx, request.PatientID); err != nil {
		return nil, err
	}
	return uc.charts.Create(ctx, model)
}

func (uc *dietChartUsecase) Update(ctx context.Context, id string, request *requests.DietChart) (*models.DietChart, error) {
	model, err := mapRequest(request)
	if err != nil {
		return nil, err
	}
	if _, err := uc.patients.FindByID(ctx, request.PatientID); err != nil {
		return nil, err
	}
	return uc.charts.Update(ctx, id, model)
}

func (uc *dietChartUsecase) Delete(ctx context.Context, id string) error {
	return uc.charts.Delete(ctx, id)
}
