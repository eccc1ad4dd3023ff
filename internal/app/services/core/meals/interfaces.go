package meals

import (
	"caretray-service/internal/app/models"
	"caretray-service/internal/pkg/dto/requests"
	"caretray-service/internal/pkg/dto/responses"
	"context"
)

// Usecase covers the pantry board: assignment, the preparation status
// workflow and the fully populated listing the dashboard renders.
type Usecase interface {
	ListPopulated(ctx context.Context) ([]responses.MealPreparation, error)
	Create(ctx context.Context, request *requests.MealPreparation) (*models.MealPreparation, error)
	UpdateStatus(ctx context.Context, id, status string) (*models.MealPreparation, error)
	Delete(ctx context.Context, id string) error
}
