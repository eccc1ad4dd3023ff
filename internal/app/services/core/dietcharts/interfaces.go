package dietcharts

import (
	"caretray-service/internal/app/models"
	"caretray-service/internal/pkg/dto/requests"
	"caretray-service/internal/pkg/dto/responses"
	"context"
)

// Usecase adds patient population on top of the shared CRUD behavior.
type Usecase interface {
	ListPopulated(ctx context.Context) ([]responses.DietChart, error)
	Create(ctx context.Context, request *requests.DietChart) (*models.DietChart, error)
	Update(ctx context.Context, id string, request *requests.DietChart) (*models.DietChart, error)
	Delete(ctx context.Context, id string) error
}
