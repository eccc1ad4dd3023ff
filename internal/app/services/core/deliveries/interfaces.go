package deliveries

import (
	"caretray-service/internal/app/models"
	"caretray-service/internal/pkg/dto/requests"
	"caretray-service/internal/pkg/dto/responses"
	"context"
)

// Usecase covers the delivery board: handing a prepared meal to delivery
// personnel, marking it delivered and the populated listing.
type Usecase interface {
	ListPopulated(ctx context.Context) ([]responses.Delivery, error)
	Create(ctx context.Context, request *requests.Delivery) (*models.Delivery, error)
	UpdateStatus(ctx context.Context, id, status string) (*models.Delivery, error)
	Delete(ctx context.Context, id string) error
}
