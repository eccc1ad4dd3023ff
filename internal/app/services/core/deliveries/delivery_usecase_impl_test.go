package deliveries

import (
	"caretray-service/internal/app/models"
	"caretray-service/internal/pkg/constvars"
	"caretray-service/internal/pkg/dto/requests"
	"caretray-service/internal/pkg/exceptions"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeResourceUsecase[T any] struct {
	items    []T
	byID     map[string]*T
	created  *T
	fieldsID string
	fields   map[string]interface{}
}

func (f *fakeResourceUsecase[T]) ListAll(ctx context.Context) ([]T, error) {
	return f.items, nil
}

func (f *fakeResourceUsecase[T]) FindByID(ctx context.Context, id string) (*T, error) {
	if item, ok := f.byID[id]; ok {
		return item, nil
	}
	return nil, exceptions.ErrResourceNotFound("resource")
}

func (f *fakeResourceUsecase[T]) Create(ctx context.Context, model *T) (*T, error) {
	f.created = model
	return model, nil
}

func (f *fakeResourceUsecase[T]) Update(ctx context.Context, id string, model *T) (*T, error) {
	return model, nil
}

func (f *fakeResourceUsecase[T]) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) (*T, error) {
	f.fieldsID = id
	f.fields = fields
	if item, ok := f.byID[id]; ok {
		return item, nil
	}
	return nil, exceptions.ErrResourceNotFound("resource")
}

func (f *fakeResourceUsecase[T]) Delete(ctx context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return exceptions.ErrResourceNotFound("resource")
	}
	delete(f.byID, id)
	return nil
}

func TestDeliveryUsecase_Create(t *testing.T) {
	ctx := context.Background()

	mealID := primitive.NewObjectID()
	personnelID := primitive.NewObjectID()
	patientID := primitive.NewObjectID()
	deliveryTime := time.Now().Add(2 * time.Hour)

	newFakes := func() (*fakeResourceUsecase[models.Delivery], *fakeResourceUsecase[models.MealPreparation], *fakeResourceUsecase[models.DeliveryStaff], *fakeResourceUsecase[models.Patient]) {
		return &fakeResourceUsecase[models.Delivery]{byID: map[string]*models.Delivery{}},
			&fakeResourceUsecase[models.MealPreparation]{byID: map[string]*models.MealPreparation{mealID.Hex(): {ID: mealID}}},
			&fakeResourceUsecase[models.DeliveryStaff]{byID: map[string]*models.DeliveryStaff{personnelID.Hex(): {ID: personnelID}}},
			&fakeResourceUsecase[models.Patient]{byID: map[string]*models.Patient{patientID.Hex(): {ID: patientID}}}
	}

	t.Run("defaults a fresh hand-off to Pending and keeps the chosen time", func(t *testing.T) {
		deliveryFake, mealFake, personnelFake, patientFake := newFakes()
		usecase := NewUsecase(deliveryFake, mealFake, personnelFake, patientFake)

		created, err := usecase.Create(ctx, &requests.Delivery{
			MealPreparationID:   mealID.Hex(),
			DeliveryPersonnelID: personnelID.Hex(),
			PatientID:           patientID.Hex(),
			DeliveryTime:        deliveryTime,
		})
		assert.NoError(t, err)
		assert.Equal(t, constvars.DeliveryStatusPending, created.Status)
		assert.Equal(t, personnelID, created.DeliveryPersonnelID)
		assert.True(t, created.DeliveryTime.Equal(deliveryTime))
	})

	t.Run("rejects a hand-off for an unknown meal preparation", func(t *testing.T) {
		deliveryFake, _, personnelFake, patientFake := newFakes()
		emptyMeals := &fakeResourceUsecase[models.MealPreparation]{byID: map[string]*models.MealPreparation{}}
		usecase := NewUsecase(deliveryFake, emptyMeals, personnelFake, patientFake)

		_, err := usecase.Create(ctx, &requests.Delivery{
			MealPreparationID:   mealID.Hex(),
			DeliveryPersonnelID: personnelID.Hex(),
			PatientID:           patientID.Hex(),
			DeliveryTime:        deliveryTime,
		})

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
		assert.Nil(t, deliveryFake.created)
	})
}

func TestDeliveryUsecase_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	deliveryID := primitive.NewObjectID()

	deliveryFake := &fakeResourceUsecase[models.Delivery]{
		byID: map[string]*models.Delivery{deliveryID.Hex(): {ID: deliveryID, Status: constvars.DeliveryStatusPending}},
	}
	usecase := NewUsecase(deliveryFake, nil, nil, nil)

	_, err := usecase.UpdateStatus(ctx, deliveryID.Hex(), constvars.DeliveryStatusCompleted)
	assert.NoError(t, err)
	assert.Equal(t, deliveryID.Hex(), deliveryFake.fieldsID)
	assert.Equal(t, map[string]interface{}{"status": constvars.DeliveryStatusCompleted}, deliveryFake.fields,
		"only the status field may be written")
}

func TestDeliveryUsecase_ListPopulated(t *testing.T) {
	ctx := context.Background()

	mealID := primitive.NewObjectID()
	personnelID := primitive.NewObjectID()
	patientID := primitive.NewObjectID()
	deliveryID := primitive.NewObjectID()
	deliveryTime := time.Now().Add(time.Hour)

	deliveryFake := &fakeResourceUsecase[models.Delivery]{
		items: []models.Delivery{{
			ID:                  deliveryID,
			MealPreparationID:   mealID,
			DeliveryPersonnelID: personnelID,
			PatientID:           patientID,
			DeliveryTime:        deliveryTime,
			Status:              constvars.DeliveryStatusPending,
		}},
	}
	mealFake := &fakeResourceUsecase[models.MealPreparation]{
		items: []models.MealPreparation{{ID: mealID, Status: constvars.MealStatusCompleted}},
	}
	personnelFake := &fakeResourceUsecase[models.DeliveryStaff]{
		items: []models.DeliveryStaff{{ID: personnelID, Name: "Suresh"}},
	}
	patientFake := &fakeResourceUsecase[models.Patient]{
		items: []models.Patient{{ID: patientID, Name: "Asha Rao", RoomNumber: "12"}},
	}

	usecase := NewUsecase(deliveryFake, mealFake, personnelFake, patientFake)

	result, err := usecase.ListPopulated(ctx)
	assert.NoError(t, err)
	assert.Len(t, result, 1)
	assert.Equal(t, constvars.MealStatusCompleted, result[0].MealPreparationID.Status)
	assert.Equal(t, "Suresh", result[0].DeliveryPersonnelID.Name)
	assert.Equal(t, "Asha Rao", result[0].PatientID.Name)
	assert.True(t, result[0].DeliveryTime.Equal(deliveryTime))
}
