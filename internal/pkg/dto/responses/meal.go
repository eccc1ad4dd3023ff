package responses

import (
	"caretray-service/internal/app/models"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MealPreparation is the list/read shape with every reference populated.
// The dashboard reads nested fields directly (patient name, pantry staff
// contact, diet chart meal slots and instructions).
type MealPreparation struct {
	ID            primitive.ObjectID  `json:"_id"`
	PantryStaffID *models.PantryStaff `json:"pantryStaffId"`
	DietChartID   *models.DietChart   `json:"dietChartId"`
	PatientID     *models.Patient     `json:"patientId"`
	Status        string              `json:"status"`
	CreatedAt     time.Time           `json:"createdAt"`
	UpdatedAt     time.Time           `json:"updatedAt"`
}

// Delivery is the list/read shape with every reference populated.
type Delivery struct {
	ID                  primitive.ObjectID      `json:"_id"`
	MealPreparationID   *models.MealPreparation `json:"mealPreparationId"`
	DeliveryPersonnelID *models.DeliveryStaff   `json:"deliveryPersonnelId"`
	PatientID           *models.Patient         `json:"patientId"`
	DeliveryTime        time.Time               `json:"deliveryTime"`
	Status              string                  `json:"status"`
	CreatedAt           time.Time               `json:"createdAt"`
	UpdatedAt           time.Time               `json:"updatedAt"`
}
