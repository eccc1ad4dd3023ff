package requests

import "time"

// MealPreparation is the assignment payload sent when pantry staff picks a
// diet chart for a patient. Status defaults to Pending when omitted.
type MealPreparation struct {
	PantryStaffID string `json:"pantryStaffId" validate:"required,object_id"`
	DietChartID   string `json:"dietChartId" validate:"required,object_id"`
	PatientID     string `json:"patientId" validate:"required,object_id"`
	Status        string `json:"status" validate:"omitempty,meal_status"`
}

type UpdateMealStatus struct {
	Status string `json:"status" validate:"required,meal_status"`
}

// Delivery is the assignment payload sent when a prepared meal is handed to
// delivery personnel with a chosen delivery time.
type Delivery struct {
	DeliveryPersonnelID string    `json:"deliveryPersonnelId" validate:"required,object_id"`
	MealPreparationID   string    `json:"mealPreparationId" validate:"required,object_id"`
	PatientID           string    `json:"patientId" validate:"required,object_id"`
	DeliveryTime        time.Time `json:"deliveryTime" validate:"required"`
	Status              string    `json:"status" validate:"omitempty,delivery_status"`
}

type UpdateDeliveryStatus struct {
	Status string `json:"status" validate:"required,delivery_status"`
}
