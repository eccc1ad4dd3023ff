package responses

import (
	"caretray-service/internal/app/models"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PatientRef is the denormalized patient subset the dashboard renders next
// to a diet chart: name plus the medical context the pantry needs.
type PatientRef struct {
	ID        primitive.ObjectID `json:"_id"`
	Name      string             `json:"name"`
	Diseases  []string           `json:"diseases"`
	Allergies []string           `json:"allergies"`
}

func NewPatientRef(patient *models.Patient) *PatientRef {
	if patient == nil {
		return nil
	}
	return &PatientRef{
		ID:        patient.ID,
		Name:      patient.Name,
		Diseases:  patient.Diseases,
		Allergies: patient.Allergies,
	}
}

// DietChart is the list/read shape with the patient reference populated.
type DietChart struct {
	ID           primitive.ObjectID  `json:"_id"`
	PatientID    *PatientRef         `json:"patientId"`
	MorningMeal  string              `json:"morningMeal"`
	EveningMeal  string              `json:"eveningMeal"`
	NightMeal    string              `json:"nightMeal"`
	Ingredients  []models.Ingredient `json:"ingredients"`
	Instructions []string            `json:"instructions"`
	CreatedAt    time.Time           `json:"createdAt"`
	UpdatedAt    time.Time           `json:"updatedAt"`
}
