package requests

type Ingredient struct {
	Ingredient string `json:"ingredient" validate:"required"`
	Quantity   string `json:"quantity" validate:"required"`
}

type DietChart struct {
	PatientID    string       `json:"patientId" validate:"required,object_id"`
	MorningMeal  string       `json:"morningMeal" validate:"required"`
	EveningMeal  string       `json:"eveningMeal" validate:"required"`
	NightMeal    string       `json:"nightMeal" validate:"required"`
	Ingredients  []Ingredient `json:"ingredients" validate:"min=1,dive"`
	Instructions []string     `json:"instructions"`
}
