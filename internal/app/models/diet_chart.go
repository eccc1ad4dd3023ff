package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Ingredient struct {
	Ingredient string `bson:"ingredient" json:"ingredient"`
	Quantity   string `bson:"quantity" json:"quantity"`
}

type DietChart struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	PatientID    primitive.ObjectID `bson:"patientId" json:"patientId"`
	MorningMeal  string             `bson:"morningMeal" json:"morningMeal"`
	EveningMeal  string             `bson:"eveningMeal" json:"eveningMeal"`
	NightMeal    string             `bson:"nightMeal" json:"nightMeal"`
	Ingredients  []Ingredient       `bson:"ingredients" json:"ingredients"`
	Instructions []string           `bson:"instructions" json:"instructions"`
	TimeModel    `bson:",inline"`
}
