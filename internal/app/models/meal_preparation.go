package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type MealPreparation struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	PantryStaffID primitive.ObjectID `bson:"pantryStaffId" json:"pantryStaffId"`
	DietChartID   primitive.ObjectID `bson:"dietChartId" json:"dietChartId"`
	PatientID     primitive.ObjectID `bson:"patientId" json:"patientId"`
	Status        string             `bson:"status" json:"status"`
	TimeModel     `bson:",inline"`
}
