package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Delivery struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	MealPreparationID   primitive.ObjectID `bson:"mealPreparationId" json:"mealPreparationId"`
	DeliveryPersonnelID primitive.ObjectID `bson:"deliveryPersonnelId" json:"deliveryPersonnelId"`
	PatientID           primitive.ObjectID `bson:"patientId" json:"patientId"`
	DeliveryTime        time.Time          `bson:"deliveryTime" json:"deliveryTime"`
	Status              string             `bson:"status" json:"status"`
	TimeModel           `bson:",inline"`
}
