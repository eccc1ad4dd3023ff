package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type PantryStaff struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name        string             `bson:"name" json:"name"`
	ContactInfo ContactInfo        `bson:"contactInfo" json:"contactInfo"`
	Location    string             `bson:"location" json:"location"`
	TimeModel   `bson:",inline"`
}

type DeliveryStaff struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name        string             `bson:"name" json:"name"`
	ContactInfo ContactInfo        `bson:"contactInfo" json:"contactInfo"`
	TimeModel   `bson:",inline"`
}
