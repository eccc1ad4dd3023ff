package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type ContactInfo struct {
	Phone string `bson:"phone" json:"phone"`
	Email string `bson:"email,omitempty" json:"email,omitempty"`
}

type EmergencyContact struct {
	Name  string `bson:"name,omitempty" json:"name,omitempty"`
	Phone string `bson:"phone,omitempty" json:"phone,omitempty"`
}

type Patient struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name             string             `bson:"name" json:"name"`
	DOB              string             `bson:"dob" json:"dob"`
	Diseases         []string           `bson:"diseases" json:"diseases"`
	Allergies        []string           `bson:"allergies" json:"allergies"`
	RoomNumber       string             `bson:"roomNumber" json:"roomNumber"`
	BedNumber        string             `bson:"bedNumber" json:"bedNumber"`
	FloorNumber      string             `bson:"floorNumber" json:"floorNumber"`
	Age              int                `bson:"age" json:"age"`
	Gender           string             `bson:"gender" json:"gender"`
	ContactInfo      ContactInfo        `bson:"contactInfo" json:"contactInfo"`
	EmergencyContact []EmergencyContact `bson:"emergencyContact" json:"emergencyContact"`
	TimeModel        `bson:",inline"`
}
