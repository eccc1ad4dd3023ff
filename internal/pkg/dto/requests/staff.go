package requests

type PantryStaff struct {
	Name        string              `json:"name" validate:"required"`
	ContactInfo OptionalContactInfo `json:"contactInfo"`
	Location    string              `json:"location" validate:"required"`
}

type DeliveryStaff struct {
	Name        string              `json:"name" validate:"required"`
	ContactInfo OptionalContactInfo `json:"contactInfo"`
}
