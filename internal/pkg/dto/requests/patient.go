package requests

type ContactInfo struct {
	Phone string `json:"phone" validate:"required"`
	Email string `json:"email" validate:"omitempty,email"`
}

type OptionalContactInfo struct {
	Phone string `json:"phone"`
	Email string `json:"email" validate:"omitempty,email"`
}

type EmergencyContact struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// Patient accepts dob as optional: admission records created at the bedside
// often carry age only, with dob filled in later from the chart.
type Patient struct {
	Name             string             `json:"name" validate:"required"`
	DOB              string             `json:"dob"`
	Diseases         []string           `json:"diseases"`
	Allergies        []string           `json:"allergies"`
	RoomNumber       string             `json:"roomNumber" validate:"required"`
	BedNumber        string             `json:"bedNumber" validate:"required"`
	FloorNumber      string             `json:"floorNumber" validate:"required"`
	Age              int                `json:"age" validate:"required,gt=0"`
	Gender           string             `json:"gender" validate:"required,gender"`
	ContactInfo      ContactInfo        `json:"contactInfo"`
	EmergencyContact []EmergencyContact `json:"emergencyContact" validate:"min=1"`
}
