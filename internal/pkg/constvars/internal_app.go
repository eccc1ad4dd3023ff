package constvars

const (
	// Mongo collections
	MongoCollectionUsers         = "users"
	MongoCollectionPatients      = "patients"
	MongoCollectionDietCharts    = "dietcharts"
	MongoCollectionPantryStaff   = "pantrystaffs"
	MongoCollectionDeliveryStaff = "deliverypersonnels"
	MongoCollectionMeals         = "mealpreparations"
	MongoCollectionDeliveries    = "mealdeliveries"

	// Redis key prefixes
	RedisKeySession        = "session:"
	RedisKeyCollectionList = "collection:"

	// Resource names, used as cache keys and in notification events
	ResourcePatient       = "patient"
	ResourceDietChart     = "diet-chart"
	ResourcePantryStaff   = "pantry-staff"
	ResourceDeliveryStaff = "delivery-personnel"
	ResourceMeal          = "meal-preparation"
	ResourceDelivery      = "meal-delivery"
)

// Roles returned by validate-token and stored on sessions.
const (
	RoleAdmin         = "admin"
	RolePantryStaff   = "pantry"
	RoleDeliveryStaff = "delivery"
)

// Meal preparation statuses. Wire values keep the space in "In Progress";
// that is what the dashboard renders and sends.
const (
	MealStatusPending    = "Pending"
	MealStatusInProgress = "In Progress"
	MealStatusCompleted  = "Completed"
)

// Delivery statuses.
const (
	DeliveryStatusPending   = "Pending"
	DeliveryStatusCompleted = "Completed"
)

// Gender values accepted on patient records.
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOther  = "Other"
)

type ContextKey string

const (
	ContextSessionKey ContextKey = "session"
)
