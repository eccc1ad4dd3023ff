package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":        "is required",
	"email":           "must be a valid email",
	"min":             "must be at least %s characters long",
	"max":             "maximum at %s characters long",
	"numeric":         "must be a number",
	"gt":              "must be greater than %s",
	"gte":             "must be greater than or equal to %s",
	"oneof":           "must be one of [%s]",
	"dive":            "is invalid",
	"password":        "must be at least 8 characters long, contain at least one special character, and one uppercase letter",
	"gender":          "must be one of 'Male', 'Female' or 'Other'",
	"meal_status":     "must be one of 'Pending', 'In Progress' or 'Completed'",
	"delivery_status": "must be either 'Pending' or 'Completed'",
	"object_id":       "must be a valid object id",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"gt":    true,
	"gte":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientSomethingWrongWithApplication = "something went wrong with the application, please try again later"
	ErrClientCannotProcessRequest          = "cannot process the request"
	ErrClientInvalidCredentials            = "Invalid credentials"
	ErrClientEmailAlreadyExists            = "email already used"
	ErrClientNotAuthorized                 = "you are not authorized to perform this action"
	ErrClientNotLoggedIn                   = "you are not logged in or your session has expired"
	ErrClientResourceNotFound              = "%s not found"
	ErrClientServerLongRespond             = "server took too long to respond"
)

// Error messages for developers
const (
	ErrDevCannotParseJSON           = "failed to parse JSON request body"
	ErrDevValidationFailed          = "request validation failed"
	ErrDevURLParamIDMissing         = "url parameter '%s' is missing or not a valid id"
	ErrDevFailedToHashPassword      = "failed to hash password"
	ErrDevInvalidCredentials        = "invalid email or password"
	ErrDevEmailAlreadyExists        = "email is already registered"
	ErrDevAuthTokenMissing          = "session cookie is missing"
	ErrDevAuthTokenInvalidOrExpired = "session token is invalid or expired"
	ErrDevAuthGenerateToken         = "failed to generate session token"
	ErrDevSessionNotFound           = "session not found in store"
	ErrDevServerDeadlineExceeded    = "context deadline exceeded while processing request"
	ErrDevResourceNotFound          = "%s with the given id does not exist"

	ErrDevDBFailedToFindDocument    = "failed to find document"
	ErrDevDBFailedToInsertDocument  = "failed to insert document"
	ErrDevDBFailedToUpdateDocument  = "failed to update document"
	ErrDevDBFailedToDeleteDocument  = "failed to delete document"
	ErrDevDBFailedToIterateDocument = "failed to iterate documents"
	ErrDevDBStringNotObjectID       = "string is not a valid mongo object id"

	ErrDevRedisSet         = "failed to set value to redis"
	ErrDevRedisGet         = "failed to get value with key '%s' from redis"
	ErrDevRedisDelete      = "failed to delete value from redis"
	ErrDevRedisStoreSess   = "failed to store session in redis"
	ErrDevCannotMarshal    = "failed to marshal value to JSON"
	ErrDevPublishEvent     = "failed to publish notification event"
	ErrDevDeclareQueue     = "failed to declare notification queue"
	ErrDevOpenChannel      = "failed to open channel on broker connection"
	ErrDevInvalidInput     = "input is invalid"
	ErrDevUnknownRenderVal = "unknown"
)
