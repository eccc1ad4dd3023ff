package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"

	// Auth messages
	SignupSuccess        = "Account created successfully"
	LoginSuccess         = "Logged in successfully"
	LogoutSuccess        = "Logged out successfully"
	TokenValidateSuccess = "Token validated successfully"

	// Resource messages, %s is the resource name
	ResourceDeletedSuccess = "%s deleted successfully"
)
