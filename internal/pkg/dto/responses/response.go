package responses

type Message struct {
	Message string `json:"message"`
}

type Auth struct {
	Message  string `json:"message"`
	UserRole string `json:"userRole"`
}
