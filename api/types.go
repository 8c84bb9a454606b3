package api

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	authHandler           authHandler
	projectHandler        projectHandler
	tagHandler            tagHandler
	skillCategoryHandler  skillCategoryHandler
	skillHandler          skillHandler
	experienceHandler     experienceHandler
	responsibilityHandler responsibilityHandler
	publicHandler         publicHandler
	contactHandler        contactHandler
}

// ErrorResponse represents an error response from the API
type ErrorResponse struct {
	Error   string `json:"error"`
	Field   string `json:"field,omitempty"`
	Details string `json:"details,omitempty"`
}

// MessageResponse is a simple acknowledgement body
type MessageResponse struct {
	Message string `json:"message"`
}
