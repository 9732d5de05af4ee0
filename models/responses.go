package models

// StatusResponse is the {success, message} envelope used by the
// authentication endpoints.
type StatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// LoginResponse is returned by a successful login.
type LoginResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	User    UserProfile `json:"user"`
}

// CheckAuthResponse reports whether the caller has a live session.
type CheckAuthResponse struct {
	IsAuthenticated bool         `json:"isAuthenticated"`
	User            *UserProfile `json:"user,omitempty"`
}

// MessageResponse is a plain {message} body.
type MessageResponse struct {
	Message string `json:"message"`
}

// FieldsErrorResponse names the form fields that failed validation.
type FieldsErrorResponse struct {
	Message string   `json:"message"`
	Fields  []string `json:"fields,omitempty"`
}

// ErrorResponse is a plain {error} body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// PropertyResponse is returned after a listing is published.
type PropertyResponse struct {
	Message  string   `json:"message"`
	Property Property `json:"property"`
}

// UserResponse is returned after a role change.
type UserResponse struct {
	Message string `json:"message"`
	User    User   `json:"user"`
}
