package models

// SignupRequest is the body of POST /api/signup.
type SignupRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Phone     string `json:"phone"`
}

// LoginRequest is the body of POST /api/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// FavoriteRequest is the body of POST and DELETE /api/favorite.
type FavoriteRequest struct {
	PropertyID string `json:"propertyId"`
}

// ChangeRoleRequest is the body of PUT /api/users/role/{userID}.
type ChangeRoleRequest struct {
	Role string `json:"role"`
}

// MessageRequest is the body of POST /api/messages.
type MessageRequest struct {
	PropertyID string `json:"propertyId"`
	Content    string `json:"content"`
}
