package models

import "time"

// Favorite links a user to a property they saved.
// A (UserID, PropertyID) pair appears at most once.
type Favorite struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	PropertyID string    `json:"propertyId"`
	AddedAt    time.Time `json:"addedAt"`

	// Property is filled when favorites are listed together with their listings.
	Property *Property `json:"property,omitempty"`
}
