package models

import "time"

// Message is a note sent by a user to the agent of a listing.
type Message struct {
	ID         string    `json:"id"`
	SenderID   string    `json:"senderId"`
	ReceiverID string    `json:"receiverId"`
	PropertyID string    `json:"propertyId"`
	Content    string    `json:"content"`
	SentAt     time.Time `json:"sentAt"`
}
