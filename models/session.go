package models

import "time"

// Session is a server-side login record referenced by the session cookie.
// Its lifetime is fixed at creation and never extended.
type Session struct {
	ID        string      `json:"id"`
	UserID    string      `json:"userId"`
	User      UserProfile `json:"user"`
	CreatedAt time.Time   `json:"createdAt"`
	ExpiresAt time.Time   `json:"expiresAt"`
}

// Expired reports whether the session is no longer valid at now.
func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
