package models

import (
	"errors"
	"time"
)

// ErrInvalidCategory is returned by [ParseCategory] for values other than
// "sell" and "rent".
var ErrInvalidCategory = errors.New("invalid category")

// Category tells whether a listing is for sale or for rent.
type Category string

const (
	CategorySell Category = "sell"
	CategoryRent Category = "rent"
)

// ParseCategory converts a raw string into a [Category].
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategorySell, CategoryRent:
		return Category(s), nil
	default:
		return "", ErrInvalidCategory
	}
}

// Property is a real-estate listing published by an agent.
//
// Photos holds stored filenames in upload order; the files themselves are
// served from the photo directory under /uploads/.
type Property struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Surface     float64   `json:"surface"`
	Rooms       int       `json:"rooms"`
	Type        string    `json:"type"`
	Category    Category  `json:"category"`
	Address     string    `json:"address"`
	Photos      []string  `json:"photos"`
	Diagnostics string    `json:"diagnostics"`
	Equipment   []string  `json:"equipment"`
	PublishedAt time.Time `json:"publishedAt"`
	AgentID     string    `json:"agentId"`
	IsFeatured  bool      `json:"isFeatured"`
}

// PhotoUpload is a single uploaded image waiting to be stored.
type PhotoUpload struct {
	// OriginalName is the client-side filename; only its extension is kept.
	OriginalName string
	Content      []byte
}

// PropertyDraft carries the raw form values of a publish request.
// Numeric fields stay strings until the service parses them.
type PropertyDraft struct {
	Title       string
	Description string
	Price       string
	Surface     string
	Rooms       string
	Type        string
	Category    string
	Address     string
	Diagnostics string
	Equipment   []string
	Photos      []PhotoUpload
}
