package catalog

import "time"

// Product is one orderable menu entry.
// DisplayOrder controls presentation within a category and is unique
// per category in practice (concurrent admin writes can race on it).
type Product struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Price        float64   `json:"price"`
	Category     string    `json:"category"`
	Description  string    `json:"description,omitempty"`
	ImageURL     string    `json:"imageUrl,omitempty"`
	AIHint       string    `json:"aiHint,omitempty"`
	DisplayOrder int       `json:"displayOrder"`
	CreatedAt    time.Time `json:"createdAt,omitempty"`
	UpdatedAt    time.Time `json:"updatedAt,omitempty"`
}

// Defaults applied to AI-extracted products missing fields
const (
	DefaultCategory    = "Uncategorized"
	DefaultProductName = "Unnamed Product"
)
