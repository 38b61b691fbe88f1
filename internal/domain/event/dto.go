// internal/domain/event/dto.go
package event

import "time"

// CreateRequest for event creation (admin only).
type CreateRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	ImageURL    string    `json:"image_url" binding:"required,url"`
	StartTime   time.Time `json:"start_time" binding:"required"`
	EndTime     time.Time `json:"end_time" binding:"required"`
	Price       string    `json:"price"`
	IsFree      bool      `json:"is_free"`
	URL         string    `json:"url"`
	Slots       int       `json:"slots"`
	CategoryID  string    `json:"category_id" binding:"required,uuid"`
}

// UpdateRequest for event updates. Nil fields are left unchanged.
type UpdateRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Location    *string    `json:"location"`
	ImageURL    *string    `json:"image_url"`
	StartTime   *time.Time `json:"start_time"`
	EndTime     *time.Time `json:"end_time"`
	Price       *string    `json:"price"`
	IsFree      *bool      `json:"is_free"`
	URL         *string    `json:"url"`
	Slots       *int       `json:"slots"`
	CategoryID  *string    `json:"category_id"`
}

// ListFilter narrows event listings.
type ListFilter struct {
	CategoryID string
	Limit      int
	Offset     int
}
