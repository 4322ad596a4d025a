package entity

import (
	"time"

	"github.com/google/uuid"
)

type ItemType string

const (
	ItemTypeLost  ItemType = "Lost"
	ItemTypeFound ItemType = "Found"
)

type ItemStatus string

const (
	// StatusActive is the only status the API assigns today. Claimed and
	// Returned exist in the schema but no endpoint transitions into them yet.
	StatusActive   ItemStatus = "Active"
	StatusClaimed  ItemStatus = "Claimed"
	StatusReturned ItemStatus = "Returned"
)

type Item struct {
	ItemID           uuid.UUID  `db:"item_id"`
	Title            string     `db:"title"`
	Description      string     `db:"description"`
	ItemType         ItemType   `db:"item_type"`
	DateLostFound    string     `db:"date_lost_found"`
	ReportedByUserID string     `db:"reported_by_user_id"`
	LocationID       int64      `db:"location_id"`
	CategoryID       int64      `db:"category_id"`
	CurrentStatus    ItemStatus `db:"current_status"`
	ImageURL         *string    `db:"image_url"`
	DateReported     time.Time  `db:"date_reported"`
}

// ItemSummary is a listing row joined with its location and category names.
type ItemSummary struct {
	ItemID        uuid.UUID `db:"item_id"`
	Title         string    `db:"title"`
	Description   string    `db:"description"`
	DateLostFound string    `db:"date_lost_found"`
	LocationName  string    `db:"location_name"`
	CategoryName  string    `db:"category_name"`
	DateReported  time.Time `db:"date_reported"`
}
