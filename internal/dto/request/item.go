package request

type ReportItemRequest struct {
	Title            string  `json:"title" validate:"required"`
	Description      string  `json:"description" validate:"required"`
	DateLostFound    string  `json:"date_lost_found" validate:"required"`
	ReportedByUserID string  `json:"reported_by_user_id" validate:"required"`
	LocationID       int64   `json:"location_id" validate:"required"`
	CategoryID       int64   `json:"category_id" validate:"required"`
	ImageURL         *string `json:"image_url,omitempty"`
}
