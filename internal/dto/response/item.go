package response

import (
	"time"

	"lostfound-api/internal/data/entity"
)

type ItemSummaryResponse struct {
	ItemID        string    `json:"item_id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	DateLostFound string    `json:"date_lost_found"`
	LocationName  string    `json:"location_name"`
	CategoryName  string    `json:"category_name"`
	DateReported  time.Time `json:"date_reported"`
}

type CountResponse struct {
	Count int64 `json:"count"`
}

func ItemSummaryToResponse(item *entity.ItemSummary) ItemSummaryResponse {
	return ItemSummaryResponse{
		ItemID:        item.ItemID.String(),
		Title:         item.Title,
		Description:   item.Description,
		DateLostFound: item.DateLostFound,
		LocationName:  item.LocationName,
		CategoryName:  item.CategoryName,
		DateReported:  item.DateReported,
	}
}
