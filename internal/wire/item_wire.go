package wire

import (
	"lostfound-api/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireItem(r chi.Router, itemHandler *adaptor.ItemHandler) {
	// Report submissions
	r.Post("/lost", itemHandler.ReportLost)
	r.Post("/found", itemHandler.ReportFound)

	// Listings
	r.Get("/lost", itemHandler.ListLost)
	r.Get("/found", itemHandler.ListFound)

	// Count statistics
	r.Get("/stats/lost", itemHandler.StatsLost)
	r.Get("/stats/found", itemHandler.StatsFound)
	r.Get("/stats/myreported/{userID}", itemHandler.StatsMyReported)
}
