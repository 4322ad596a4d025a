package adaptor

import (
	"net/http"

	"lostfound-api/internal/usecase"
	"lostfound-api/pkg/utils"

	"go.uber.org/zap"
)

type ReferenceHandler struct {
	service usecase.ReferenceService
	log     *zap.Logger
}

func NewReferenceHandler(service usecase.ReferenceService, log *zap.Logger) *ReferenceHandler {
	return &ReferenceHandler{
		service: service,
		log:     log,
	}
}

// Categories handles GET /categories
func (h *ReferenceHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.Categories(r.Context())
	if err != nil {
		respondServiceError(w, h.log, err, "list categories")
		return
	}

	utils.ResponseSuccess(w, "Categories retrieved", categories)
}

// Locations handles GET /locations
func (h *ReferenceHandler) Locations(w http.ResponseWriter, r *http.Request) {
	locations, err := h.service.Locations(r.Context())
	if err != nil {
		respondServiceError(w, h.log, err, "list locations")
		return
	}

	utils.ResponseSuccess(w, "Locations retrieved", locations)
}
