package wire

import (
	"lostfound-api/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireReference(r chi.Router, referenceHandler *adaptor.ReferenceHandler) {
	r.Get("/categories", referenceHandler.Categories)
	r.Get("/locations", referenceHandler.Locations)
}
