package wire

import (
	"lostfound-api/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler) {
	r.Post("/register", authHandler.Register)
	r.Post("/login", authHandler.Login)
}
