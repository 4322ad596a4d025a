package adaptor

import (
	"errors"
	"net/http"

	"lostfound-api/internal/data/repository"
	"lostfound-api/internal/usecase"
	"lostfound-api/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth      *AuthHandler
	Item      *ItemHandler
	Reference *ReferenceHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:      NewAuthHandler(service.Auth, log),
		Item:      NewItemHandler(service.Item, log),
		Reference: NewReferenceHandler(service.Reference, log),
	}
}

// respondServiceError maps typed service errors onto the response helpers.
// Anything unrecognized is a 500 with a generic message; the detail stays
// in the logs.
func respondServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	var validationErr *usecase.ValidationError
	var conflictErr *repository.ConflictError

	switch {
	case errors.As(err, &validationErr):
		log.Warn(operation+" rejected - validation", zap.Error(err))
		utils.ResponseBadRequest(w, validationErr.Message, validationErr.Fields)

	case errors.As(err, &conflictErr):
		log.Warn(operation+" rejected - conflict", zap.Error(err))
		utils.ResponseConflict(w, conflictErr.Error())

	case errors.Is(err, usecase.ErrInvalidCredentials):
		log.Warn(operation+" rejected - invalid credentials")
		utils.ResponseUnauthorized(w, err.Error())

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
