package usecase

import (
	"lostfound-api/internal/data/repository"

	"go.uber.org/zap"
)

type Service struct {
	Auth      AuthService
	Item      ItemService
	Reference ReferenceService
}

func NewService(repo *repository.Repository, log *zap.Logger) *Service {
	return &Service{
		Auth:      NewAuthService(repo.User, log),
		Item:      NewItemService(repo.Item, log),
		Reference: NewReferenceService(repo.Category, repo.Location, log),
	}
}
