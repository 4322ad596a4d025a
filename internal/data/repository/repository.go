package repository

import (
	"lostfound-api/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User     UserRepository
	Item     ItemRepository
	Category CategoryRepository
	Location LocationRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:     NewUserRepository(db, log),
		Item:     NewItemRepository(db, log),
		Category: NewCategoryRepository(db, log),
		Location: NewLocationRepository(db, log),
	}
}
