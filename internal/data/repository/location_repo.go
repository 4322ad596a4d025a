package repository

import (
	"context"
	"fmt"

	"lostfound-api/internal/data/entity"
	"lostfound-api/pkg/database"

	"go.uber.org/zap"
)

type LocationRepository interface {
	FindAll(ctx context.Context) ([]*entity.Location, error)
}

type locationRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewLocationRepository(db database.PgxIface, log *zap.Logger) LocationRepository {
	return &locationRepository{
		db:  db,
		log: log.With(zap.String("repository", "location")),
	}
}

func (r *locationRepository) FindAll(ctx context.Context) ([]*entity.Location, error) {
	query := `SELECT location_id, location_name FROM locations ORDER BY location_name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list locations", zap.Error(err))
		return nil, fmt.Errorf("list locations: %w", err)
	}
	defer rows.Close()

	var locations []*entity.Location
	for rows.Next() {
		var location entity.Location
		if err := rows.Scan(&location.LocationID, &location.LocationName); err != nil {
			r.log.Error("Failed to scan location row", zap.Error(err))
			return nil, fmt.Errorf("scan location row: %w", err)
		}
		locations = append(locations, &location)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate location rows: %w", err)
	}

	return locations, nil
}
