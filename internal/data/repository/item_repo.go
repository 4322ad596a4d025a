package repository

import (
	"context"
	"fmt"

	"lostfound-api/internal/data/entity"
	"lostfound-api/pkg/database"

	"go.uber.org/zap"
)

type ItemRepository interface {
	Create(ctx context.Context, item *entity.Item) error
	FindActiveByType(ctx context.Context, itemType entity.ItemType, limit int) ([]*entity.ItemSummary, error)
	CountActiveByType(ctx context.Context, itemType entity.ItemType) (int64, error)
	CountActiveByReporter(ctx context.Context, userID string) (int64, error)
}

type itemRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewItemRepository(db database.PgxIface, log *zap.Logger) ItemRepository {
	return &itemRepository{
		db:  db,
		log: log.With(zap.String("repository", "item")),
	}
}

// Create inserts a new report. DateReported is stamped by the store, not
// the caller.
func (r *itemRepository) Create(ctx context.Context, item *entity.Item) error {
	query := `
		INSERT INTO items (item_id, title, description, item_type, date_lost_found,
		                   reported_by_user_id, location_id, category_id,
		                   current_status, image_url, date_reported)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW())
	`

	_, err := r.db.Exec(ctx, query,
		item.ItemID,
		item.Title,
		item.Description,
		item.ItemType,
		item.DateLostFound,
		item.ReportedByUserID,
		item.LocationID,
		item.CategoryID,
		item.CurrentStatus,
		item.ImageURL,
	)

	if err != nil {
		r.log.Error("Failed to create item report",
			zap.Error(err),
			zap.String("item_id", item.ItemID.String()),
			zap.String("item_type", string(item.ItemType)),
			zap.String("reported_by", item.ReportedByUserID),
		)
		return fmt.Errorf("create %s item %s: %w", item.ItemType, item.ItemID.String(), err)
	}

	return nil
}

// FindActiveByType lists active reports of one type joined with their
// location and category names, newest report first.
func (r *itemRepository) FindActiveByType(ctx context.Context, itemType entity.ItemType, limit int) ([]*entity.ItemSummary, error) {
	query := `
		SELECT i.item_id, i.title, i.description, i.date_lost_found,
		       l.location_name, c.category_name, i.date_reported
		FROM items i
		JOIN locations l ON i.location_id = l.location_id
		JOIN categories c ON i.category_id = c.category_id
		WHERE i.item_type = $1 AND i.current_status = $2
		ORDER BY i.date_reported DESC
		LIMIT $3
	`

	rows, err := r.db.Query(ctx, query, itemType, entity.StatusActive, limit)
	if err != nil {
		r.log.Error("Failed to list items",
			zap.Error(err),
			zap.String("item_type", string(itemType)),
			zap.Int("limit", limit),
		)
		return nil, fmt.Errorf("list %s items limit %d: %w", itemType, limit, err)
	}
	defer rows.Close()

	var items []*entity.ItemSummary
	for rows.Next() {
		var item entity.ItemSummary
		err := rows.Scan(
			&item.ItemID,
			&item.Title,
			&item.Description,
			&item.DateLostFound,
			&item.LocationName,
			&item.CategoryName,
			&item.DateReported,
		)
		if err != nil {
			r.log.Error("Failed to scan item row", zap.Error(err))
			return nil, fmt.Errorf("scan item row: %w", err)
		}
		items = append(items, &item)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate item rows: %w", err)
	}

	return items, nil
}

func (r *itemRepository) CountActiveByType(ctx context.Context, itemType entity.ItemType) (int64, error) {
	query := `SELECT COUNT(*) FROM items WHERE item_type = $1 AND current_status = $2`

	var count int64
	err := r.db.QueryRow(ctx, query, itemType, entity.StatusActive).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count items",
			zap.Error(err),
			zap.String("item_type", string(itemType)),
		)
		return 0, fmt.Errorf("count %s items: %w", itemType, err)
	}

	return count, nil
}

// CountActiveByReporter counts active reports of either type made by one
// account.
func (r *itemRepository) CountActiveByReporter(ctx context.Context, userID string) (int64, error) {
	query := `SELECT COUNT(*) FROM items WHERE reported_by_user_id = $1 AND current_status = $2`

	var count int64
	err := r.db.QueryRow(ctx, query, userID, entity.StatusActive).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count items by reporter",
			zap.Error(err),
			zap.String("user_id", userID),
		)
		return 0, fmt.Errorf("count items by reporter %s: %w", userID, err)
	}

	return count, nil
}
