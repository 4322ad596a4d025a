package usecase

import (
	"context"
	"fmt"

	"lostfound-api/internal/data/entity"
	"lostfound-api/internal/data/repository"
	"lostfound-api/internal/dto/request"
	"lostfound-api/internal/dto/response"
	"lostfound-api/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultListLimit is used when the caller supplies no valid positive limit.
const DefaultListLimit = 20

type ItemService interface {
	Report(ctx context.Context, itemType entity.ItemType, req *request.ReportItemRequest) error
	ListActive(ctx context.Context, itemType entity.ItemType, limit int) ([]response.ItemSummaryResponse, error)
	CountActive(ctx context.Context, itemType entity.ItemType) (int64, error)
	CountReportedBy(ctx context.Context, userID string) (int64, error)
}

type itemService struct {
	itemRepo repository.ItemRepository
	log      *zap.Logger
}

func NewItemService(itemRepo repository.ItemRepository, log *zap.Logger) ItemService {
	return &itemService{
		itemRepo: itemRepo,
		log:      log,
	}
}

// Report persists a new lost or found report. Every new report starts out
// Active; claiming or returning an item is not part of this API yet.
func (s *itemService) Report(ctx context.Context, itemType entity.ItemType, req *request.ReportItemRequest) error {
	// 1. Validate input shape
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Report validation failed",
			zap.Any("errors", errs),
			zap.String("item_type", string(itemType)),
		)
		return &ValidationError{
			Message: "validation failed: " + utils.FormatValidationErrors(errs),
			Fields:  errs,
		}
	}

	// 2. Persist with a generated ID; referential-integrity failures on the
	// reporter/location/category keys surface as plain store errors
	item := &entity.Item{
		ItemID:           uuid.New(),
		Title:            req.Title,
		Description:      req.Description,
		ItemType:         itemType,
		DateLostFound:    req.DateLostFound,
		ReportedByUserID: req.ReportedByUserID,
		LocationID:       req.LocationID,
		CategoryID:       req.CategoryID,
		CurrentStatus:    entity.StatusActive,
		ImageURL:         req.ImageURL,
	}

	if err := s.itemRepo.Create(ctx, item); err != nil {
		s.log.Error("Failed to report item",
			zap.Error(err),
			zap.String("item_type", string(itemType)),
			zap.String("reported_by", req.ReportedByUserID),
		)
		return fmt.Errorf("failed to report %s item", itemType)
	}

	s.log.Info("Item reported",
		zap.String("item_id", item.ItemID.String()),
		zap.String("item_type", string(itemType)),
		zap.String("reported_by", item.ReportedByUserID),
	)

	return nil
}

func (s *itemService) ListActive(ctx context.Context, itemType entity.ItemType, limit int) ([]response.ItemSummaryResponse, error) {
	if limit < 1 {
		limit = DefaultListLimit
	}

	items, err := s.itemRepo.FindActiveByType(ctx, itemType, limit)
	if err != nil {
		s.log.Error("Failed to list items",
			zap.Error(err),
			zap.String("item_type", string(itemType)),
			zap.Int("limit", limit),
		)
		return nil, fmt.Errorf("failed to list %s items", itemType)
	}

	summaries := make([]response.ItemSummaryResponse, len(items))
	for i, item := range items {
		summaries[i] = response.ItemSummaryToResponse(item)
	}

	return summaries, nil
}

func (s *itemService) CountActive(ctx context.Context, itemType entity.ItemType) (int64, error) {
	count, err := s.itemRepo.CountActiveByType(ctx, itemType)
	if err != nil {
		s.log.Error("Failed to count items",
			zap.Error(err),
			zap.String("item_type", string(itemType)),
		)
		return 0, fmt.Errorf("failed to count %s items", itemType)
	}

	return count, nil
}

func (s *itemService) CountReportedBy(ctx context.Context, userID string) (int64, error) {
	count, err := s.itemRepo.CountActiveByReporter(ctx, userID)
	if err != nil {
		s.log.Error("Failed to count reported items",
			zap.Error(err),
			zap.String("user_id", userID),
		)
		return 0, fmt.Errorf("failed to count reported items")
	}

	return count, nil
}
