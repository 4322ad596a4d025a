package usecase

import (
	"context"
	"fmt"

	"lostfound-api/internal/data/repository"
	"lostfound-api/internal/dto/response"

	"go.uber.org/zap"
)

// ReferenceService serves the static category and location listings the
// report forms are built from. The rows themselves are managed outside
// this API.
type ReferenceService interface {
	Categories(ctx context.Context) ([]response.ReferenceResponse, error)
	Locations(ctx context.Context) ([]response.ReferenceResponse, error)
}

type referenceService struct {
	categoryRepo repository.CategoryRepository
	locationRepo repository.LocationRepository
	log          *zap.Logger
}

func NewReferenceService(
	categoryRepo repository.CategoryRepository,
	locationRepo repository.LocationRepository,
	log *zap.Logger,
) ReferenceService {
	return &referenceService{
		categoryRepo: categoryRepo,
		locationRepo: locationRepo,
		log:          log,
	}
}

func (s *referenceService) Categories(ctx context.Context) ([]response.ReferenceResponse, error) {
	categories, err := s.categoryRepo.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get categories", zap.Error(err))
		return nil, fmt.Errorf("failed to get categories")
	}

	result := make([]response.ReferenceResponse, len(categories))
	for i, category := range categories {
		result[i] = response.ReferenceResponse{
			ID:   category.CategoryID,
			Name: category.CategoryName,
		}
	}

	return result, nil
}

func (s *referenceService) Locations(ctx context.Context) ([]response.ReferenceResponse, error) {
	locations, err := s.locationRepo.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get locations", zap.Error(err))
		return nil, fmt.Errorf("failed to get locations")
	}

	result := make([]response.ReferenceResponse, len(locations))
	for i, location := range locations {
		result[i] = response.ReferenceResponse{
			ID:   location.LocationID,
			Name: location.LocationName,
		}
	}

	return result, nil
}
