package services

import (
	"context"

	"landmark-gallery/internal/models"
	"landmark-gallery/internal/repository"
)

type LandmarkService interface {
	GetLandmark(ctx context.Context, id int) (*models.Landmark, error)
	ListLandmarks(ctx context.Context, limit, offset int) ([]models.Landmark, error)
	AllLandmarks(ctx context.Context) ([]models.Landmark, error)
	GetLandmarksByName(ctx context.Context, name string) ([]models.Landmark, error)
	GetLandmarksByState(ctx context.Context, state string) ([]models.Landmark, error)
	GetLandmarksByCategory(ctx context.Context, category string) ([]models.Landmark, error)
	CountLandmarks(ctx context.Context) (int64, error)
}

type landmarkService struct {
	landmarkRepo repository.LandmarkRepository
}

func NewLandmarkService(landmarkRepo repository.LandmarkRepository) LandmarkService {
	return &landmarkService{landmarkRepo: landmarkRepo}
}

func (s *landmarkService) GetLandmark(ctx context.Context, id int) (*models.Landmark, error) {
	return s.landmarkRepo.GetByID(ctx, id)
}

func (s *landmarkService) ListLandmarks(ctx context.Context, limit, offset int) ([]models.Landmark, error) {
	return s.landmarkRepo.List(ctx, limit, offset)
}

func (s *landmarkService) AllLandmarks(ctx context.Context) ([]models.Landmark, error) {
	return s.landmarkRepo.All(ctx)
}

// GetLandmarksByName retrieves landmarks whose name contains name.
func (s *landmarkService) GetLandmarksByName(ctx context.Context, name string) ([]models.Landmark, error) {
	return s.landmarkRepo.FindByName(ctx, name)
}

func (s *landmarkService) GetLandmarksByState(ctx context.Context, state string) ([]models.Landmark, error) {
	return s.landmarkRepo.FindByState(ctx, state)
}

// GetLandmarksByCategory returns every landmark when category is empty.
func (s *landmarkService) GetLandmarksByCategory(ctx context.Context, category string) ([]models.Landmark, error) {
	if category == "" {
		return s.landmarkRepo.All(ctx)
	}
	return s.landmarkRepo.FindByCategory(ctx, category)
}

func (s *landmarkService) CountLandmarks(ctx context.Context) (int64, error) {
	return s.landmarkRepo.Count(ctx)
}
