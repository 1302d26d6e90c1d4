package services

import (
	"context"

	"landmark-gallery/internal/models"
	"landmark-gallery/internal/repository"
)

type LandmarkStatsService interface {
	GetLandmarkStats(ctx context.Context) (*models.LandmarkStats, error)
}

type landmarkStatsService struct {
	landmarkStatsRepo repository.LandmarkStatsRepository
}

func NewLandmarkStatsService(landmarkStatsRepo repository.LandmarkStatsRepository) LandmarkStatsService {
	return &landmarkStatsService{
		landmarkStatsRepo: landmarkStatsRepo,
	}
}

func (s *landmarkStatsService) GetLandmarkStats(ctx context.Context) (*models.LandmarkStats, error) {
	totalLandmarks, err := s.landmarkStatsRepo.GetTotalLandmarks(ctx)
	if err != nil {
		return nil, err
	}

	landmarksByCategory, err := s.landmarkStatsRepo.GetLandmarksByCategory(ctx)
	if err != nil {
		return nil, err
	}

	landmarksByState, err := s.landmarkStatsRepo.GetLandmarksByState(ctx)
	if err != nil {
		return nil, err
	}

	featured, err := s.landmarkStatsRepo.GetFeaturedLandmarks(ctx)
	if err != nil {
		return nil, err
	}

	return &models.LandmarkStats{
		TotalLandmarks:      totalLandmarks,
		LandmarksByCategory: landmarksByCategory,
		LandmarksByState:    landmarksByState,
		Featured:            featured,
	}, nil
}
