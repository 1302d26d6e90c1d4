package repository

import (
	"context"

	"landmark-gallery/internal/models"
)

type LandmarkStatsRepository interface {
	GetTotalLandmarks(ctx context.Context) (int64, error)
	GetLandmarksByCategory(ctx context.Context) (map[string]int64, error)
	GetLandmarksByState(ctx context.Context) (map[string]int64, error)
	GetFeaturedLandmarks(ctx context.Context) ([]models.Landmark, error)
}

type landmarkStatsRepository struct {
	landmarks LandmarkRepository
}

func NewLandmarkStatsRepository(landmarks LandmarkRepository) LandmarkStatsRepository {
	return &landmarkStatsRepository{
		landmarks: landmarks,
	}
}

func (r *landmarkStatsRepository) GetTotalLandmarks(ctx context.Context) (int64, error) {
	return r.landmarks.Count(ctx)
}

func (r *landmarkStatsRepository) GetLandmarksByCategory(ctx context.Context) (map[string]int64, error) {
	return r.groupBy(ctx, func(l models.Landmark) string { return l.Category })
}

func (r *landmarkStatsRepository) GetLandmarksByState(ctx context.Context) (map[string]int64, error) {
	return r.groupBy(ctx, func(l models.Landmark) string { return l.State })
}

func (r *landmarkStatsRepository) GetFeaturedLandmarks(ctx context.Context) ([]models.Landmark, error) {
	return r.landmarks.FindByCategory(ctx, models.FeaturedCategory)
}

func (r *landmarkStatsRepository) groupBy(ctx context.Context, key func(models.Landmark) string) (map[string]int64, error) {
	all, err := r.landmarks.All(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64)
	for _, l := range all {
		counts[key(l)]++
	}
	return counts, nil
}
