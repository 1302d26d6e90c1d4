package repository

import (
	"context"
	"strings"

	"landmark-gallery/internal/models"
)

type LandmarkRepository interface {
	GetByID(ctx context.Context, id int) (*models.Landmark, error)
	List(ctx context.Context, limit, offset int) ([]models.Landmark, error)
	All(ctx context.Context) ([]models.Landmark, error)
	Count(ctx context.Context) (int64, error)
	FindByName(ctx context.Context, name string) ([]models.Landmark, error)
	FindByState(ctx context.Context, state string) ([]models.Landmark, error)
	FindByCategory(ctx context.Context, category string) ([]models.Landmark, error)
}

// landmarkRepository serves the dataset loaded at startup. The slice is never
// mutated after construction, so reads need no locking; callers get copies.
type landmarkRepository struct {
	landmarks []models.Landmark
	byID      map[int]int
}

func NewLandmarkRepository(landmarks []models.Landmark) LandmarkRepository {
	byID := make(map[int]int, len(landmarks))
	for i, l := range landmarks {
		byID[l.ID] = i
	}
	return &landmarkRepository{landmarks: landmarks, byID: byID}
}

func (r *landmarkRepository) GetByID(ctx context.Context, id int) (*models.Landmark, error) {
	i, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	landmark := r.landmarks[i]
	return &landmark, nil
}

func (r *landmarkRepository) List(ctx context.Context, limit, offset int) ([]models.Landmark, error) {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(r.landmarks) || limit == 0 {
		return []models.Landmark{}, nil
	}
	end := len(r.landmarks)
	if limit > 0 && limit < end-offset {
		end = offset + limit
	}
	return r.copyOf(r.landmarks[offset:end]), nil
}

func (r *landmarkRepository) All(ctx context.Context) ([]models.Landmark, error) {
	return r.copyOf(r.landmarks), nil
}

func (r *landmarkRepository) Count(ctx context.Context) (int64, error) {
	return int64(len(r.landmarks)), nil
}

// FindByName matches a case-insensitive substring of the name.
func (r *landmarkRepository) FindByName(ctx context.Context, name string) ([]models.Landmark, error) {
	needle := strings.ToLower(name)
	return r.filter(func(l models.Landmark) bool {
		return strings.Contains(strings.ToLower(l.Name), needle)
	}), nil
}

func (r *landmarkRepository) FindByState(ctx context.Context, state string) ([]models.Landmark, error) {
	return r.filter(func(l models.Landmark) bool {
		return strings.EqualFold(l.State, state)
	}), nil
}

func (r *landmarkRepository) FindByCategory(ctx context.Context, category string) ([]models.Landmark, error) {
	return r.filter(func(l models.Landmark) bool {
		return strings.EqualFold(l.Category, category)
	}), nil
}

func (r *landmarkRepository) filter(keep func(models.Landmark) bool) []models.Landmark {
	out := []models.Landmark{}
	for _, l := range r.landmarks {
		if keep(l) {
			out = append(out, l)
		}
	}
	return out
}

func (r *landmarkRepository) copyOf(src []models.Landmark) []models.Landmark {
	out := make([]models.Landmark, len(src))
	copy(out, src)
	return out
}
