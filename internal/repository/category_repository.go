package repository

import (
	"context"
	"sort"
)

type CategoryRepository interface {
	ListAllCategories(ctx context.Context) ([]string, error)
}

type categoryRepository struct {
	landmarks LandmarkRepository
}

func NewCategoryRepository(landmarks LandmarkRepository) CategoryRepository {
	return &categoryRepository{
		landmarks: landmarks,
	}
}

// ListAllCategories returns the distinct, non-empty categories in lexical
// order.
func (r *categoryRepository) ListAllCategories(ctx context.Context) ([]string, error) {
	all, err := r.landmarks.All(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	categories := []string{}
	for _, l := range all {
		if l.Category == "" || seen[l.Category] {
			continue
		}
		seen[l.Category] = true
		categories = append(categories, l.Category)
	}
	sort.Strings(categories)
	return categories, nil
}
