package services

import (
	"context"
	"sort"
	"strings"

	"landmark-gallery/internal/models"
	"landmark-gallery/internal/pkg/errors"
)

const defaultMaxSuggestions = 10

type SuggestionService interface {
	Suggest(ctx context.Context, field, term string) ([]string, error)
}

type suggestionService struct {
	landmarks  LandmarkService
	maxResults int
}

func NewSuggestionService(landmarks LandmarkService, maxResults int) SuggestionService {
	if maxResults <= 0 {
		maxResults = defaultMaxSuggestions
	}
	return &suggestionService{landmarks: landmarks, maxResults: maxResults}
}

var suggestionFields = map[string]func(models.Landmark) string{
	"name":     func(l models.Landmark) string { return l.Name },
	"state":    func(l models.Landmark) string { return l.State },
	"category": func(l models.Landmark) string { return l.Category },
	"city":     func(l models.Landmark) string { return l.City },
	"park":     func(l models.Landmark) string { return l.Park },
}

func IsSuggestionField(field string) bool {
	_, ok := suggestionFields[field]
	return ok
}

// Suggest returns distinct values of field containing term, case-insensitive
// and sorted. When the whole term matches nothing, each word is tried on its
// own.
func (s *suggestionService) Suggest(ctx context.Context, field, term string) ([]string, error) {
	value, ok := suggestionFields[field]
	if !ok {
		return nil, errors.Wrap(errors.ErrInvalidInput, "unknown suggestion field "+field)
	}

	term = strings.TrimSpace(term)
	if term == "" {
		return []string{}, nil
	}

	all, err := s.landmarks.AllLandmarks(ctx)
	if err != nil {
		return nil, err
	}

	results := matchValues(all, value, []string{term})
	if len(results) == 0 {
		results = matchValues(all, value, strings.Fields(term))
	}

	if len(results) > s.maxResults {
		results = results[:s.maxResults]
	}
	return results, nil
}

func matchValues(landmarks []models.Landmark, value func(models.Landmark) string, terms []string) []string {
	seen := make(map[string]bool)
	results := []string{}
	for _, l := range landmarks {
		v := value(l)
		if v == "" || seen[v] {
			continue
		}
		lower := strings.ToLower(v)
		for _, t := range terms {
			if strings.Contains(lower, strings.ToLower(t)) {
				seen[v] = true
				results = append(results, v)
				break
			}
		}
	}
	sort.Strings(results)
	return results
}
