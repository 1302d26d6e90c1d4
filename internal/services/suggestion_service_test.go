package services

import (
	"context"
	"testing"

	"landmark-gallery/internal/pkg/errors"
	"landmark-gallery/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggest(t *testing.T) {
	landmarks := NewLandmarkService(repository.NewLandmarkRepository(fixtureLandmarks()))
	svc := NewSuggestionService(landmarks, 0)
	ctx := context.Background()

	tests := []struct {
		name  string
		field string
		term  string
		want  []string
	}{
		{"substring", "name", "lake", []string{"Lake McDonald", "St. Mary Lake"}},
		{"distinct values", "state", "mont", []string{"Montana"}},
		{"word fallback", "name", "turtle canyon", []string{"Turtle Rock"}},
		{"blank term", "name", "   ", []string{}},
		{"no match", "category", "deserts", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Suggest(ctx, tt.field, tt.term)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSuggestLimitsResults(t *testing.T) {
	landmarks := NewLandmarkService(repository.NewLandmarkRepository(fixtureLandmarks()))
	svc := NewSuggestionService(landmarks, 1)

	got, err := svc.Suggest(context.Background(), "name", "a")
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestSuggestUnknownField(t *testing.T) {
	landmarks := NewLandmarkService(repository.NewLandmarkRepository(fixtureLandmarks()))
	svc := NewSuggestionService(landmarks, 0)

	_, err := svc.Suggest(context.Background(), "country", "us")
	assert.ErrorIs(t, err, errors.ErrInvalidInput)
	assert.False(t, IsSuggestionField("country"))
	assert.True(t, IsSuggestionField("park"))
}
