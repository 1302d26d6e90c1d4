package repository

import (
	"encoding/json"
	"fmt"

	"landmark-gallery/internal/models"
	"landmark-gallery/internal/pkg/errors"
)

type ResourceReader interface {
	ReadFile(name string) ([]byte, error)
}

// LoadLandmarks reads the named dataset from the bundle and decodes it. A
// missing resource, malformed JSON, a duplicate id or a record without a
// name or image name is an error; nothing partial is returned.
func LoadLandmarks(r ResourceReader, resourceName string) ([]models.Landmark, error) {
	data, err := r.ReadFile(resourceName)
	if err != nil {
		return nil, err
	}

	var landmarks []models.Landmark
	if err := json.Unmarshal(data, &landmarks); err != nil {
		return nil, errors.Wrap(fmt.Errorf("%w: %v", errors.ErrMalformedData, err),
			"couldn't parse "+resourceName+" as []Landmark")
	}

	seen := make(map[int]int, len(landmarks))
	for i, l := range landmarks {
		if prev, ok := seen[l.ID]; ok {
			return nil, errors.Wrap(errors.ErrMalformedData,
				fmt.Sprintf("%s: id %d repeated at entries %d and %d", resourceName, l.ID, prev, i))
		}
		seen[l.ID] = i

		if l.Name == "" || l.ImageName == "" {
			return nil, errors.Wrap(errors.ErrMalformedData,
				fmt.Sprintf("%s: entry %d (id %d) needs name and imageName", resourceName, i, l.ID))
		}
	}

	return landmarks, nil
}
