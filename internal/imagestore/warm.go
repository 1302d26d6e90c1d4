package imagestore

import (
	stderrors "errors"
	"fmt"
)

// Warm renders every (name, size) pair up front. It keeps going past
// failures and reports them together.
func (s *Store) Warm(names []string, sizes []int) error {
	var errs []error
	for _, name := range names {
		for _, size := range sizes {
			if _, err := s.Image(name, size); err != nil {
				errs = append(errs, fmt.Errorf("warm %s@%d: %w", name, size, err))
			}
		}
	}
	return stderrors.Join(errs...)
}
