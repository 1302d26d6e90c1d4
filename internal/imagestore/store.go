// Package imagestore loads bundled landmark images and memoizes square,
// resized variants of them by logical display size.
//
// Each image name is decoded once from "<name>.jpg" and kept under
// OriginalSize. A request for (name, size) is served from the cache when
// present; otherwise the original is scaled to size*scale pixels per side,
// stored, and returned. Nothing is ever evicted: the gallery is a small,
// fixed set of images.
package imagestore

import (
	"fmt"
	"image"
	"io/fs"
	"sort"
	"strconv"
	"sync"

	"landmark-gallery/internal/pkg/errors"

	"golang.org/x/sync/singleflight"
)

const (
	// OriginalSize is the cache key under which the decoded, unscaled image
	// is kept. Requests must use a positive size, so it never collides.
	OriginalSize = 0

	DefaultScaleFactor = 2
	MaxScaleFactor     = 4

	// MaxSize bounds a requested logical size, so a variant is at most
	// MaxSize*MaxScaleFactor pixels per side.
	MaxSize = 1024
)

type ResourceOpener interface {
	Open(name string) (fs.File, error)
}

type key struct {
	name string
	size int
}

func (k key) String() string {
	return k.name + "@" + strconv.Itoa(k.size)
}

type Store struct {
	resources ResourceOpener
	scale     int

	mu     sync.Mutex
	images map[key]image.Image

	flight singleflight.Group
}

// New returns an empty store reading from resources. A scale below 1 falls
// back to DefaultScaleFactor; one above MaxScaleFactor is capped.
func New(resources ResourceOpener, scale int) *Store {
	if scale < 1 {
		scale = DefaultScaleFactor
	}
	if scale > MaxScaleFactor {
		scale = MaxScaleFactor
	}
	return &Store{
		resources: resources,
		scale:     scale,
		images:    make(map[key]image.Image),
	}
}

func (s *Store) ScaleFactor() int {
	return s.scale
}

// Image returns name scaled to a square of size*ScaleFactor pixels. Repeat
// calls with the same arguments return the same image value.
func (s *Store) Image(name string, size int) (image.Image, error) {
	if err := checkSize(size); err != nil {
		return nil, errors.Wrap(err, "image "+name)
	}

	original, err := s.original(name)
	if err != nil {
		return nil, err
	}

	k := key{name: name, size: size}
	if img, ok := s.lookup(k); ok {
		return img, nil
	}

	v, err, _ := s.flight.Do(k.String(), func() (interface{}, error) {
		if img, ok := s.lookup(k); ok {
			return img, nil
		}
		sized := resizeSquare(original, size*s.scale)
		s.put(k, sized)
		return sized, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(image.Image), nil
}

// original guarantees the decoded image for name is cached before any
// variant of it is computed.
func (s *Store) original(name string) (image.Image, error) {
	k := key{name: name, size: OriginalSize}
	if img, ok := s.lookup(k); ok {
		return img, nil
	}

	v, err, _ := s.flight.Do(k.String(), func() (interface{}, error) {
		if img, ok := s.lookup(k); ok {
			return img, nil
		}
		img, err := s.decode(name)
		if err != nil {
			return nil, err
		}
		s.put(k, img)
		return img, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(image.Image), nil
}

func checkSize(size int) error {
	if size <= 0 || size > MaxSize {
		return fmt.Errorf("%w: size must be within 1..%d, got %d", errors.ErrInvalidInput, MaxSize, size)
	}
	return nil
}

func (s *Store) decode(name string) (image.Image, error) {
	resource := name + ".jpg"
	f, err := s.resources.Open(resource)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, errors.Wrap(fmt.Errorf("%w: %v", errors.ErrDecode, err), "couldn't load image "+resource)
	}
	return img, nil
}

func (s *Store) lookup(k key) (image.Image, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	img, ok := s.images[k]
	return img, ok
}

func (s *Store) put(k key, img image.Image) {
	s.mu.Lock()
	s.images[k] = img
	s.mu.Unlock()
}

// Len returns the number of cached entries, originals included.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.images)
}

// Entries returns the sizes cached for name in ascending order; OriginalSize
// comes first when the image has been loaded.
func (s *Store) Entries(name string) []int {
	s.mu.Lock()
	sizes := []int{}
	for k := range s.images {
		if k.name == name {
			sizes = append(sizes, k.size)
		}
	}
	s.mu.Unlock()

	sort.Ints(sizes)
	return sizes
}
