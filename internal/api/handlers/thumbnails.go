package handlers

import (
	"bytes"
	"image"

	"landmark-gallery/internal/imagestore"
	"landmark-gallery/internal/logger"
	apperrors "landmark-gallery/internal/pkg/errors"

	"github.com/sirupsen/logrus"
)

// ImageSource is the slice of the image cache the handlers need.
type ImageSource interface {
	Image(name string, size int) (image.Image, error)
	Placeholder(size int) (image.Image, error)
}

// Thumbnailer turns cached variants into JPEG bytes and owns the decision
// of whether an unloadable image fails the request or degrades to a
// placeholder.
type Thumbnailer struct {
	images             ImageSource
	quality            int
	placeholderOnError bool
}

func NewThumbnailer(images ImageSource, quality int, placeholderOnError bool) *Thumbnailer {
	return &Thumbnailer{
		images:             images,
		quality:            quality,
		placeholderOnError: placeholderOnError,
	}
}

// JPEG encodes name at size. degraded reports that a placeholder was served
// in place of an image that failed to load.
func (t *Thumbnailer) JPEG(name string, size int) (data []byte, degraded bool, err error) {
	img, err := t.images.Image(name, size)
	if err != nil {
		if !t.placeholderOnError || apperrors.Is(err, apperrors.ErrInvalidInput) {
			return nil, false, err
		}
		logger.LogEvent(logrus.WarnLevel, "Serving placeholder image", logrus.Fields{
			"image": name,
			"size":  size,
			"error": err.Error(),
		})
		img, err = t.images.Placeholder(size)
		if err != nil {
			return nil, false, err
		}
		degraded = true
	}

	var buf bytes.Buffer
	if err := imagestore.EncodeJPEG(&buf, img, t.quality); err != nil {
		return nil, false, err
	}
	return buf.Bytes(), degraded, nil
}
