package imagestore

import (
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"io"

	"landmark-gallery/internal/pkg/errors"

	"golang.org/x/image/draw"
)

var placeholderColor = color.RGBA{R: 0xd1, G: 0xd1, B: 0xd6, A: 0xff}

// resizeSquare scales the whole of src onto a px×px canvas. The source
// aspect ratio is not preserved.
func resizeSquare(src image.Image, px int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, px, px))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// Placeholder returns a neutral square the same pixel size Image would
// produce for size. It is not cached.
func (s *Store) Placeholder(size int) (image.Image, error) {
	if err := checkSize(size); err != nil {
		return nil, errors.Wrap(err, "placeholder")
	}
	px := size * s.scale
	dst := image.NewRGBA(image.Rect(0, 0, px, px))
	draw.Draw(dst, dst.Bounds(), &image.Uniform{C: placeholderColor}, image.Point{}, draw.Src)
	return dst, nil
}

func EncodeJPEG(w io.Writer, img image.Image, quality int) error {
	if err := jpeg.Encode(w, img, &jpeg.Options{Quality: quality}); err != nil {
		return fmt.Errorf("encode jpeg: %w", err)
	}
	return nil
}
