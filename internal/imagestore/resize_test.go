package imagestore

import (
	"bytes"
	"image/jpeg"
	"testing"

	"landmark-gallery/internal/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceholder(t *testing.T) {
	store := New(testBundle(t), 3)

	img, err := store.Placeholder(20)
	require.NoError(t, err)
	assert.Equal(t, 60, img.Bounds().Dx())
	assert.Equal(t, 60, img.Bounds().Dy())
	assert.Equal(t, placeholderColor, img.At(30, 30))
	assert.Equal(t, 0, store.Len())

	_, err = store.Placeholder(0)
	assert.ErrorIs(t, err, errors.ErrInvalidInput)
}

func TestEncodeJPEGRoundTrip(t *testing.T) {
	store := New(testBundle(t), 2)
	img, err := store.Image("turtlerock", 30)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, EncodeJPEG(&buf, img, 85))

	decoded, err := jpeg.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), decoded.Bounds())
}

func TestWarm(t *testing.T) {
	store := New(testBundle(t), 2)

	err := store.Warm([]string{"turtlerock", "twinlake"}, []int{50, 250})
	require.NoError(t, err)
	assert.Equal(t, 6, store.Len())
	assert.Equal(t, []int{OriginalSize, 50, 250}, store.Entries("twinlake"))
}

func TestWarmReportsEveryFailure(t *testing.T) {
	store := New(testBundle(t), 2)

	err := store.Warm([]string{"turtlerock", "halfdome", "broken"}, []int{50})
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrNotFound)
	assert.ErrorIs(t, err, errors.ErrDecode)
	assert.Contains(t, err.Error(), "halfdome@50")
	assert.Equal(t, []int{OriginalSize, 50}, store.Entries("turtlerock"))
}

func TestPlaceholderRejectsOversizedRequests(t *testing.T) {
	store := New(testBundle(t), 2)

	for _, size := range []int{MaxSize + 1, 5000000000} {
		img, err := store.Placeholder(size)
		assert.ErrorIs(t, err, errors.ErrInvalidInput, "size %d", size)
		assert.Nil(t, img)
	}
}
