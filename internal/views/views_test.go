package views

import (
	"bytes"
	"strings"
	"testing"

	"landmark-gallery/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var turtleRock = models.Landmark{
	ID:          1001,
	Name:        "Turtle Rock",
	ImageName:   "turtlerock",
	State:       "California",
	Park:        "Joshua Tree National Park",
	Category:    "Featured",
	Coordinates: models.Coordinates{Latitude: 34.011286, Longitude: -116.166868},
}

func TestRenderList(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	err = r.RenderList(&buf, ListPage{
		Categories: []string{"Featured", "Lakes"},
		Rows: []Row{
			{ID: 1001, Name: "Turtle Rock", Thumbnail: JPEGDataURI([]byte{0xff, 0xd8}), Featured: true},
			{ID: 1002, Name: "Silver Salmon Creek", Thumbnail: JPEGDataURI([]byte{0xff, 0xd8})},
		},
	})
	require.NoError(t, err)
	html := buf.String()

	assert.Contains(t, html, "<title>Landmarks</title>")
	assert.Contains(t, html, `href="/landmarks/1001"`)
	assert.Contains(t, html, `href="/landmarks/1002"`)
	assert.Contains(t, html, `src="data:image/jpeg;base64,/9g="`)
	assert.Contains(t, html, `width="50"`)
	assert.Contains(t, html, `href="/?category=Lakes"`)
	assert.Equal(t, 1, strings.Count(html, "&#9733;"))
}

func TestRenderListEmpty(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.RenderList(&buf, ListPage{}))
	assert.Contains(t, buf.String(), "No landmarks.")
}

func TestRenderDetail(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.RenderDetail(&buf, DetailPage{
		Landmark: turtleRock,
		Image:    JPEGDataURI([]byte{0xff, 0xd8}),
	}))
	html := buf.String()

	assert.Contains(t, html, "<title>Turtle Rock</title>")
	assert.Contains(t, html, "<h1>Turtle Rock</h1>")
	assert.Contains(t, html, "Joshua Tree National Park")
	assert.Contains(t, html, "California")
	assert.Contains(t, html, "34.0113° N, 116.1669° W")
	assert.Contains(t, html, `width="250"`)
	assert.Contains(t, html, "mlat=34.011286")
	assert.Contains(t, html, `href="/"`)
}

func TestRenderEscapesText(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	l := turtleRock
	l.Name = "<script>alert(1)</script>"

	var buf bytes.Buffer
	require.NoError(t, r.RenderDetail(&buf, DetailPage{Landmark: l}))
	assert.NotContains(t, buf.String(), "<script>")
}

func TestMapURL(t *testing.T) {
	assert.Equal(t,
		"https://www.openstreetmap.org/?mlat=34.011286&mlon=-116.166868#map=12/34.011286/-116.166868",
		MapURL(turtleRock.Coordinates))
}
