// Package views renders the landmark list and detail pages.
package views

import (
	"embed"
	"encoding/base64"
	"fmt"
	"html/template"
	"io"

	"landmark-gallery/internal/models"
)

const (
	ListTitle = "Landmarks"

	RowThumbnailSize = 50
	DetailImageSize  = 250
)

//go:embed templates/*.html
var templateFS embed.FS

type Row struct {
	ID        int
	Name      string
	Thumbnail template.URL
	Featured  bool
}

type ListPage struct {
	Title      string
	Category   string
	Categories []string
	ThumbSize  int
	Rows       []Row
}

type DetailPage struct {
	Title     string
	Landmark  models.Landmark
	Image     template.URL
	ImageSize int
	MapURL    string
}

type Renderer struct {
	list   *template.Template
	detail *template.Template
}

func NewRenderer() (*Renderer, error) {
	list, err := template.ParseFS(templateFS, "templates/layout.html", "templates/list.html")
	if err != nil {
		return nil, fmt.Errorf("parse list template: %w", err)
	}
	detail, err := template.ParseFS(templateFS, "templates/layout.html", "templates/detail.html")
	if err != nil {
		return nil, fmt.Errorf("parse detail template: %w", err)
	}
	return &Renderer{list: list, detail: detail}, nil
}

func (r *Renderer) RenderList(w io.Writer, page ListPage) error {
	if page.Title == "" {
		page.Title = ListTitle
	}
	if page.ThumbSize == 0 {
		page.ThumbSize = RowThumbnailSize
	}
	return r.list.ExecuteTemplate(w, "layout", page)
}

func (r *Renderer) RenderDetail(w io.Writer, page DetailPage) error {
	if page.Title == "" {
		page.Title = page.Landmark.Name
	}
	if page.ImageSize == 0 {
		page.ImageSize = DetailImageSize
	}
	if page.MapURL == "" {
		page.MapURL = MapURL(page.Landmark.Coordinates)
	}
	return r.detail.ExecuteTemplate(w, "layout", page)
}

// JPEGDataURI inlines encoded JPEG bytes so pages carry their images.
func JPEGDataURI(data []byte) template.URL {
	return template.URL("data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(data))
}

func MapURL(c models.Coordinates) string {
	return fmt.Sprintf("https://www.openstreetmap.org/?mlat=%.6f&mlon=%.6f#map=12/%.6f/%.6f",
		c.Latitude, c.Longitude, c.Latitude, c.Longitude)
}
