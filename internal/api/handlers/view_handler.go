package handlers

import (
	"bytes"
	"net/http"
	"strconv"

	"landmark-gallery/internal/logger"
	"landmark-gallery/internal/services"
	"landmark-gallery/internal/views"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// ViewHandler serves the HTML list and detail pages. Images are inlined
// from the image cache so a page load exercises it directly.
type ViewHandler struct {
	landmarkService services.LandmarkService
	categoryService services.CategoryService
	thumbnails      *Thumbnailer
	renderer        *views.Renderer
}

func NewViewHandler(landmarkService services.LandmarkService, categoryService services.CategoryService, thumbnails *Thumbnailer, renderer *views.Renderer) *ViewHandler {
	return &ViewHandler{
		landmarkService: landmarkService,
		categoryService: categoryService,
		thumbnails:      thumbnails,
		renderer:        renderer,
	}
}

func (h *ViewHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	category := r.URL.Query().Get("category")

	categories, err := h.categoryService.GetAllCategories(ctx)
	if err != nil {
		h.fail(w, http.StatusInternalServerError, "Error fetching categories", err)
		return
	}

	landmarks, err := h.landmarkService.GetLandmarksByCategory(ctx, category)
	if err != nil {
		h.fail(w, http.StatusInternalServerError, "Error fetching landmarks", err)
		return
	}

	page := views.ListPage{
		Category:   category,
		Categories: categories,
		ThumbSize:  views.RowThumbnailSize,
		Rows:       make([]views.Row, 0, len(landmarks)),
	}
	for _, l := range landmarks {
		data, _, err := h.thumbnails.JPEG(l.ImageName, views.RowThumbnailSize)
		if err != nil {
			h.fail(w, http.StatusInternalServerError, "Error rendering thumbnail for "+l.Name, err)
			return
		}
		page.Rows = append(page.Rows, views.Row{
			ID:        l.ID,
			Name:      l.Name,
			Thumbnail: views.JPEGDataURI(data),
			Featured:  l.IsFeatured(),
		})
	}

	var buf bytes.Buffer
	if err := h.renderer.RenderList(&buf, page); err != nil {
		h.fail(w, http.StatusInternalServerError, "Error rendering page", err)
		return
	}
	writeHTML(w, buf.Bytes())
}

func (h *ViewHandler) Detail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid landmark ID", http.StatusBadRequest)
		return
	}

	landmark, err := h.landmarkService.GetLandmark(ctx, id)
	if err != nil {
		h.fail(w, http.StatusInternalServerError, "Error fetching landmark", err)
		return
	}
	if landmark == nil {
		http.Error(w, "Landmark not found", http.StatusNotFound)
		return
	}

	data, _, err := h.thumbnails.JPEG(landmark.ImageName, views.DetailImageSize)
	if err != nil {
		h.fail(w, http.StatusInternalServerError, "Error rendering image for "+landmark.Name, err)
		return
	}

	var buf bytes.Buffer
	err = h.renderer.RenderDetail(&buf, views.DetailPage{
		Landmark:  *landmark,
		Image:     views.JPEGDataURI(data),
		ImageSize: views.DetailImageSize,
	})
	if err != nil {
		h.fail(w, http.StatusInternalServerError, "Error rendering page", err)
		return
	}
	writeHTML(w, buf.Bytes())
}

func (h *ViewHandler) fail(w http.ResponseWriter, code int, message string, err error) {
	logger.LogEvent(logrus.ErrorLevel, message, logrus.Fields{"error": err})
	http.Error(w, message, code)
}

func writeHTML(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}
