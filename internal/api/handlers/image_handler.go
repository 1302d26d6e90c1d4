package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"landmark-gallery/internal/logger"
	"landmark-gallery/internal/views"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type ImageHandler struct {
	thumbnails *Thumbnailer
	sizes      map[int]bool
}

// NewImageHandler serves the view sizes plus any extra sizes. Every size a
// client may request becomes a permanent cache entry, so the set is fixed.
func NewImageHandler(thumbnails *Thumbnailer, extraSizes []int) *ImageHandler {
	sizes := map[int]bool{
		views.RowThumbnailSize: true,
		views.DetailImageSize:  true,
	}
	for _, size := range extraSizes {
		sizes[size] = true
	}
	return &ImageHandler{thumbnails: thumbnails, sizes: sizes}
}

// GetImage serves /images/{name}?size=N as JPEG. size defaults to the list
// row thumbnail size and must be one of the served sizes.
func (h *ImageHandler) GetImage(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSuffix(mux.Vars(r)["name"], ".jpg")

	size := views.RowThumbnailSize
	if sizeParam := r.URL.Query().Get("size"); sizeParam != "" {
		parsed, err := strconv.Atoi(sizeParam)
		if err != nil || parsed <= 0 {
			respondWithError(w, http.StatusBadRequest, "Invalid image size")
			return
		}
		size = parsed
	}
	if !h.sizes[size] {
		respondWithError(w, http.StatusBadRequest, "Unsupported image size")
		return
	}

	data, degraded, err := h.thumbnails.JPEG(name, size)
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			logger.LogEvent(logrus.ErrorLevel, "Error rendering image", logrus.Fields{"image": name, "size": size, "error": err})
		}
		respondWithError(w, status, http.StatusText(status))
		return
	}

	w.Header().Set("Content-Type", "image/jpeg")
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	if degraded {
		w.Header().Set("Cache-Control", "no-store")
		w.Header().Set("X-Placeholder", "true")
	} else {
		w.Header().Set("Cache-Control", "public, max-age=86400")
	}
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
