package handlers

import (
	"net/http"
	"strconv"

	"landmark-gallery/internal/logger"
	"landmark-gallery/internal/services"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type LandmarkHandler struct {
	landmarkService services.LandmarkService
}

func NewLandmarkHandler(landmarkService services.LandmarkService) *LandmarkHandler {
	return &LandmarkHandler{landmarkService: landmarkService}
}

func (h *LandmarkHandler) GetLandmark(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid landmark ID")
		return
	}

	landmark, err := h.landmarkService.GetLandmark(ctx, id)
	if err != nil {
		logger.LogEvent(logrus.ErrorLevel, "Error fetching landmark", logrus.Fields{"id": id, "error": err})
		respondWithError(w, http.StatusInternalServerError, "Error fetching landmark")
		return
	}

	if landmark == nil {
		respondWithError(w, http.StatusNotFound, "Landmark not found")
		return
	}

	respondWithJSON(w, http.StatusOK, landmark)
}

func (h *LandmarkHandler) ListLandmarks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit, offset := ParsePaginationParams(r)

	landmarks, err := h.landmarkService.ListLandmarks(ctx, limit, offset)
	if err != nil {
		logger.LogEvent(logrus.ErrorLevel, "Error fetching landmarks", logrus.Fields{"error": err})
		respondWithError(w, http.StatusInternalServerError, "Error fetching landmarks")
		return
	}

	total, err := h.landmarkService.CountLandmarks(ctx)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Error counting landmarks")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"landmarks": landmarks,
		"total":     total,
		"limit":     limit,
		"offset":    offset,
	})
}

func (h *LandmarkHandler) ListLandmarksByName(w http.ResponseWriter, r *http.Request) {
	landmarks, err := h.landmarkService.GetLandmarksByName(r.Context(), mux.Vars(r)["name"])
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Error searching landmarks")
		return
	}
	respondWithJSON(w, http.StatusOK, landmarks)
}

func (h *LandmarkHandler) ListLandmarksByState(w http.ResponseWriter, r *http.Request) {
	landmarks, err := h.landmarkService.GetLandmarksByState(r.Context(), mux.Vars(r)["state"])
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Error searching landmarks")
		return
	}
	respondWithJSON(w, http.StatusOK, landmarks)
}
