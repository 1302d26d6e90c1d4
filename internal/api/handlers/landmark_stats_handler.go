package handlers

import (
	"net/http"

	"landmark-gallery/internal/logger"
	"landmark-gallery/internal/services"

	"github.com/sirupsen/logrus"
)

type LandmarkStatsHandler struct {
	landmarkStatsService services.LandmarkStatsService
}

func NewLandmarkStatsHandler(landmarkStatsService services.LandmarkStatsService) *LandmarkStatsHandler {
	return &LandmarkStatsHandler{
		landmarkStatsService: landmarkStatsService,
	}
}

func (h *LandmarkStatsHandler) GetLandmarkStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	stats, err := h.landmarkStatsService.GetLandmarkStats(ctx)
	if err != nil {
		logger.LogEvent(logrus.ErrorLevel, "Error fetching landmark stats", logrus.Fields{"error": err})
		respondWithError(w, http.StatusInternalServerError, "Error fetching landmark stats")
		return
	}

	respondWithJSON(w, http.StatusOK, stats)
}
