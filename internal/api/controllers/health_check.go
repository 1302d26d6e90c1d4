package controllers

import (
	"context"
	"encoding/json"
	"net/http"
)

type HealthCheckResponse struct {
	Status       string `json:"status"`
	Landmarks    int64  `json:"landmarks"`
	CacheEntries int    `json:"cache_entries"`
	ScaleFactor  int    `json:"scale_factor"`
}

type LandmarkCounter interface {
	CountLandmarks(ctx context.Context) (int64, error)
}

type CacheStats interface {
	Len() int
	ScaleFactor() int
}

// HealthCheckHandler reports the loaded dataset size and image cache
// occupancy.
func HealthCheckHandler(landmarks LandmarkCounter, cache CacheStats) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := HealthCheckResponse{
			Status:       "API is running",
			CacheEntries: cache.Len(),
			ScaleFactor:  cache.ScaleFactor(),
		}

		count, err := landmarks.CountLandmarks(r.Context())
		if err != nil {
			response.Status = "Landmark data unavailable"
			respondWithJSON(w, http.StatusInternalServerError, response)
			return
		}
		response.Landmarks = count

		respondWithJSON(w, http.StatusOK, response)
	}
}

// respondWithJSON sends a JSON response
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}
