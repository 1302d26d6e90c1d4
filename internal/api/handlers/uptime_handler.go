package handlers

import (
	"fmt"
	"net/http"
	"time"

	"landmark-gallery/internal/services"
)

type UptimeResponse struct {
	Started         string             `json:"started"`
	Uptime          string             `json:"uptime"`
	Status          string             `json:"status"`
	TotalRequests   int                `json:"totalRequests"`
	ErrorCount      int                `json:"errorCount"`
	ErrorRate       string             `json:"errorRate"`
	AvgResponseTime string             `json:"avgResponseTime"`
	Anomalies       []services.Anomaly `json:"anomalies"`
}

type UptimeHandler struct {
	service *services.UptimeService
}

func NewUptimeHandler(service *services.UptimeService) *UptimeHandler {
	return &UptimeHandler{service: service}
}

func (h *UptimeHandler) GetUptime(w http.ResponseWriter, r *http.Request) {
	stats := h.service.Stats()

	respondWithJSON(w, http.StatusOK, UptimeResponse{
		Started:         stats.Started.Format(time.RFC3339),
		Uptime:          stats.Uptime.String(),
		Status:          uptimeStatus(stats.ErrorRate),
		TotalRequests:   stats.TotalRequests,
		ErrorCount:      stats.ErrorCount,
		ErrorRate:       fmt.Sprintf("%.2f%%", stats.ErrorRate*100),
		AvgResponseTime: stats.AvgResponseTime.String(),
		Anomalies:       stats.Anomalies,
	})
}

func uptimeStatus(errorRate float64) string {
	switch {
	case errorRate <= 0.0001:
		return "Exceptional"
	case errorRate <= 0.001:
		return "Excellent"
	case errorRate <= 0.005:
		return "Very Good"
	case errorRate <= 0.01:
		return "Good"
	default:
		return "Fair"
	}
}
