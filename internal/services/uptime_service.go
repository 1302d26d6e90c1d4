package services

import (
	"fmt"
	"sync"
	"time"
)

const responseWindow = 1000

// UptimeStats is a snapshot of request health since the process started.
type UptimeStats struct {
	Started         time.Time
	Uptime          time.Duration
	TotalRequests   int
	ErrorCount      int
	ErrorRate       float64
	AvgResponseTime time.Duration
	Anomalies       []Anomaly
}

type Anomaly struct {
	Timestamp   time.Time `json:"timestamp"`
	Description string    `json:"description"`
}

// AnomalyDetector flags slow responses and high error rates.
type AnomalyDetector struct {
	avgResponseTimeThreshold time.Duration
	errorRateThreshold       float64
}

func NewAnomalyDetector() *AnomalyDetector {
	return &AnomalyDetector{
		avgResponseTimeThreshold: 500 * time.Millisecond,
		errorRateThreshold:       0.05,
	}
}

func (ad *AnomalyDetector) DetectAnomaly(now time.Time, avgResponseTime time.Duration, errorRate float64) []Anomaly {
	var found []Anomaly
	if avgResponseTime > ad.avgResponseTimeThreshold {
		found = append(found, Anomaly{
			Timestamp:   now,
			Description: fmt.Sprintf("High average response time: %v", avgResponseTime),
		})
	}
	if errorRate > ad.errorRateThreshold {
		found = append(found, Anomaly{
			Timestamp:   now,
			Description: fmt.Sprintf("High error rate: %.2f%%", errorRate*100),
		})
	}
	return found
}

// UptimeService keeps the last responseWindow response times and the error
// count for every request the server has handled.
type UptimeService struct {
	mu            sync.RWMutex
	now           func() time.Time
	startTime     time.Time
	responseTimes []time.Duration
	errorCount    int
	totalRequests int
	detector      *AnomalyDetector
}

func NewUptimeService() *UptimeService {
	return newUptimeService(time.Now)
}

func newUptimeService(now func() time.Time) *UptimeService {
	return &UptimeService{
		now:           now,
		startTime:     now(),
		responseTimes: make([]time.Duration, 0, responseWindow),
		detector:      NewAnomalyDetector(),
	}
}

// RecordRequest records a request's response time and whether it failed.
func (s *UptimeService) RecordRequest(responseTime time.Duration, isError bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.responseTimes = append(s.responseTimes, responseTime)
	if len(s.responseTimes) > responseWindow {
		s.responseTimes = s.responseTimes[1:]
	}
	s.totalRequests++
	if isError {
		s.errorCount++
	}
}

func (s *UptimeService) Stats() UptimeStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := s.now()
	stats := UptimeStats{
		Started:         s.startTime,
		Uptime:          now.Sub(s.startTime).Round(time.Second),
		TotalRequests:   s.totalRequests,
		ErrorCount:      s.errorCount,
		AvgResponseTime: s.avgResponseTime(),
	}
	if s.totalRequests > 0 {
		stats.ErrorRate = float64(s.errorCount) / float64(s.totalRequests)
	}
	stats.Anomalies = s.detector.DetectAnomaly(now, stats.AvgResponseTime, stats.ErrorRate)
	if stats.Anomalies == nil {
		stats.Anomalies = []Anomaly{}
	}
	return stats
}

func (s *UptimeService) avgResponseTime() time.Duration {
	if len(s.responseTimes) == 0 {
		return 0
	}
	var total time.Duration
	for _, rt := range s.responseTimes {
		total += rt
	}
	return total / time.Duration(len(s.responseTimes))
}
