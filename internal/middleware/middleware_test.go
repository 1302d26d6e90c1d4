package middleware

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"landmark-gallery/internal/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("ok"))
})

func TestRequestIDAssignsUUID(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	_, err := uuid.Parse(seen)
	require.NoError(t, err)
	assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))
}

func TestRequestIDKeepsValidIncomingID(t *testing.T) {
	incoming := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, incoming)

	rec := httptest.NewRecorder()
	RequestID(okHandler).ServeHTTP(rec, req)
	assert.Equal(t, incoming, rec.Header().Get(RequestIDHeader))

	req.Header.Set(RequestIDHeader, "not-a-uuid")
	rec = httptest.NewRecorder()
	RequestID(okHandler).ServeHTTP(rec, req)
	assert.NotEqual(t, "not-a-uuid", rec.Header().Get(RequestIDHeader))
}

func TestLoggingMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger.Logger.SetOutput(&buf)
	t.Cleanup(func() { logger.Logger.SetOutput(os.Stdout) })

	h := RequestID(LoggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("short and stout"))
	})))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/images/turtlerock", nil))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "Request handled", entry["msg"])
	assert.Equal(t, "GET", entry["method"])
	assert.Equal(t, "/images/turtlerock", entry["url"])
	assert.EqualValues(t, http.StatusTeapot, entry["status_code"])
	assert.EqualValues(t, len("short and stout"), entry["bytes"])
	assert.Equal(t, rec.Header().Get(RequestIDHeader), entry["request_id"])
}

func TestRateLimit(t *testing.T) {
	rl := NewRateLimiter(2)
	clock := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return clock }
	h := rl.RateLimit(okHandler)

	get := func(addr string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/images/icybay", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	first := get("10.0.0.1:5000")
	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "1", first.Header().Get("X-RateLimit-Remaining"))

	assert.Equal(t, http.StatusOK, get("10.0.0.1:5001").Code)

	blocked := get("10.0.0.1:5002")
	assert.Equal(t, http.StatusTooManyRequests, blocked.Code)
	assert.Equal(t, "0", blocked.Header().Get("X-RateLimit-Remaining"))

	assert.Equal(t, http.StatusOK, get("10.0.0.2:5000").Code, "other clients have their own window")

	clock = clock.Add(time.Minute)
	assert.Equal(t, http.StatusOK, get("10.0.0.1:5003").Code, "window resets")
}

func (rl *RateLimiter) tracked() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.reset)
}

func TestRateLimitForgetsExpiredClients(t *testing.T) {
	rl := NewRateLimiter(5)
	clock := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return clock }
	h := rl.RateLimit(okHandler)

	get := func(addr string) {
		req := httptest.NewRequest(http.MethodGet, "/images/icybay", nil)
		req.RemoteAddr = addr
		h.ServeHTTP(httptest.NewRecorder(), req)
	}

	for i := 0; i < 50; i++ {
		get(fmt.Sprintf("10.0.1.%d:4000", i))
	}
	assert.Equal(t, 50, rl.tracked())

	clock = clock.Add(time.Minute)
	get("10.0.2.1:4000")
	assert.Equal(t, 1, rl.tracked())
}

func TestRateLimitDisabled(t *testing.T) {
	h := NewRateLimiter(-1).RateLimit(okHandler)

	for i := 0; i < 5; i++ {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Header().Get("X-RateLimit-Limit"))
	}
}

type recordedRequest struct {
	isError bool
}

type requestRecorder struct {
	requests []recordedRequest
}

func (r *requestRecorder) RecordRequest(responseTime time.Duration, isError bool) {
	r.requests = append(r.requests, recordedRequest{isError: isError})
}

func TestUptimeRecordsRequests(t *testing.T) {
	recorder := &requestRecorder{}
	mw := Uptime(recorder)

	ok := httptest.NewRecorder()
	mw(okHandler).ServeHTTP(ok, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, ok.Code)

	failing := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	failing.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, []recordedRequest{{isError: false}, {isError: true}}, recorder.requests)
}

func TestUptimeRecoversPanics(t *testing.T) {
	var buf bytes.Buffer
	logger.Logger.SetOutput(&buf)
	t.Cleanup(func() { logger.Logger.SetOutput(os.Stdout) })

	recorder := &requestRecorder{}
	h := Uptime(recorder)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/landmarks/1001", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Len(t, recorder.requests, 1)
	assert.True(t, recorder.requests[0].isError)
	assert.Contains(t, buf.String(), "Handler panicked")
}
