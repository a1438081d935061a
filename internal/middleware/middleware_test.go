package middleware_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SscSPs/savings_tracker/internal/dto"
	"github.com/SscSPs/savings_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(logger *slog.Logger, mws ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger))
	r.Use(mws...)
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, middleware.GetRequestID(c.Request.Context()))
	})
	return r
}

func TestStructuredLogging_EchoesRequestID(t *testing.T) {
	var buf bytes.Buffer
	r := newTestRouter(slog.New(slog.NewJSONHandler(&buf, nil)))

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(middleware.RequestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "abc-123", w.Header().Get(middleware.RequestIDHeader))
	assert.Equal(t, "abc-123", w.Body.String())

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "Request completed", entry["msg"])
	assert.Equal(t, "abc-123", entry["request_id"])
	assert.EqualValues(t, http.StatusOK, entry["status"])
}

func TestStructuredLogging_GeneratesRequestID(t *testing.T) {
	r := newTestRouter(slog.New(slog.DiscardHandler))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	id := w.Header().Get(middleware.RequestIDHeader)
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
	assert.Equal(t, id, w.Body.String())
}

func TestGetLoggerFromCtx_FallsBackToDefault(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Equal(t, slog.Default(), middleware.GetLoggerFromCtx(req.Context()))

	logger := slog.New(slog.DiscardHandler)
	ctx := middleware.WithLogger(req.Context(), logger)
	assert.Same(t, logger, middleware.GetLoggerFromCtx(ctx))
}

func TestRateLimit_RejectsOverLimit(t *testing.T) {
	limiter, err := middleware.NewRateLimiter("2-M")
	require.NoError(t, err)
	r := newTestRouter(slog.New(slog.DiscardHandler), middleware.RateLimit(limiter))

	codes := make([]int, 0, 3)
	var last *httptest.ResponseRecorder
	for i := 0; i < 3; i++ {
		last = httptest.NewRecorder()
		r.ServeHTTP(last, httptest.NewRequest(http.MethodGet, "/ping", nil))
		codes = append(codes, last.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
	assert.Equal(t, "2", last.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "0", last.Header().Get("X-RateLimit-Remaining"))

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(last.Body.Bytes(), &resp))
	assert.Equal(t, dto.ErrKindRateLimited, resp.Kind)
}

func TestNewRateLimiter_InvalidFormat(t *testing.T) {
	_, err := middleware.NewRateLimiter("lots")
	assert.Error(t, err)
}

func TestEventNameForRoute(t *testing.T) {
	tests := []struct {
		method string
		path   string
		want   string
	}{
		{"POST", "/transactions", "post_transactions"},
		{"PUT", "/targets/:id", "put_targets_id"},
		{"PUT", "/schedule/:id/toggle", "put_schedule_id_toggle"},
		{"GET", "/api/transactions/daily-counts", "get_api_transactions_daily_counts"},
		{"GET", "", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, middleware.EventNameForRoute(tt.method, tt.path), tt.path)
	}
}

func TestPosthogMiddleware_DisabledClientPassesThrough(t *testing.T) {
	r := newTestRouter(slog.New(slog.DiscardHandler), middleware.PosthogMiddleware(nil, "savings-tracker"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}
