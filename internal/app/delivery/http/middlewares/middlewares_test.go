package middlewares

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"mindcare-service/internal/app/config"
	"mindcare-service/internal/pkg/constvars"
	"mindcare-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newTestMiddlewares(app config.App) *Middlewares {
	return NewMiddlewares(zap.NewNop(), &config.InternalConfig{App: app})
}

func TestRequestID(t *testing.T) {
	middlewares := newTestMiddlewares(config.App{})

	var seen string
	handler := middlewares.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = utils.RequestIDFromContext(r.Context())
	}))

	t.Run("Client Supplied", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(constvars.HeaderXRequestID, "client-id")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, "client-id", seen)
		assert.Equal(t, "client-id", rr.Header().Get(constvars.HeaderXRequestID))
	})

	t.Run("Generated", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, rr.Header().Get(constvars.HeaderXRequestID))
	})
}

func TestLogging(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	middlewares := NewMiddlewares(zap.New(core), &config.InternalConfig{})

	handler := middlewares.Logging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/views", nil))

	completed := logs.FilterMessage("API request completed").All()
	require.Len(t, completed, 1)
	assert.Equal(t, int64(http.StatusTeapot), completed[0].ContextMap()[constvars.LoggingStatusCodeKey])
	assert.Equal(t, false, completed[0].ContextMap()[constvars.LoggingSuccessKey])
}

func TestErrorHandler(t *testing.T) {
	middlewares := newTestMiddlewares(config.App{})

	t.Run("Recovers Panic", func(t *testing.T) {
		handler := middlewares.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic("something broke")
		}))
		rr := httptest.NewRecorder()
		assert.NotPanics(t, func() {
			handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
		})

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, false, body["success"])
	})

	t.Run("Abort Handler Is Re-Raised", func(t *testing.T) {
		handler := middlewares.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic(http.ErrAbortHandler)
		}))
		assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
			handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		})
	})
}

func TestBodyLimit(t *testing.T) {
	middlewares := newTestMiddlewares(config.App{RequestBodyLimitInKilobyte: 1})

	var readErr error
	handler := middlewares.BodyLimit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, readErr = io.ReadAll(r.Body)
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", strings.NewReader(strings.Repeat("a", 1024))))
	assert.NoError(t, readErr, "a body at the limit should be readable")

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", strings.NewReader(strings.Repeat("a", 1025))))
	var maxBytesErr *http.MaxBytesError
	assert.ErrorAs(t, readErr, &maxBytesErr)
}

func TestRateLimiter(t *testing.T) {
	now := time.Date(2024, time.January, 1, 12, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(2, time.Second, 10*time.Second, zap.NewNop())
	limiter.now = func() time.Time { return now }

	handler := limiter.Limit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	send := func(remoteAddr string) int {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.RemoteAddr = remoteAddr
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr.Code
	}

	assert.Equal(t, http.StatusOK, send("10.0.0.1:1000"))
	assert.Equal(t, http.StatusOK, send("10.0.0.1:1001"), "burst allows a second request")
	assert.Equal(t, http.StatusTooManyRequests, send("10.0.0.1:1002"), "third request exhausts the bucket")
	assert.Equal(t, http.StatusOK, send("10.0.0.2:1000"), "other clients are unaffected")

	now = now.Add(5 * time.Second)
	assert.Equal(t, http.StatusTooManyRequests, send("10.0.0.1:1003"), "client stays blocked for the block time")

	now = now.Add(6 * time.Second)
	assert.Equal(t, http.StatusOK, send("10.0.0.1:1004"), "block expires and the bucket has refilled")
}

func TestRateLimiterSweep(t *testing.T) {
	now := time.Date(2024, time.January, 1, 12, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(1, time.Second, time.Second, zap.NewNop())
	limiter.now = func() time.Time { return now }

	assert.True(t, limiter.allow("10.0.0.1"))
	assert.Len(t, limiter.limiters, 1)

	now = now.Add(limiterIdleTimeout + time.Minute)
	assert.True(t, limiter.allow("10.0.0.2"))
	assert.Len(t, limiter.limiters, 1, "idle clients should be swept")
	assert.Contains(t, limiter.limiters, "10.0.0.2")
}

func TestSubmissionRateLimitDisabled(t *testing.T) {
	middlewares := newTestMiddlewares(config.App{SubmissionMaxRequestsPerMinute: 0})

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	handler := middlewares.SubmissionRateLimit()(next)
	for i := 0; i < 100; i++ {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/", nil))
		assert.Equal(t, http.StatusOK, rr.Code)
	}
}
