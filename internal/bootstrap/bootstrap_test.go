package bootstrap

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/GoSim-25-26J-441/color-picker-backend/config"
	"github.com/GoSim-25-26J-441/color-picker-backend/internal/api/http/middleware"
)

func testRouter(t *testing.T, mutate func(*RouterDeps)) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	dep := RouterDeps{
		ServiceName:    "color-picker-backend",
		Version:        "test",
		DB:             db,
		Logger:         zap.NewNop(),
		CORSOrigins:    []string{"*"},
		RequestTimeout: time.Second,
	}
	if mutate != nil {
		mutate(&dep)
	}
	return BuildRouter(dep), mock
}

func serve(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestBuildRouter_Routes(t *testing.T) {
	r, _ := testRouter(t, nil)

	got := map[string]bool{}
	for _, ri := range r.Routes() {
		got[ri.Method+" "+ri.Path] = true
	}
	for _, want := range []string{
		"GET /",
		"GET /health",
		"GET /healthz",
		"GET /api/v1/projects",
		"GET /api/v1/projects/:id/palettes",
		"PATCH /api/v1/palettes/:id",
	} {
		assert.True(t, got[want], want)
	}
}

func TestBuildRouter_WelcomeAndRequestID(t *testing.T) {
	r, _ := testRouter(t, nil)

	rr := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Welcome to Color Picker API", rr.Body.String())
	assert.NotEmpty(t, rr.Header().Get(middleware.RequestIDHeader))
}

func TestBuildRouter_Health(t *testing.T) {
	r, mock := testRouter(t, nil)
	mock.ExpectPing()

	rr := serve(r, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"db":"up"`)
	assert.Contains(t, rr.Body.String(), `"redis":"disabled"`)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBuildRouter_BackendErrorLoggedWithRequestID(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	r, mock := testRouter(t, func(d *RouterDeps) { d.Logger = zap.New(core) })

	mock.ExpectQuery(`FROM projects ORDER BY id`).WillReturnError(errors.New("pq: relation \"projects\" does not exist"))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/projects", nil)
	req.Header.Set(middleware.RequestIDHeader, "rid-42")
	rr := serve(r, req)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)

	entries := logs.FilterField(zap.String("request_id", "rid-42")).All()
	require.Len(t, entries, 1)
	assert.Equal(t, zap.ErrorLevel, entries[0].Level)
	assert.Equal(t, "/api/v1/projects", entries[0].ContextMap()["path"])
	assert.Contains(t, entries[0].ContextMap()["errors"], "does not exist")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBuildRouter_CORS(t *testing.T) {
	t.Run("any origin", func(t *testing.T) {
		r, _ := testRouter(t, nil)

		req := httptest.NewRequest(http.MethodOptions, "/api/v1/projects", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)

		rr := serve(r, req)
		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("allow list", func(t *testing.T) {
		r, _ := testRouter(t, func(d *RouterDeps) { d.CORSOrigins = []string{"https://colors.example.com"} })

		req := httptest.NewRequest(http.MethodOptions, "/api/v1/projects", nil)
		req.Header.Set("Origin", "https://evil.example.com")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)

		rr := serve(r, req)
		assert.Equal(t, http.StatusForbidden, rr.Code)
		assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestBuildRouter_RateLimit(t *testing.T) {
	r, mock := testRouter(t, func(d *RouterDeps) {
		d.RateLimitRPS = 0.001
		d.RateLimitBurst = 1
	})
	mock.ExpectQuery(`FROM projects ORDER BY id`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "created_at", "updated_at"}))

	rr := serve(r, httptest.NewRequest(http.MethodGet, "/api/v1/projects", nil))
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = serve(r, httptest.NewRequest(http.MethodGet, "/api/v1/projects", nil))
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.JSONEq(t, `{"error":"Too many requests"}`, rr.Body.String())

	// health stays outside the limiter
	mock.ExpectPing()
	rr = serve(r, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLimiterSelection(t *testing.T) {
	assert.Nil(t, limiter(RouterDeps{}))

	_, ok := limiter(RouterDeps{RateLimitRPS: 5, RateLimitBurst: 10}).(*middleware.LocalLimiter)
	assert.True(t, ok)

	mr := miniredis.RunT(t)
	client, err := OpenRedis(context.Background(), &config.RedisConfig{Addr: mr.Addr()})
	require.NoError(t, err)
	defer client.Close()

	_, ok = limiter(RouterDeps{RateLimitRPS: 2.5, Redis: client}).(*middleware.RedisLimiter)
	assert.True(t, ok)
}

func TestOpenRedis(t *testing.T) {
	client, err := OpenRedis(context.Background(), &config.RedisConfig{})
	require.NoError(t, err)
	assert.Nil(t, client)

	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err = OpenRedis(context.Background(), &config.RedisConfig{Addr: addr})
	assert.Error(t, err)
}

func TestSetGinMode(t *testing.T) {
	defer gin.SetMode(gin.TestMode)

	SetGinMode("production")
	assert.Equal(t, gin.ReleaseMode, gin.Mode())

	SetGinMode("test")
	assert.Equal(t, gin.TestMode, gin.Mode())
}
