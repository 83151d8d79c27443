package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"trivia_backend/internal/config"
	"trivia_backend/internal/model"
	"trivia_backend/internal/util"
	"trivia_backend/pkg/database"
	"trivia_backend/pkg/logger"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func testConfig() *config.Config {
	return &config.Config{
		Server:    config.ServerConfig{Port: "0", Mode: gin.TestMode},
		Database:  config.DatabaseConfig{Driver: "sqlite", Path: ":memory:"},
		Redis:     config.RedisConfig{CategoryTTL: 60},
		Storage:   config.StorageConfig{Type: util.StorageLocal, LocalPath: "../../data"},
		RateLimit: config.RateLimitConfig{MaxRequests: 1000, WindowMinutes: 1},
		Seed:      config.SeedConfig{Object: "trivia.json"},
	}
}

func setupApp(t *testing.T, cfg *config.Config, rdb *redis.Client) *App {
	db, err := database.InitDB(&cfg.Database, false)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))

	a := newApp(cfg, db, rdb)
	t.Cleanup(a.Close)
	return a
}

func get(a *App, path string, header ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func TestSeedAndServe(t *testing.T) {
	a := setupApp(t, testConfig(), nil)
	require.NoError(t, a.seed(context.Background()))

	w := get(a, "/categories")
	require.Equal(t, http.StatusOK, w.Code)
	categories := decode(t, w)["categories"].(map[string]interface{})
	assert.Len(t, categories, 6)
	assert.Equal(t, "Science", categories["1"])

	w = get(a, "/questions?page=1")
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Len(t, body["questions"], util.QuestionsPerPage)

	// 重复导入不产生重复数据
	total := body["totalQuestions"]
	require.NoError(t, a.seed(context.Background()))
	assert.Equal(t, total, decode(t, get(a, "/questions"))["totalQuestions"])
}

func TestCORSHeadersOnEveryResponse(t *testing.T) {
	a := setupApp(t, testConfig(), nil)

	for _, path := range []string{"/categories", "/questions", "/nope"} {
		w := get(a, path)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"), path)
		assert.Equal(t, "Content-Type,Authorization,true", w.Header().Get("Access-Control-Allow-Headers"), path)
		assert.Equal(t, "GET,POST,PUT,DELETE,OPTIONS", w.Header().Get("Access-Control-Allow-Methods"), path)
	}

	req := httptest.NewRequest(http.MethodOptions, "/quizzes", nil)
	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestUnknownRoute(t *testing.T) {
	a := setupApp(t, testConfig(), nil)

	w := get(a, "/does/not/exist")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, map[string]interface{}{
		"success": false,
		"error":   float64(404),
		"message": "resource not found",
	}, decode(t, w))
}

func TestPanicRecovery(t *testing.T) {
	a := setupApp(t, testConfig(), nil)
	a.Router.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := get(a, "/boom")
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, map[string]interface{}{
		"success": false,
		"error":   float64(500),
		"message": "internal server error",
	}, decode(t, w))
}

func TestRequestIDHeader(t *testing.T) {
	a := setupApp(t, testConfig(), nil)

	w := get(a, "/health", util.RequestIDHeader, "req-123")
	assert.Equal(t, "req-123", w.Header().Get(util.RequestIDHeader))

	w = get(a, "/health")
	assert.NotEmpty(t, w.Header().Get(util.RequestIDHeader))
}

func TestMetricsEndpoint(t *testing.T) {
	a := setupApp(t, testConfig(), nil)
	get(a, "/categories")

	w := get(a, "/metrics")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "http_requests_total"))
}

func TestRateLimitAndReload(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimit.MaxRequests = 1
	cfg.RateLimit.WindowMinutes = 60
	a := setupApp(t, cfg, nil)

	addr := "10.0.0.1:1234"
	call := func() int {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.RemoteAddr = addr
		w := httptest.NewRecorder()
		a.Router.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, call())
	assert.Equal(t, http.StatusTooManyRequests, call())

	reloaded := testConfig()
	reloaded.Log.Level = "warn"
	reloaded.RateLimit.MaxRequests = 100
	a.applyConfig(reloaded)
	t.Cleanup(func() { logger.SetLevel(zapcore.InfoLevel) })

	assert.Equal(t, zapcore.WarnLevel, logger.Level())
	addr = "10.0.0.2:1234"
	assert.Equal(t, http.StatusOK, call())
	assert.Equal(t, http.StatusOK, call())
}

func TestCategoryCache(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	a := setupApp(t, testConfig(), rdb)
	require.NoError(t, a.seed(context.Background()))

	require.Equal(t, http.StatusOK, get(a, "/categories").Code)
	assert.True(t, mr.Exists("trivia:categories"))

	// 缓存命中时不再读库
	require.NoError(t, a.DB.Where("id = ?", 1).Delete(&model.Category{}).Error)
	categories := decode(t, get(a, "/categories"))["categories"].(map[string]interface{})
	assert.Equal(t, "Science", categories["1"])
}
