package server

import (
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/rblc/parts-marketplace-backend/config"
	redisService "github.com/rblc/parts-marketplace-backend/internal/service/redis"
	"github.com/rblc/parts-marketplace-backend/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "router-test-secret"

func newTestRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	return newTestRouterWithCache(t, nil)
}

func newTestRouterWithCache(t *testing.T, cache *redisService.Service) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	cfg := &config.Config{
		Env: "local",
		Server: config.ServerConfig{
			Port:           "8080",
			BaseURL:        "http://localhost:8080",
			AllowedOrigins: []string{"https://rblc.rw"},
		},
		Auth:     config.AuthConfig{JWTSecret: testSecret},
		WhatsApp: config.WhatsAppConfig{BusinessNumber: "250786905080"},
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := NewRouterHandler(cfg, sqlx.NewDb(mockDB, "postgres"), cache, logger)

	return setupRouter(cfg, handler), mock
}

func TestRouter_Health(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"healthy"`)
	assert.NotContains(t, rec.Body.String(), `"redis"`)
}

func TestRouter_HealthReportsRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	host, port, err := net.SplitHostPort(mr.Addr())
	require.NoError(t, err)

	cache, err := redisService.NewRedisService(redisService.RedisConfig{Host: host, Port: port})
	require.NoError(t, err)
	t.Cleanup(func() { _ = cache.Close() })

	r, _ := newTestRouterWithCache(t, cache)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"redis":"up"`)

	mr.Close()

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code, "redis outage degrades but does not fail health")
	assert.Contains(t, rec.Body.String(), `"status":"healthy"`)
	assert.Contains(t, rec.Body.String(), `"redis":"down"`)
}

func TestRouter_AdminRoutesRequireToken(t *testing.T) {
	r, _ := newTestRouter(t)

	for _, route := range []struct{ method, path string }{
		{http.MethodGet, "/api/v1/admin/analytics"},
		{http.MethodGet, "/api/v1/admin/orders"},
		{http.MethodPost, "/api/v1/admin/faqs"},
		{http.MethodGet, "/api/v1/admin/conversations"},
		{http.MethodPost, "/api/v1/admin/products"},
		{http.MethodPut, "/api/v1/admin/products/1"},
		{http.MethodDelete, "/api/v1/admin/products/1"},
		{http.MethodPost, "/api/v1/admin/suppliers"},
		{http.MethodPut, "/api/v1/admin/suppliers/1"},
		{http.MethodDelete, "/api/v1/admin/suppliers/1"},
		{http.MethodPost, "/api/v1/admin/mechanics"},
		{http.MethodPut, "/api/v1/admin/mechanics/1"},
		{http.MethodDelete, "/api/v1/admin/mechanics/1"},
	} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(route.method, route.path, nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code, route.path)
	}
}

func TestRouter_AdminOrdersWithToken(t *testing.T) {
	r, mock := newTestRouter(t)

	token, err := utils.GenerateToken("admin-1", "admin@rblc.rw", []byte(testSecret), time.Hour)
	require.NoError(t, err)

	mock.ExpectQuery(`FROM orders`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/orders", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":[],"success":true}`, rec.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRouter_PublicFAQs(t *testing.T) {
	r, mock := newTestRouter(t)

	mock.ExpectQuery(`SELECT id, question, answer, category, created_at FROM faqs`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "question", "answer", "category", "created_at"}))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/faqs", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":[],"success":true}`, rec.Body.String())
}

func TestRouter_PublicCatalog(t *testing.T) {
	r, mock := newTestRouter(t)

	mock.ExpectQuery(`FROM products`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(`FROM suppliers`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(`FROM mechanics`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	for _, path := range []string{"/api/v1/products", "/api/v1/suppliers", "/api/v1/mechanics"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.JSONEq(t, `{"data":[],"success":true}`, rec.Body.String(), path)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRouter_MetricsEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `rblc_http_requests_total{method="GET",path="/health",status="200"} 1`)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestSwaggerHost(t *testing.T) {
	assert.Equal(t, "api.rblc.rw", swaggerHost("https://api.rblc.rw"))
	assert.Equal(t, "127.0.0.1:8080", swaggerHost("not a url"))
}
