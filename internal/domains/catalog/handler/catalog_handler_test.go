package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"catalog-backend/internal/domains/catalog/service"
	"catalog-backend/internal/shared/middleware"
	"catalog-backend/web"
)

type fixedCount int

func (f fixedCount) Count(context.Context) (int, error) { return int(f), nil }

type health struct{ err error }

func (h health) HealthCheck(context.Context) error { return h.err }

func (h health) Ping(context.Context) error { return h.err }

func setupRouter(db HealthChecker) *gin.Engine {
	return setupRouterWithCache(db, health{})
}

func setupRouterWithCache(db HealthChecker, cache Pinger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewCatalogHandler(service.NewCatalogService(fixedCount(12), fixedCount(4), fixedCount(6)), db, cache, "test")

	r := gin.New()
	r.SetHTMLTemplate(web.MustTemplates())
	r.Use(middleware.ErrorHandler(false))
	r.GET("/catalog", h.Index)
	r.GET("/api/v1/health", h.Health)
	return r
}

func TestIndex_ShowsCounts(t *testing.T) {
	r := setupRouter(health{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/catalog", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "<strong>Books:</strong> 12")
	assert.Contains(t, w.Body.String(), "<strong>Authors:</strong> 4")
	assert.Contains(t, w.Body.String(), "<strong>Genres:</strong> 6")
}

func TestHealth(t *testing.T) {
	w := httptest.NewRecorder()
	setupRouter(health{}).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)

	w = httptest.NewRecorder()
	setupRouter(health{err: errors.New("down")}).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestHealth_CacheFailureDegrades(t *testing.T) {
	w := httptest.NewRecorder()
	setupRouterWithCache(health{}, health{err: errors.New("redis down")}).
		ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"cache":"degraded"`)
}
