package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"catalog-backend/internal/domains/catalog/service"
	"catalog-backend/internal/shared/middleware"
	"catalog-backend/internal/shared/response"
)

// HealthChecker reports whether a backing store is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// Pinger is the cache side of the health check.
type Pinger interface {
	Ping(ctx context.Context) error
}

type CatalogHandler struct {
	service *service.CatalogService
	db      HealthChecker
	cache   Pinger
	version string
}

func NewCatalogHandler(svc *service.CatalogService, db HealthChecker, cache Pinger, version string) *CatalogHandler {
	return &CatalogHandler{service: svc, db: db, cache: cache, version: version}
}

// Index - GET /catalog
func (h *CatalogHandler) Index(c *gin.Context) {
	counts, err := h.service.Counts(c.Request.Context())
	if err != nil {
		middleware.Fail(c, http.StatusInternalServerError, err)
		return
	}

	c.HTML(http.StatusOK, "index", gin.H{
		"title":  "Local Library Home",
		"counts": counts,
	})
}

// Health - GET /api/v1/health
// The database is required; a failing cache only degrades the status.
func (h *CatalogHandler) Health(c *gin.Context) {
	ctx := c.Request.Context()
	if err := h.db.HealthCheck(ctx); err != nil {
		response.ErrorResponse(c, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "database unavailable")
		return
	}

	cacheStatus := "ok"
	if err := h.cache.Ping(ctx); err != nil {
		cacheStatus = "degraded"
	}

	response.Success(c, http.StatusOK, gin.H{
		"status":  "ok",
		"cache":   cacheStatus,
		"version": h.version,
	})
}
