package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"catalog-backend/internal/domains/genre/model"
	"catalog-backend/internal/shared/middleware"
	"catalog-backend/internal/shared/response"
)

// RegisterAPIRoutes mounts the read-only JSON mirror on /api/v1.
func (h *GenreHandler) RegisterAPIRoutes(api *gin.RouterGroup) {
	api.GET("/genres", h.APIList)
	api.GET("/genres/:id", h.APIDetail)
}

// APIList - GET /api/v1/genres
func (h *GenreHandler) APIList(c *gin.Context) {
	genres, err := h.service.List(c.Request.Context())
	if err != nil {
		middleware.Fail(c, http.StatusInternalServerError, err)
		return
	}

	data := make([]model.GenreResponse, len(genres))
	for i, g := range genres {
		data[i] = g.ToResponse()
	}
	response.SuccessWithMeta(c, http.StatusOK, data, &response.Meta{Total: len(data)})
}

// APIDetail - GET /api/v1/genres/:id
func (h *GenreHandler) APIDetail(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		middleware.Fail(c, http.StatusNotFound, model.ErrGenreNotFound)
		return
	}

	detail, err := h.service.Detail(c.Request.Context(), id)
	if err != nil {
		middleware.Fail(c, model.ToHTTPStatus(err), err)
		return
	}

	response.Success(c, http.StatusOK, detail.ToResponse())
}
