package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"catalog-backend/internal/domains/author/model"
	"catalog-backend/internal/shared/middleware"
	"catalog-backend/internal/shared/response"
)

func (h *AuthorHandler) RegisterAPIRoutes(api *gin.RouterGroup) {
	api.GET("/authors", h.APIList)
	api.GET("/authors/:id", h.APIDetail)
}

// APIList - GET /api/v1/authors
func (h *AuthorHandler) APIList(c *gin.Context) {
	authors, err := h.service.List(c.Request.Context())
	if err != nil {
		middleware.Fail(c, http.StatusInternalServerError, err)
		return
	}

	data := make([]model.AuthorResponse, len(authors))
	for i, a := range authors {
		data[i] = a.ToResponse()
	}
	response.SuccessWithMeta(c, http.StatusOK, data, &response.Meta{Total: len(data)})
}

// APIDetail - GET /api/v1/authors/:id
func (h *AuthorHandler) APIDetail(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		middleware.Fail(c, http.StatusNotFound, model.ErrAuthorNotFound)
		return
	}

	detail, err := h.service.Detail(c.Request.Context(), id)
	if err != nil {
		middleware.Fail(c, model.ToHTTPStatus(err), err)
		return
	}

	response.Success(c, http.StatusOK, detail.ToResponse())
}
