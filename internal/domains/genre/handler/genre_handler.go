package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"catalog-backend/internal/domains/genre/model"
	"catalog-backend/internal/domains/genre/service"
	"catalog-backend/internal/shared/form"
	"catalog-backend/internal/shared/middleware"
)

// ============================================================
// HANDLER STRUCT
// ============================================================
type GenreHandler struct {
	service service.ServiceInterface
}

func NewGenreHandler(svc service.ServiceInterface) *GenreHandler {
	return &GenreHandler{service: svc}
}

// RegisterRoutes mounts the genre pages on the /catalog group.
// POST routes run the validation stage before the terminal handler.
func (h *GenreHandler) RegisterRoutes(catalog *gin.RouterGroup) {
	catalog.GET("/genres", h.List)
	catalog.GET("/genre/create", h.CreateForm)
	catalog.POST("/genre/create", form.Stage(ParseCreate, "name"), h.CreateSubmit)
	catalog.GET("/genre/:id", h.Detail)
	catalog.GET("/genre/:id/delete", h.DeleteConfirm)
	catalog.POST("/genre/:id/delete", h.DeleteExecute)
	catalog.GET("/genre/:id/update", h.UpdateForm)
	catalog.POST("/genre/:id/update", form.Stage(ParseUpdate, "name"), h.UpdateSubmit)
}

// ========== LIST: GET /catalog/genres ==========
func (h *GenreHandler) List(c *gin.Context) {
	genres, err := h.service.List(c.Request.Context())
	if err != nil {
		middleware.Fail(c, http.StatusInternalServerError, err)
		return
	}

	c.HTML(http.StatusOK, "genre_list", gin.H{
		"title":      "Genre List",
		"genre_list": genres,
	})
}

// ========== DETAIL: GET /catalog/genre/:id ==========
func (h *GenreHandler) Detail(c *gin.Context) {
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

	c.HTML(http.StatusOK, "genre_detail", gin.H{
		"title":       "Genre Detail",
		"genre":       detail.Genre,
		"genre_books": detail.Books,
	})
}

// ========== CREATE: GET /catalog/genre/create ==========
func (h *GenreHandler) CreateForm(c *gin.Context) {
	c.HTML(http.StatusOK, "genre_form", gin.H{
		"title": "Create Genre",
	})
}

// ParseCreate trims and escapes the submitted name, then validates it.
func ParseCreate(c *gin.Context) (model.GenreForm, error) {
	f := model.GenreForm{Name: form.Sanitize(c.PostForm("name"))}
	return f, f.ValidateCreate()
}

// ========== CREATE: POST /catalog/genre/create ==========
func (h *GenreHandler) CreateSubmit(c *gin.Context) {
	result := form.From[model.GenreForm](c)
	if !result.Valid() {
		c.HTML(http.StatusOK, "genre_form", gin.H{
			"title":  "Create Genre",
			"genre":  result.Value.ToEntity(),
			"errors": result.Errors,
		})
		return
	}

	genre, _, err := h.service.Create(c.Request.Context(), result.Value)
	if err != nil {
		middleware.Fail(c, http.StatusInternalServerError, err)
		return
	}

	// Existing or new, the genre's own page is where the flow ends.
	c.Redirect(http.StatusFound, genre.URL())
}

// ========== DELETE: GET /catalog/genre/:id/delete ==========
func (h *GenreHandler) DeleteConfirm(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.Redirect(http.StatusFound, model.CollectionURL)
		return
	}

	detail, err := h.service.DeleteCandidates(c.Request.Context(), id)
	if errors.Is(err, model.ErrGenreNotFound) {
		c.Redirect(http.StatusFound, model.CollectionURL)
		return
	}
	if err != nil {
		middleware.Fail(c, http.StatusInternalServerError, err)
		return
	}

	h.renderDelete(c, detail.Genre, detail.Books)
}

// ========== DELETE: POST /catalog/genre/:id/delete ==========
// The path id is the only id consulted, for both the checks and the delete.
func (h *GenreHandler) DeleteExecute(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.Redirect(http.StatusFound, model.CollectionURL)
		return
	}

	err := h.service.Delete(c.Request.Context(), id)

	var inUse *model.GenreInUseError
	switch {
	case err == nil, errors.Is(err, model.ErrGenreNotFound):
		c.Redirect(http.StatusFound, model.CollectionURL)
	case errors.As(err, &inUse):
		h.renderDelete(c, inUse.Genre, inUse.Books)
	default:
		middleware.Fail(c, model.ToHTTPStatus(err), err)
	}
}

func (h *GenreHandler) renderDelete(c *gin.Context, genre *model.Genre, books any) {
	c.HTML(http.StatusOK, "genre_delete", gin.H{
		"title": "Delete Genre",
		"genre": genre,
		"books": books,
	})
}

// ========== UPDATE: GET /catalog/genre/:id/update ==========
func (h *GenreHandler) UpdateForm(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		middleware.Fail(c, http.StatusNotFound, model.ErrGenreNotFound)
		return
	}

	genre, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		middleware.Fail(c, model.ToHTTPStatus(err), err)
		return
	}

	c.HTML(http.StatusOK, "genre_form", gin.H{
		"title": "Update Genre",
		"genre": genre,
	})
}

// ParseUpdate is ParseCreate with the stricter update rules. The id comes
// from the path; a malformed one is carried as uuid.Nil.
func ParseUpdate(c *gin.Context) (model.GenreForm, error) {
	id, _ := parseID(c)
	f := model.GenreForm{ID: id, Name: form.Sanitize(c.PostForm("name"))}
	return f, f.ValidateUpdate()
}

// ========== UPDATE: POST /catalog/genre/:id/update ==========
func (h *GenreHandler) UpdateSubmit(c *gin.Context) {
	result := form.From[model.GenreForm](c)
	if !result.Valid() {
		c.HTML(http.StatusOK, "genre_form", gin.H{
			"title":  "Update Genre",
			"genre":  result.Value.ToEntity(),
			"errors": result.Errors,
		})
		return
	}

	if result.Value.ID != uuid.Nil {
		if err := h.service.Update(c.Request.Context(), result.Value); err != nil {
			middleware.Fail(c, http.StatusInternalServerError, err)
			return
		}
	}

	c.Redirect(http.StatusFound, model.CollectionURL)
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
