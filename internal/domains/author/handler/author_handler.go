package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"catalog-backend/internal/domains/author/model"
	"catalog-backend/internal/domains/author/service"
	"catalog-backend/internal/shared/form"
	"catalog-backend/internal/shared/middleware"
)

// ============================================================
// HANDLER STRUCT
// ============================================================
type AuthorHandler struct {
	service service.ServiceInterface
}

func NewAuthorHandler(svc service.ServiceInterface) *AuthorHandler {
	return &AuthorHandler{service: svc}
}

var fieldOrder = []string{"first_name", "family_name", "date_of_birth", "date_of_death"}

func (h *AuthorHandler) RegisterRoutes(catalog *gin.RouterGroup) {
	catalog.GET("/authors", h.List)
	catalog.GET("/author/create", h.CreateForm)
	catalog.POST("/author/create", form.Stage(ParseAuthor, fieldOrder...), h.CreateSubmit)
	catalog.GET("/author/:id", h.Detail)
	catalog.GET("/author/:id/delete", h.DeleteConfirm)
	catalog.POST("/author/:id/delete", h.DeleteExecute)
	catalog.GET("/author/:id/update", h.UpdateForm)
	catalog.POST("/author/:id/update", form.Stage(ParseAuthor, fieldOrder...), h.UpdateSubmit)
}

// ========== LIST: GET /catalog/authors ==========
func (h *AuthorHandler) List(c *gin.Context) {
	authors, err := h.service.List(c.Request.Context())
	if err != nil {
		middleware.Fail(c, http.StatusInternalServerError, err)
		return
	}

	c.HTML(http.StatusOK, "author_list", gin.H{
		"title":       "Author List",
		"author_list": authors,
	})
}

// ========== DETAIL: GET /catalog/author/:id ==========
func (h *AuthorHandler) Detail(c *gin.Context) {
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

	c.HTML(http.StatusOK, "author_detail", gin.H{
		"title":        "Author Detail",
		"author":       detail.Author,
		"author_books": detail.Books,
	})
}

// ========== CREATE: GET /catalog/author/create ==========
func (h *AuthorHandler) CreateForm(c *gin.Context) {
	c.HTML(http.StatusOK, "author_form", gin.H{
		"title": "Create Author",
	})
}

// ParseAuthor sanitizes and validates a create or update submission.
// On update the id comes from the path; a malformed one is uuid.Nil.
func ParseAuthor(c *gin.Context) (model.AuthorForm, error) {
	id, _ := parseID(c)
	f := model.AuthorForm{
		ID:          id,
		FirstName:   form.Sanitize(c.PostForm("first_name")),
		FamilyName:  form.Sanitize(c.PostForm("family_name")),
		DateOfBirth: form.Sanitize(c.PostForm("date_of_birth")),
		DateOfDeath: form.Sanitize(c.PostForm("date_of_death")),
	}
	return f, f.Validate()
}

// ========== CREATE: POST /catalog/author/create ==========
func (h *AuthorHandler) CreateSubmit(c *gin.Context) {
	result := form.From[model.AuthorForm](c)
	if !result.Valid() {
		h.renderForm(c, "Create Author", result)
		return
	}

	author, err := h.service.Create(c.Request.Context(), result.Value)
	if err != nil {
		middleware.Fail(c, http.StatusInternalServerError, err)
		return
	}

	c.Redirect(http.StatusFound, author.URL())
}

// ========== DELETE: GET /catalog/author/:id/delete ==========
func (h *AuthorHandler) DeleteConfirm(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.Redirect(http.StatusFound, model.CollectionURL)
		return
	}

	detail, err := h.service.DeleteCandidates(c.Request.Context(), id)
	if errors.Is(err, model.ErrAuthorNotFound) {
		c.Redirect(http.StatusFound, model.CollectionURL)
		return
	}
	if err != nil {
		middleware.Fail(c, http.StatusInternalServerError, err)
		return
	}

	h.renderDelete(c, detail.Author, detail.Books)
}

// ========== DELETE: POST /catalog/author/:id/delete ==========
func (h *AuthorHandler) DeleteExecute(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.Redirect(http.StatusFound, model.CollectionURL)
		return
	}

	err := h.service.Delete(c.Request.Context(), id)

	var inUse *model.AuthorInUseError
	switch {
	case err == nil, errors.Is(err, model.ErrAuthorNotFound):
		c.Redirect(http.StatusFound, model.CollectionURL)
	case errors.As(err, &inUse):
		h.renderDelete(c, inUse.Author, inUse.Books)
	default:
		middleware.Fail(c, model.ToHTTPStatus(err), err)
	}
}

// ========== UPDATE: GET /catalog/author/:id/update ==========
func (h *AuthorHandler) UpdateForm(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		middleware.Fail(c, http.StatusNotFound, model.ErrAuthorNotFound)
		return
	}

	author, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		middleware.Fail(c, model.ToHTTPStatus(err), err)
		return
	}

	c.HTML(http.StatusOK, "author_form", gin.H{
		"title":  "Update Author",
		"author": model.FormFromAuthor(author),
	})
}

// ========== UPDATE: POST /catalog/author/:id/update ==========
func (h *AuthorHandler) UpdateSubmit(c *gin.Context) {
	result := form.From[model.AuthorForm](c)
	if !result.Valid() {
		h.renderForm(c, "Update Author", result)
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

func (h *AuthorHandler) renderForm(c *gin.Context, title string, result form.Result[model.AuthorForm]) {
	c.HTML(http.StatusOK, "author_form", gin.H{
		"title":  title,
		"author": result.Value,
		"errors": result.Errors,
	})
}

func (h *AuthorHandler) renderDelete(c *gin.Context, author *model.Author, books any) {
	c.HTML(http.StatusOK, "author_delete", gin.H{
		"title":  "Delete Author",
		"author": author,
		"books":  books,
	})
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
