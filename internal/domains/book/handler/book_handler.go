package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"catalog-backend/internal/domains/book/model"
	"catalog-backend/internal/domains/book/repository"
	"catalog-backend/internal/shared/middleware"
)

// BookHandler serves the read-only book pages.
type BookHandler struct {
	repo repository.RepositoryInterface
}

func NewBookHandler(repo repository.RepositoryInterface) *BookHandler {
	return &BookHandler{repo: repo}
}

func (h *BookHandler) RegisterRoutes(catalog *gin.RouterGroup) {
	catalog.GET("/books", h.List)
	catalog.GET("/book/:id", h.Detail)
}

// List - GET /catalog/books
func (h *BookHandler) List(c *gin.Context) {
	books, err := h.repo.List(c.Request.Context())
	if err != nil {
		middleware.Fail(c, http.StatusInternalServerError, err)
		return
	}

	c.HTML(http.StatusOK, "book_list", gin.H{
		"title":     "Book List",
		"book_list": books,
	})
}

// Detail - GET /catalog/book/:id
func (h *BookHandler) Detail(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		middleware.Fail(c, http.StatusNotFound, model.ErrBookNotFound)
		return
	}

	var detail model.BookDetail
	g, ctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() (err error) {
		detail.Book, err = h.repo.GetByID(ctx, id)
		return err
	})
	g.Go(func() (err error) {
		detail.Genres, err = h.repo.GenresOf(ctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, model.ErrBookNotFound) {
			status = http.StatusNotFound
		}
		middleware.Fail(c, status, err)
		return
	}

	c.HTML(http.StatusOK, "book_detail", gin.H{
		"title":  detail.Book.Title,
		"book":   detail.Book,
		"genres": detail.Genres,
	})
}
