package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"catalog-backend/internal/domains/book/model"
	"catalog-backend/internal/shared/middleware"
	"catalog-backend/web"
)

type mockBookRepo struct{ mock.Mock }

func (m *mockBookRepo) List(ctx context.Context) ([]model.Book, error) {
	args := m.Called(ctx)
	books, _ := args.Get(0).([]model.Book)
	return books, args.Error(1)
}

func (m *mockBookRepo) ListByGenre(ctx context.Context, id uuid.UUID) ([]model.Book, error) {
	return nil, nil
}

func (m *mockBookRepo) ListByAuthor(ctx context.Context, id uuid.UUID) ([]model.Book, error) {
	return nil, nil
}

func (m *mockBookRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	args := m.Called(ctx, id)
	b, _ := args.Get(0).(*model.Book)
	return b, args.Error(1)
}

func (m *mockBookRepo) GenresOf(ctx context.Context, id uuid.UUID) ([]model.GenreRef, error) {
	args := m.Called(ctx, id)
	genres, _ := args.Get(0).([]model.GenreRef)
	return genres, args.Error(1)
}

func (m *mockBookRepo) Count(ctx context.Context) (int, error) {
	return 0, nil
}

func serve(repo *mockBookRepo, path string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.SetHTMLTemplate(web.MustTemplates())
	r.Use(middleware.ErrorHandler(false))
	NewBookHandler(repo).RegisterRoutes(r.Group("/catalog"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestList(t *testing.T) {
	repo := &mockBookRepo{}
	repo.On("List", mock.Anything).Return([]model.Book{
		{ID: uuid.New(), Title: "Death Wave", AuthorName: "Bova, Ben"},
	}, nil)

	w := serve(repo, "/catalog/books")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Death Wave")
	assert.Contains(t, w.Body.String(), "(Bova, Ben)")
}

func TestList_StoreFailure(t *testing.T) {
	repo := &mockBookRepo{}
	repo.On("List", mock.Anything).Return(nil, assert.AnError)

	w := serve(repo, "/catalog/books")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestDetail(t *testing.T) {
	repo := &mockBookRepo{}
	book := &model.Book{ID: uuid.New(), Title: "Apes and Angels", AuthorID: uuid.New(), AuthorName: "Bova, Ben"}
	genre := model.GenreRef{ID: uuid.New(), Name: "Science Fiction"}
	repo.On("GetByID", mock.Anything, book.ID).Return(book, nil)
	repo.On("GenresOf", mock.Anything, book.ID).Return([]model.GenreRef{genre}, nil)

	w := serve(repo, book.URL())

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), book.AuthorURL())
	assert.Contains(t, w.Body.String(), genre.URL())
}

func TestDetail_NotFound(t *testing.T) {
	repo := &mockBookRepo{}
	id := uuid.New()
	repo.On("GetByID", mock.Anything, id).Return(nil, model.ErrBookNotFound)
	repo.On("GenresOf", mock.Anything, id).Return([]model.GenreRef{}, nil).Maybe()

	w := serve(repo, "/catalog/book/"+id.String())

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Book not found")

	w = serve(repo, "/catalog/book/not-a-uuid")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
