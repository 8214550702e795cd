package repository

import (
	"context"

	"github.com/google/uuid"

	"catalog-backend/internal/domains/book/model"
)

// RepositoryInterface - read side of the books collection
type RepositoryInterface interface {
	// List returns every book ordered by title, with AuthorName filled
	List(ctx context.Context) ([]model.Book, error)

	// ListByGenre returns books referencing the genre; empty slice when none
	ListByGenre(ctx context.Context, genreID uuid.UUID) ([]model.Book, error)

	// ListByAuthor returns books written by the author; empty slice when none
	ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]model.Book, error)

	// GetByID returns ErrBookNotFound if the id does not resolve
	GetByID(ctx context.Context, id uuid.UUID) (*model.Book, error)

	// GenresOf lists the genres the book is filed under, ordered by name
	GenresOf(ctx context.Context, bookID uuid.UUID) ([]model.GenreRef, error)

	Count(ctx context.Context) (int, error)
}
