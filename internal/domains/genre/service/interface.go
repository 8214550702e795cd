package service

import (
	"context"

	"github.com/google/uuid"

	"catalog-backend/internal/domains/genre/model"
)

type ServiceInterface interface {
	// List returns all genres, no filter, no pagination
	List(ctx context.Context) ([]model.Genre, error)

	// GetByID errors with ErrGenreNotFound if the id does not resolve
	GetByID(ctx context.Context, id uuid.UUID) (*model.Genre, error)

	// Detail loads the genre and its books concurrently
	// Errors: ErrGenreNotFound
	Detail(ctx context.Context, id uuid.UUID) (*model.GenreDetail, error)

	// DeleteCandidates loads what the delete confirmation shows
	// Errors: ErrGenreNotFound
	DeleteCandidates(ctx context.Context, id uuid.UUID) (*model.GenreDetail, error)

	// Delete removes the genre only when no book references it
	// Errors: ErrGenreNotFound, *GenreInUseError (matches ErrGenreHasBooks)
	Delete(ctx context.Context, id uuid.UUID) error

	// Create returns the existing genre with the same name, or a new one.
	// The name check and insert are not atomic.
	Create(ctx context.Context, form model.GenreForm) (genre *model.Genre, created bool, err error)

	// Update replaces the name by id; an unknown id is a no-op
	Update(ctx context.Context, form model.GenreForm) error
}
