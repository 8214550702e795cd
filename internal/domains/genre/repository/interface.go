package repository

import (
	"context"

	"github.com/google/uuid"

	"catalog-backend/internal/domains/genre/model"
)

// RepositoryInterface defines data access for genres
type RepositoryInterface interface {
	// List returns every genre ordered by name
	List(ctx context.Context) ([]model.Genre, error)

	// GetByID returns ErrGenreNotFound if the id does not resolve
	GetByID(ctx context.Context, id uuid.UUID) (*model.Genre, error)

	// FindByName is an exact, case-sensitive match; (nil, nil) on miss
	FindByName(ctx context.Context, name string) (*model.Genre, error)

	// Create inserts the genre and returns it with id and timestamps assigned
	Create(ctx context.Context, genre *model.Genre) (*model.Genre, error)

	// Update replaces the name by id; found is false when nothing matched
	Update(ctx context.Context, id uuid.UUID, name string) (found bool, err error)

	// Delete removes by id; found is false when nothing matched
	Delete(ctx context.Context, id uuid.UUID) (found bool, err error)

	Count(ctx context.Context) (int, error)
}
