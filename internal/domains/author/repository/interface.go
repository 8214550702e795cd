package repository

import (
	"context"

	"github.com/google/uuid"

	"catalog-backend/internal/domains/author/model"
)

// RepositoryInterface defines data access for authors
type RepositoryInterface interface {
	// List returns every author ordered by family name, then first name
	List(ctx context.Context) ([]model.Author, error)

	// GetByID returns ErrAuthorNotFound if the id does not resolve
	GetByID(ctx context.Context, id uuid.UUID) (*model.Author, error)

	// Create inserts the author and returns it with id and timestamps assigned
	Create(ctx context.Context, author *model.Author) (*model.Author, error)

	// Update replaces names and dates by id; found is false when nothing matched
	Update(ctx context.Context, author *model.Author) (found bool, err error)

	// Delete removes by id; found is false when nothing matched.
	// Errors: ErrAuthorHasBooks if a book still references the author
	Delete(ctx context.Context, id uuid.UUID) (found bool, err error)

	Count(ctx context.Context) (int, error)
}
