package service

import (
	"context"

	"github.com/google/uuid"

	"catalog-backend/internal/domains/author/model"
)

type ServiceInterface interface {
	List(ctx context.Context) ([]model.Author, error)

	// GetByID errors with ErrAuthorNotFound if the id does not resolve
	GetByID(ctx context.Context, id uuid.UUID) (*model.Author, error)

	// Detail loads the author and their books concurrently
	Detail(ctx context.Context, id uuid.UUID) (*model.AuthorDetail, error)

	// DeleteCandidates loads what the delete confirmation shows
	DeleteCandidates(ctx context.Context, id uuid.UUID) (*model.AuthorDetail, error)

	// Delete removes the author only when they have no books
	// Errors: ErrAuthorNotFound, *AuthorInUseError (matches ErrAuthorHasBooks)
	Delete(ctx context.Context, id uuid.UUID) error

	// Create always inserts; authors are not de-duplicated by name
	Create(ctx context.Context, form model.AuthorForm) (*model.Author, error)

	// Update replaces names and dates by id; an unknown id is a no-op
	Update(ctx context.Context, form model.AuthorForm) error
}
