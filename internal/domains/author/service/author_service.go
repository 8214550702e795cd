package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"catalog-backend/internal/domains/author/model"
	"catalog-backend/internal/domains/author/repository"
	bookModel "catalog-backend/internal/domains/book/model"
	bookRepo "catalog-backend/internal/domains/book/repository"
)

type authorService struct {
	repo  repository.RepositoryInterface
	books bookRepo.RepositoryInterface
}

func NewAuthorService(repo repository.RepositoryInterface, books bookRepo.RepositoryInterface) ServiceInterface {
	return &authorService{
		repo:  repo,
		books: books,
	}
}

func (s *authorService) List(ctx context.Context) ([]model.Author, error) {
	return s.repo.List(ctx)
}

func (s *authorService) GetByID(ctx context.Context, id uuid.UUID) (*model.Author, error) {
	if id == uuid.Nil {
		return nil, model.ErrAuthorNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *authorService) Detail(ctx context.Context, id uuid.UUID) (*model.AuthorDetail, error) {
	return s.withBooks(ctx, id)
}

func (s *authorService) DeleteCandidates(ctx context.Context, id uuid.UUID) (*model.AuthorDetail, error) {
	return s.withBooks(ctx, id)
}

func (s *authorService) Delete(ctx context.Context, id uuid.UUID) error {
	detail, err := s.withBooks(ctx, id)
	if err != nil {
		return err
	}
	if detail.HasBooks() {
		return &model.AuthorInUseError{Author: detail.Author, Books: detail.Books}
	}

	found, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		log.Info().Str("author_id", id.String()).Msg("author already deleted")
	}
	return nil
}

func (s *authorService) Create(ctx context.Context, form model.AuthorForm) (*model.Author, error) {
	author, err := s.toValidEntity(form)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, author)
	if err != nil {
		return nil, err
	}

	log.Info().Str("author_id", created.ID.String()).Str("name", created.Name()).Msg("author created")
	return created, nil
}

func (s *authorService) Update(ctx context.Context, form model.AuthorForm) error {
	author, err := s.toValidEntity(form)
	if err != nil {
		return err
	}

	found, err := s.repo.Update(ctx, author)
	if err != nil {
		return err
	}
	if !found {
		log.Warn().Str("author_id", form.ID.String()).Msg("author update matched nothing")
	}
	return nil
}

func (s *authorService) toValidEntity(form model.AuthorForm) (*model.Author, error) {
	author, err := form.ToEntity()
	if err != nil {
		return nil, fmt.Errorf("invalid author dates: %w", err)
	}
	if err := author.Validate(); err != nil {
		return nil, fmt.Errorf("invalid author: %w", err)
	}
	return author, nil
}

// withBooks runs the author lookup and the books query side by side.
func (s *authorService) withBooks(ctx context.Context, id uuid.UUID) (*model.AuthorDetail, error) {
	if id == uuid.Nil {
		return nil, model.ErrAuthorNotFound
	}

	var (
		author *model.Author
		books  []bookModel.Book
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		author, err = s.repo.GetByID(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		books, err = s.books.ListByAuthor(gctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if author == nil {
		return nil, model.ErrAuthorNotFound
	}
	if books == nil {
		books = []bookModel.Book{}
	}

	return &model.AuthorDetail{Author: author, Books: books}, nil
}
