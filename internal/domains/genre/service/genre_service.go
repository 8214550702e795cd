package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	bookModel "catalog-backend/internal/domains/book/model"
	bookRepo "catalog-backend/internal/domains/book/repository"
	"catalog-backend/internal/domains/genre/model"
	"catalog-backend/internal/domains/genre/repository"
)

type genreService struct {
	repo  repository.RepositoryInterface
	books bookRepo.RepositoryInterface
}

func NewGenreService(repo repository.RepositoryInterface, books bookRepo.RepositoryInterface) ServiceInterface {
	return &genreService{
		repo:  repo,
		books: books,
	}
}

func (s *genreService) List(ctx context.Context) ([]model.Genre, error) {
	return s.repo.List(ctx)
}

func (s *genreService) GetByID(ctx context.Context, id uuid.UUID) (*model.Genre, error) {
	if id == uuid.Nil {
		return nil, model.ErrGenreNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *genreService) Detail(ctx context.Context, id uuid.UUID) (*model.GenreDetail, error) {
	return s.withBooks(ctx, id)
}

func (s *genreService) DeleteCandidates(ctx context.Context, id uuid.UUID) (*model.GenreDetail, error) {
	return s.withBooks(ctx, id)
}

func (s *genreService) Delete(ctx context.Context, id uuid.UUID) error {
	detail, err := s.withBooks(ctx, id)
	if err != nil {
		return err
	}

	if detail.HasBooks() {
		return &model.GenreInUseError{Genre: detail.Genre, Books: detail.Books}
	}

	found, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		// Removed by someone else between the read and the delete.
		log.Info().Str("genre_id", id.String()).Msg("genre already deleted")
	}
	return nil
}

func (s *genreService) Create(ctx context.Context, form model.GenreForm) (*model.Genre, bool, error) {
	existing, err := s.repo.FindByName(ctx, form.Name)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, false, nil
	}

	genre := form.ToEntity()
	if err := genre.Validate(); err != nil {
		return nil, false, fmt.Errorf("invalid genre: %w", err)
	}

	created, err := s.repo.Create(ctx, genre)
	if err != nil {
		return nil, false, err
	}

	log.Info().Str("genre_id", created.ID.String()).Str("name", created.Name).Msg("genre created")
	return created, true, nil
}

func (s *genreService) Update(ctx context.Context, form model.GenreForm) error {
	found, err := s.repo.Update(ctx, form.ID, form.Name)
	if err != nil {
		return err
	}
	if !found {
		log.Warn().Str("genre_id", form.ID.String()).Msg("genre update matched nothing")
	}
	return nil
}

// withBooks issues the genre lookup and the referencing-books query
// concurrently and joins them. Either failure fails the whole call.
func (s *genreService) withBooks(ctx context.Context, id uuid.UUID) (*model.GenreDetail, error) {
	if id == uuid.Nil {
		return nil, model.ErrGenreNotFound
	}

	var (
		genre *model.Genre
		books []bookModel.Book
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		genre, err = s.repo.GetByID(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		books, err = s.books.ListByGenre(gctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if genre == nil {
		return nil, model.ErrGenreNotFound
	}
	if books == nil {
		books = []bookModel.Book{}
	}

	return &model.GenreDetail{Genre: genre, Books: books}, nil
}
