package service

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Counter is satisfied by every catalog repository.
type Counter interface {
	Count(ctx context.Context) (int, error)
}

// Counts is what the catalog home page shows.
type Counts struct {
	Books   int `json:"books"`
	Authors int `json:"authors"`
	Genres  int `json:"genres"`
}

type CatalogService struct {
	books   Counter
	authors Counter
	genres  Counter
}

func NewCatalogService(books, authors, genres Counter) *CatalogService {
	return &CatalogService{books: books, authors: authors, genres: genres}
}

// Counts queries the three collections concurrently.
func (s *CatalogService) Counts(ctx context.Context) (Counts, error) {
	var counts Counts

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		counts.Books, err = s.books.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		counts.Authors, err = s.authors.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		counts.Genres, err = s.genres.Count(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return Counts{}, err
	}
	return counts, nil
}
