package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"catalog-backend/internal/domains/book/model"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

const bookColumns = `
	b.id, b.title, b.author_id, a.family_name || ', ' || a.first_name,
	b.summary, b.isbn, b.created_at, b.updated_at`

func (r *postgresRepository) List(ctx context.Context) ([]model.Book, error) {
	query := `
		SELECT` + bookColumns + `
		FROM books b
		JOIN authors a ON a.id = b.author_id
		ORDER BY b.title ASC
	`
	return r.queryBooks(ctx, query)
}

func (r *postgresRepository) ListByGenre(ctx context.Context, genreID uuid.UUID) ([]model.Book, error) {
	query := `
		SELECT` + bookColumns + `
		FROM books b
		JOIN book_genres bg ON bg.book_id = b.id
		JOIN authors a ON a.id = b.author_id
		WHERE bg.genre_id = $1
		ORDER BY b.title ASC
	`
	return r.queryBooks(ctx, query, genreID)
}

func (r *postgresRepository) ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]model.Book, error) {
	query := `
		SELECT` + bookColumns + `
		FROM books b
		JOIN authors a ON a.id = b.author_id
		WHERE b.author_id = $1
		ORDER BY b.title ASC
	`
	return r.queryBooks(ctx, query, authorID)
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	books, err := r.queryBooks(ctx, `
		SELECT`+bookColumns+`
		FROM books b
		JOIN authors a ON a.id = b.author_id
		WHERE b.id = $1
	`, id)
	if err != nil {
		return nil, err
	}
	if len(books) == 0 {
		return nil, model.ErrBookNotFound
	}
	return &books[0], nil
}

func (r *postgresRepository) GenresOf(ctx context.Context, bookID uuid.UUID) ([]model.GenreRef, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT g.id, g.name
		FROM genres g
		JOIN book_genres bg ON bg.genre_id = g.id
		WHERE bg.book_id = $1
		ORDER BY g.name ASC
	`, bookID)
	if err != nil {
		return nil, fmt.Errorf("failed to query book genres: %w", err)
	}

	genres, err := pgx.CollectRows(rows, pgx.RowToStructByPos[model.GenreRef])
	if err != nil {
		return nil, fmt.Errorf("failed to scan book genres: %w", err)
	}
	return genres, nil
}

func (r *postgresRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM books`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count books: %w", err)
	}
	return count, nil
}

func (r *postgresRepository) queryBooks(ctx context.Context, query string, args ...any) ([]model.Book, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query books: %w", err)
	}

	books, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.Book, error) {
		var b model.Book
		err := row.Scan(
			&b.ID,
			&b.Title,
			&b.AuthorID,
			&b.AuthorName,
			&b.Summary,
			&b.ISBN,
			&b.CreatedAt,
			&b.UpdatedAt,
		)
		return b, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan books: %w", err)
	}

	return books, nil
}
