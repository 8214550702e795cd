package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	"catalog-backend/internal/domains/author/model"
	"catalog-backend/pkg/cache"
)

// postgresRepository implements RepositoryInterface
// Uses pgxpool for PostgreSQL and the cache layer for GetByID
type postgresRepository struct {
	pool     *pgxpool.Pool
	cache    cache.Cache
	cacheTTL time.Duration
}

func NewPostgresRepository(pool *pgxpool.Pool, c cache.Cache, cacheTTL time.Duration) RepositoryInterface {
	return &postgresRepository{
		pool:     pool,
		cache:    c,
		cacheTTL: cacheTTL,
	}
}

const (
	authorCacheKeyPrefix = "author:"
	authorColumns        = "id, first_name, family_name, date_of_birth, date_of_death, created_at, updated_at"

	pgForeignKeyViolation = "23503"
)

func (r *postgresRepository) List(ctx context.Context) ([]model.Author, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+authorColumns+`
		FROM authors
		ORDER BY family_name ASC, first_name ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query authors: %w", err)
	}

	authors, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.Author, error) {
		return scanAuthor(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan authors: %w", err)
	}
	return authors, nil
}

// GetByID reads through the cache
func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Author, error) {
	cacheKey := authorCacheKeyPrefix + id.String()

	var cached model.Author
	if hit, err := r.cache.Get(ctx, cacheKey, &cached); err != nil {
		log.Warn().Err(err).Str("key", cacheKey).Msg("author cache read failed")
	} else if hit {
		return &cached, nil
	}

	a, err := scanAuthor(r.pool.QueryRow(ctx, `
		SELECT `+authorColumns+`
		FROM authors
		WHERE id = $1
	`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to get author by id: %w", err)
	}

	if err := r.cache.Set(ctx, cacheKey, a, r.cacheTTL); err != nil {
		log.Warn().Err(err).Str("key", cacheKey).Msg("author cache write failed")
	}
	return &a, nil
}

func (r *postgresRepository) Create(ctx context.Context, author *model.Author) (*model.Author, error) {
	created, err := scanAuthor(r.pool.QueryRow(ctx, `
		INSERT INTO authors (first_name, family_name, date_of_birth, date_of_death)
		VALUES ($1, $2, $3, $4)
		RETURNING `+authorColumns,
		author.FirstName, author.FamilyName, author.DateOfBirth, author.DateOfDeath,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create author: %w", err)
	}
	return &created, nil
}

func (r *postgresRepository) Update(ctx context.Context, author *model.Author) (bool, error) {
	cmdTag, err := r.pool.Exec(ctx, `
		UPDATE authors
		SET first_name = $1, family_name = $2, date_of_birth = $3, date_of_death = $4, updated_at = NOW()
		WHERE id = $5
	`, author.FirstName, author.FamilyName, author.DateOfBirth, author.DateOfDeath, author.ID)
	if err != nil {
		return false, fmt.Errorf("failed to update author: %w", err)
	}

	r.invalidate(ctx, author.ID)
	return cmdTag.RowsAffected() > 0, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM authors WHERE id = $1`, id)
	if err != nil {
		// Một book được tạo sau khi service đã kiểm tra
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return false, model.ErrAuthorHasBooks
		}
		return false, fmt.Errorf("failed to delete author: %w", err)
	}

	r.invalidate(ctx, id)
	return cmdTag.RowsAffected() > 0, nil
}

func (r *postgresRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM authors`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count authors: %w", err)
	}
	return count, nil
}

func (r *postgresRepository) invalidate(ctx context.Context, id uuid.UUID) {
	if err := r.cache.Delete(ctx, authorCacheKeyPrefix+id.String()); err != nil {
		log.Warn().Err(err).Str("author_id", id.String()).Msg("author cache invalidation failed")
	}
}

func scanAuthor(row pgx.Row) (model.Author, error) {
	var a model.Author
	err := row.Scan(
		&a.ID,
		&a.FirstName,
		&a.FamilyName,
		&a.DateOfBirth,
		&a.DateOfDeath,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	return a, err
}
