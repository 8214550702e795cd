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

	"catalog-backend/internal/domains/genre/model"
	"catalog-backend/pkg/cache"
)

// postgresRepository uses pgxpool for PostgreSQL and the cache for GetByID
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
	genreCacheKeyPrefix = "genre:"

	pgForeignKeyViolation = "23503"
)

func (r *postgresRepository) List(ctx context.Context) ([]model.Genre, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, created_at, updated_at
		FROM genres
		ORDER BY name ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query genres: %w", err)
	}

	genres, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.Genre, error) {
		return scanGenre(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan genres: %w", err)
	}
	return genres, nil
}

// GetByID reads through the cache
func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Genre, error) {
	cacheKey := genreCacheKeyPrefix + id.String()

	var g model.Genre
	if hit, err := r.cache.Get(ctx, cacheKey, &g); err == nil && hit {
		return &g, nil
	} else if err != nil {
		log.Warn().Err(err).Str("key", cacheKey).Msg("genre cache read failed")
	}

	row := r.pool.QueryRow(ctx, `
		SELECT id, name, created_at, updated_at
		FROM genres
		WHERE id = $1
	`, id)
	g, err := scanGenre(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrGenreNotFound
		}
		return nil, fmt.Errorf("failed to get genre by id: %w", err)
	}

	if err := r.cache.Set(ctx, cacheKey, g, r.cacheTTL); err != nil {
		log.Warn().Err(err).Str("key", cacheKey).Msg("genre cache write failed")
	}

	return &g, nil
}

func (r *postgresRepository) FindByName(ctx context.Context, name string) (*model.Genre, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, name, created_at, updated_at
		FROM genres
		WHERE name = $1
		ORDER BY created_at ASC
		LIMIT 1
	`, name)
	g, err := scanGenre(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find genre by name: %w", err)
	}
	return &g, nil
}

func (r *postgresRepository) Create(ctx context.Context, genre *model.Genre) (*model.Genre, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO genres (name)
		VALUES ($1)
		RETURNING id, name, created_at, updated_at
	`, genre.Name)
	created, err := scanGenre(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create genre: %w", err)
	}
	return &created, nil
}

func (r *postgresRepository) Update(ctx context.Context, id uuid.UUID, name string) (bool, error) {
	cmdTag, err := r.pool.Exec(ctx, `
		UPDATE genres
		SET name = $1, updated_at = NOW()
		WHERE id = $2
	`, name, id)
	if err != nil {
		return false, fmt.Errorf("failed to update genre: %w", err)
	}

	r.invalidate(ctx, id)
	return cmdTag.RowsAffected() > 0, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM genres WHERE id = $1`, id)
	if err != nil {
		// book_genres không cascade: một book vừa được gắn genre này
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return false, model.ErrGenreHasBooks
		}
		return false, fmt.Errorf("failed to delete genre: %w", err)
	}

	r.invalidate(ctx, id)
	return cmdTag.RowsAffected() > 0, nil
}

func (r *postgresRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM genres`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count genres: %w", err)
	}
	return count, nil
}

func (r *postgresRepository) invalidate(ctx context.Context, id uuid.UUID) {
	if err := r.cache.Delete(ctx, genreCacheKeyPrefix+id.String()); err != nil {
		log.Warn().Err(err).Str("genre_id", id.String()).Msg("genre cache invalidation failed")
	}
}

func scanGenre(row pgx.Row) (model.Genre, error) {
	var g model.Genre
	err := row.Scan(&g.ID, &g.Name, &g.CreatedAt, &g.UpdatedAt)
	return g, err
}
